package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/selftrack/config"
)

// Environment variables passed to extensions, with the resolved configuration.
const (
	EnvBackend    = config.EnvPrefix + "_BACKEND"
	EnvDataDir    = config.EnvPrefix + "_DATA_DIR"
	EnvSQLitePath = config.EnvPrefix + "_SQLITE_PATH"
	EnvRedisURL   = config.EnvPrefix + "_REDIS_URL"
	EnvModel      = config.EnvPrefix + "_MODEL"
	EnvVerbose    = config.EnvPrefix + "_VERBOSE"
)

// ExtensionPrefix prefixes the name of extension binaries: 'selftrack cv' runs 'selftrack-cv'.
const ExtensionPrefix = "selftrack-"

// RunExtension attempts to find and execute an external selftrack-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension inherits the environment, plus the resolved configuration so
// that it can open the same portfolio (see config.Load).
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("extension %q not found in PATH: %v", name, err)
		return false, 0
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv(cfg)...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing extension %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the environment describing cfg. The API key is not
// forwarded: extensions read it from the environment like selftrack does.
func extensionEnv(cfg *config.Config) []string {
	return []string{
		EnvBackend + "=" + cfg.Backend,
		EnvDataDir + "=" + cfg.DataDir,
		EnvSQLitePath + "=" + cfg.SQLitePath,
		EnvRedisURL + "=" + cfg.RedisURL,
		EnvModel + "=" + cfg.Model,
		EnvVerbose + "=" + strconv.FormatBool(cfg.Verbose),
	}
}
