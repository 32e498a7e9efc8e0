package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/selftrack"
	"github.com/etnz/selftrack/docs"
	"github.com/etnz/selftrack/storage"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// builtins are the subcommands registered by the subcommands package itself.
var builtins = []string{"help", "flags", "commands"}

// Known reports whether name is a subcommand of selftrack, as opposed to an extension.
func Known(name string) bool {
	for _, b := range builtins {
		if b == name {
			return true
		}
	}
	for _, g := range groups {
		for _, c := range g.commands {
			if c.Name() == name {
				return true
			}
		}
	}
	return false
}

// flagPredictors predicts the values of flags by name, when it is not free text.
var flagPredictors = map[string]complete.Predictor{
	"category":    predict.Set(names(selftrack.Categories)),
	"type":        predict.Set(names(selftrack.ExperienceTypes)),
	"backend":     predict.Set{string(storage.File), string(storage.SQLite), string(storage.Redis)},
	"config":      predict.Files("*.yaml"),
	"data-dir":    predict.Dirs("*"),
	"sqlite":      predict.Files("*.db"),
	"avatar-file": predict.Files("*"),
	"cert":        predict.Files("*"),
	"o":           predict.Files("*"),
}

// argPredictors predicts the positional arguments of subcommands.
var argPredictors = map[string]complete.Predictor{
	"topic":  complete.PredictFunc(func(string) []string { return append(docs.List(), docs.Index) }),
	"import": predict.Files("*"),
}

// Completion returns the shell completion of the command line.
//
// Run 'COMP_INSTALL=1 selftrack' to install it.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagsOf(flag.CommandLine),
	}
	for _, b := range builtins {
		root.Sub[b] = &complete.Command{}
	}
	for _, g := range groups {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{
				Flags: flagsOf(fs),
				Args:  argPredictors[c.Name()],
			}
		}
	}
	root.Sub["help"].Args = predict.Set(commandNames(root))
	if f, ok := root.Sub["export"]; ok {
		f.Flags["format"] = predict.Set(exportFormats)
	}
	if f, ok := root.Sub["import"]; ok {
		f.Flags["format"] = predict.Set{"json", "yaml"}
	}
	return root
}

// flagsOf returns the predictors of every flag in fs. Boolean flags take no value.
func flagsOf(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

func commandNames(root *complete.Command) []string {
	var list []string
	for name := range root.Sub {
		list = append(list, name)
	}
	return list
}

func names[T interface{ String() string }](list []T) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = strings.ToLower(v.String())
	}
	return out
}
