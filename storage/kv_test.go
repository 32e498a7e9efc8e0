package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// kvCases returns every backend available in the test environment.
func kvCases(t *testing.T) map[string]KV {
	t.Helper()
	ctx := context.Background()

	file, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV() error = %v", err)
	}
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "selftrack.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cases := map[string]KV{
		"memory": NewMemoryKV(),
		"file":   file,
		"sqlite": db,
	}
	if url := os.Getenv("SELFTRACK_TEST_REDIS_URL"); url != "" {
		r, err := OpenRedis(ctx, url)
		if err != nil {
			t.Fatalf("OpenRedis() error = %v", err)
		}
		t.Cleanup(func() { r.Close() })
		cases["redis"] = r
	}
	return cases
}

func TestKV_GetSet(t *testing.T) {
	ctx := context.Background()
	for name, kv := range kvCases(t) {
		t.Run(name, func(t *testing.T) {
			key := "test_" + name

			if _, err := kv.Get(ctx, key); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get() on absent key error = %v, want ErrNotFound", err)
			}

			if err := kv.Set(ctx, key, []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := kv.Set(ctx, key, []byte(`{"a":2}`)); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}

			got, err := kv.Get(ctx, key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if want := []byte(`{"a":2}`); !bytes.Equal(got, want) {
				t.Errorf("Get() = %s, want %s", got, want)
			}
		})
	}
}

func TestFileKV_InvalidKey(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV() error = %v", err)
	}
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		if err := kv.Set(context.Background(), key, []byte("x")); err == nil {
			t.Errorf("Set(%q) succeeded, want an error", key)
		}
	}
}

func TestFileKV_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	kv, _ := NewFileKV(dir)
	for i := 0; i < 3; i++ {
		if err := kv.Set(context.Background(), Key, []byte("{}")); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != Key+".json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("storage folder contains %v, want only %s.json", names, Key)
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", File, false},
		{"file", File, false},
		{"sqlite", SQLite, false},
		{"redis", Redis, false},
		{"memory", Memory, false},
		{"mongo", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBackend(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenSQLite_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selftrack.db")
	if err := os.WriteFile(path, bytes.Repeat([]byte("not a sqlite database "), 100), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenSQLite(path); err == nil {
		t.Fatal("OpenSQLite() error = nil, want an error on a file that is not a database")
	}
	// The connection is closed: the file can be replaced by a fresh database.
	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	kv.Close()
}
