package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--color=off"}, args...))
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestIntroCommand(t *testing.T) {
	out, _, err := execute(t, "intro", "--no-config", "--format", "amd", "--import", "foo=./foo.js")
	if err != nil {
		t.Fatalf("intro: %v", err)
	}
	if want := "define([ './foo' ], function ( foo ) { 'use strict';\n\n"; out != want {
		t.Fatalf("intro = %q, want %q", out, want)
	}
}

func TestWrapCommandStdout(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	bundle := filepath.Join(t.TempDir(), "app.js")
	if err := os.WriteFile(bundle, []byte("var main = 42;\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, _, err := execute(t, "wrap", "--no-config", "--format", "cjs", "--export", "main", "--stdout", bundle)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if want := "'use strict';\n\nvar main = 42;\n\nmodule.exports = main;\n"; out != want {
		t.Fatalf("wrap = %q, want %q", out, want)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, `"tool": "modwrap"`) {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestCleanCommand(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	bundle := filepath.Join(t.TempDir(), "app.js")
	if err := os.WriteFile(bundle, []byte("var main = 1;\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := execute(t, "wrap", "--no-config", "--format", "cjs", "--export", "main", "--stdout", bundle); err != nil {
		t.Fatalf("wrap: %v", err)
	}
	wrappers := filepath.Join(cacheHome, "modwrap", "wrappers")
	if entries, err := os.ReadDir(wrappers); err != nil || len(entries) == 0 {
		t.Fatalf("expected cached wrappers in %s (err %v)", wrappers, err)
	}

	out, _, err := execute(t, "clean")
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !strings.Contains(out, filepath.Join(cacheHome, "modwrap")) {
		t.Fatalf("clean output %q does not name the cache dir", out)
	}
	if _, err := os.Stat(wrappers); !os.IsNotExist(err) {
		t.Fatalf("wrappers dir still present after clean (stat err %v)", err)
	}
}
