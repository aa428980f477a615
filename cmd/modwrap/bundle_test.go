package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"modwrap/internal/wrapper"
)

func newBundleCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addBundleFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd
}

func TestParseImports(t *testing.T) {
	got, err := parseImports([]string{"foo=./foo.js", " $ = jquery "})
	if err != nil {
		t.Fatalf("parseImports: %v", err)
	}
	want := []wrapper.Import{{Name: "foo", Source: "./foo.js"}, {Name: "$", Source: "jquery"}}
	if len(got) != len(want) {
		t.Fatalf("parseImports = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parseImports[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	for _, bad := range []string{"foo", "=./foo.js", "foo="} {
		if _, err := parseImports([]string{bad}); err == nil {
			t.Fatalf("parseImports(%q): expected error", bad)
		}
	}
}

func TestReadColorMode(t *testing.T) {
	if on, err := readColorMode("ON"); err != nil || !on {
		t.Fatalf("readColorMode(ON) = %v, %v", on, err)
	}
	if on, err := readColorMode("off"); err != nil || on {
		t.Fatalf("readColorMode(off) = %v, %v", on, err)
	}
	if _, err := readColorMode("sometimes"); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

func TestLoadBundleSetupFlags(t *testing.T) {
	cmd := newBundleCmd(t,
		"--no-config",
		"--format", "umd",
		"--name", "Lib",
		"--amd-id", "lib",
		"--export", "main",
		"--import", "foo=./foo.js",
		"--import", "bar=bar",
		"--global", "bar=window.Bar",
	)
	setup, err := loadBundleSetup(cmd)
	if err != nil {
		t.Fatalf("loadBundleSetup: %v", err)
	}
	if setup.format != wrapper.FormatUMD || setup.opts.Name != "Lib" || setup.opts.AMD.ID != "lib" || setup.export != "main" {
		t.Fatalf("unexpected setup %+v", setup)
	}
	if len(setup.imports) != 2 || setup.imports[1].Source != "bar" {
		t.Fatalf("unexpected imports %+v", setup.imports)
	}

	var stderr bytes.Buffer
	resolved, err := setup.resolveGlobals(&warner{out: &stderr})
	if err != nil {
		t.Fatalf("resolveGlobals: %v", err)
	}
	if strings.Join(resolved, ",") != "foo,window.Bar" {
		t.Fatalf("resolved = %v", resolved)
	}
	if !strings.Contains(stderr.String(), "Guessing 'foo'") {
		t.Fatalf("expected a guess warning, got %q", stderr.String())
	}
}

func TestLoadBundleSetupConfigWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modwrap.toml")
	data := `[bundle]
format = "iife"
name = "FromConfig"
export = "main"

[[imports]]
name = "foo"
source = "./foo.js"

[globals]
"./foo.js" = "Foo"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cmd := newBundleCmd(t, "--config", path, "--name", "FromFlag")
	setup, err := loadBundleSetup(cmd)
	if err != nil {
		t.Fatalf("loadBundleSetup: %v", err)
	}
	if setup.format != wrapper.FormatIIFE || setup.opts.Name != "FromFlag" {
		t.Fatalf("unexpected setup %+v", setup)
	}
	if setup.source != path {
		t.Fatalf("source = %q, want %q", setup.source, path)
	}
	resolved, err := setup.resolveGlobals(&warner{quiet: true})
	if err != nil {
		t.Fatalf("resolveGlobals: %v", err)
	}
	if len(resolved) != 1 || resolved[0] != "Foo" {
		t.Fatalf("resolved = %v", resolved)
	}
}

func TestLoadBundleSetupNeedsFormat(t *testing.T) {
	if _, err := loadBundleSetup(newBundleCmd(t, "--no-config")); err == nil {
		t.Fatalf("expected error without a format")
	}
	if _, err := loadBundleSetup(newBundleCmd(t, "--no-config", "--format", "system")); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestResolveGlobalsSkippedForCJS(t *testing.T) {
	cmd := newBundleCmd(t, "--no-config", "--format", "cjs", "--import", "__import0=./x.js")
	setup, err := loadBundleSetup(cmd)
	if err != nil {
		t.Fatalf("loadBundleSetup: %v", err)
	}
	resolved, err := setup.resolveGlobals(&warner{quiet: true})
	if err != nil || resolved != nil {
		t.Fatalf("resolveGlobals = %v, %v; want nil, nil", resolved, err)
	}
}
