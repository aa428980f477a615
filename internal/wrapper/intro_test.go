package wrapper

import (
	"errors"
	"strings"
	"testing"
)

var fooImport = []Import{{Name: "foo", Source: "./foo.js"}}

func TestIntroExamples(t *testing.T) {
	cases := []struct {
		name    string
		format  Format
		opts    Options
		imports []Import
		want    string
	}{
		{"cjs empty", FormatCJS, Options{}, nil, "'use strict';\n\n"},
		{"cjs one", FormatCJS, Options{}, fooImport, "'use strict';\n\nvar foo = require( './foo.js' );\n\n"},
		{"amd one", FormatAMD, Options{}, fooImport, "define([ './foo' ], function ( foo ) { 'use strict';\n\n"},
		{"iife named", FormatIIFE, Options{Name: "MyBundle"}, nil, "var MyBundle = (function () { 'use strict';\n\n"},
		{"eval empty", FormatEval, Options{}, nil, "(function () { 'use strict';\n\n"},
		{"eval one", FormatEval, Options{}, fooImport, "(function ( foo ) { 'use strict';\n\n"},
		{"es", FormatES, Options{Name: "x"}, fooImport, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Intro(tc.format, tc.opts, tc.imports)
			if err != nil {
				t.Fatalf("Intro: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Intro = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIntroAMD(t *testing.T) {
	imports := []Import{
		{Name: "a", Source: "./a.js"},
		{Name: "b", Source: "lib/b"},
		{Name: "c", Source: "./c.min.js"},
	}
	got, err := Intro(FormatAMD, Options{AMD: AMDOptions{ID: "my-mod"}}, imports)
	if err != nil {
		t.Fatalf("Intro: %v", err)
	}
	want := "define( 'my-mod', [ './a', 'lib/b', './c.min' ], function ( a, b, c ) { 'use strict';\n\n"
	if got != want {
		t.Fatalf("Intro = %q, want %q", got, want)
	}

	got, err = Intro(FormatAMD, Options{}, nil)
	if err != nil {
		t.Fatalf("Intro: %v", err)
	}
	if want := "define(function () { 'use strict';\n\n"; got != want {
		t.Fatalf("Intro = %q, want %q", got, want)
	}
}

func TestIntroCJSMultiple(t *testing.T) {
	imports := []Import{
		{Name: "a", Source: "./a.js"},
		{Name: "b", Source: "b"},
	}
	got, err := Intro(FormatCJS, Options{}, imports)
	if err != nil {
		t.Fatalf("Intro: %v", err)
	}
	want := "'use strict';\n\nvar a = require( './a.js' );\n\nvar b = require( 'b' );\n\n"
	if got != want {
		t.Fatalf("Intro = %q, want %q", got, want)
	}
}

func TestIntroIIFEParams(t *testing.T) {
	imports := []Import{{Name: "a", Source: "./a.js"}, {Name: "b", Source: "./b.js"}}
	got, err := Intro(FormatIIFE, Options{Name: "App"}, imports)
	if err != nil {
		t.Fatalf("Intro: %v", err)
	}
	if want := "var App = (function ( a, b ) { 'use strict';\n\n"; got != want {
		t.Fatalf("Intro = %q, want %q", got, want)
	}
}

func TestIntroMissingName(t *testing.T) {
	for _, format := range []Format{FormatIIFE, FormatUMD} {
		got, err := Intro(format, Options{}, fooImport)
		if got != "" {
			t.Fatalf("%s: expected no output, got %q", format, got)
		}
		var missing *MissingOptionError
		if !errors.As(err, &missing) {
			t.Fatalf("%s: expected MissingOptionError, got %v", format, err)
		}
		if missing.Option != "name" || missing.Format != format {
			t.Fatalf("%s: unexpected error fields %+v", format, missing)
		}
	}
}

func TestIntroUnsupportedFormat(t *testing.T) {
	for _, format := range []Format{0, FormatEval + 1, 200} {
		got, err := Intro(format, Options{Name: "x"}, nil)
		if got != "" {
			t.Fatalf("expected no output, got %q", got)
		}
		var unsupported *UnsupportedFormatError
		if !errors.As(err, &unsupported) {
			t.Fatalf("expected UnsupportedFormatError, got %v", err)
		}
		if unsupported.Tag != format.String() {
			t.Fatalf("Tag = %q, want %q", unsupported.Tag, format.String())
		}
	}
}

func TestIntroEndsWithBlankLine(t *testing.T) {
	opts := Options{Name: "Lib", AMD: AMDOptions{ID: "lib"}}
	for _, format := range Formats {
		for _, imports := range [][]Import{nil, fooImport} {
			got, err := Intro(format, opts, imports)
			if err != nil {
				t.Fatalf("%s: %v", format, err)
			}
			if format == FormatES {
				if got != "" {
					t.Fatalf("es: expected empty intro, got %q", got)
				}
				continue
			}
			if !strings.HasSuffix(got, "\n\n") || strings.HasSuffix(got, "\n\n\n") {
				t.Fatalf("%s: intro must end in exactly one blank line: %q", format, got)
			}
		}
	}
}

func TestIntroNoImportsHasNoDependencies(t *testing.T) {
	opts := Options{Name: "Lib"}
	for _, format := range Formats {
		got, err := Intro(format, opts, nil)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		for _, bad := range []string{"require(", "["} {
			if strings.Contains(got, bad) {
				t.Fatalf("%s: intro without imports contains %q: %q", format, bad, got)
			}
		}
	}
}

func TestIntroDeterministic(t *testing.T) {
	imports := []Import{{Name: "a", Source: "./a.js"}, {Name: "b", Source: "b"}}
	opts := Options{Name: "Lib", AMD: AMDOptions{ID: "lib"}}
	for _, format := range Formats {
		first, err := Intro(format, opts, imports)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		second, err := Intro(format, opts, imports)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if first != second {
			t.Fatalf("%s: output differs between calls:\n%q\n%q", format, first, second)
		}
	}
}

func BenchmarkIntroUMD(b *testing.B) {
	imports := []Import{
		{Name: "a", Source: "./a.js"},
		{Name: "b", Source: "./b.js"},
		{Name: "c", Source: "c"},
	}
	opts := Options{Name: "Lib"}
	for i := 0; i < b.N; i++ {
		if _, err := Intro(FormatUMD, opts, imports); err != nil {
			b.Fatal(err)
		}
	}
}
