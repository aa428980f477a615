// Package globals resolves the global variable that holds each imported
// module when a bundle runs as a plain script (the UMD fallback branch and the
// arguments passed to IIFE and eval wrappers).
package globals

import (
	"fmt"
	"strings"

	"modwrap/internal/wrapper"
)

// generatedPrefix marks local names the compiler invented; guessing them as
// globals would produce a reference to nothing.
const generatedPrefix = "__import"

// Lookup maps a module source to its global expression.
type Lookup interface {
	Global(source string) (string, bool)
}

// Map is a Lookup backed by a source-to-global table.
type Map map[string]string

// Global returns the mapped global for source.
func (m Map) Global(source string) (string, bool) {
	g, ok := m[source]
	return g, ok && g != ""
}

// Func adapts a function to Lookup.
type Func func(source string) (string, bool)

// Global calls f.
func (f Func) Global(source string) (string, bool) {
	return f(source)
}

// UnresolvedError reports an import with a generated local name and no global
// mapping.
type UnresolvedError struct {
	Source string
}

func (e *UnresolvedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("could not determine name for imported module '%s' - use the globals option", e.Source)
}

// Policy is the default wrapper.GlobalResolver. Mapped imports use their
// mapping. Unmapped imports fall back to their local name after a warning,
// unless the local name was generated, which is an error.
type Policy struct {
	Lookup Lookup
	// Warn receives fallback warnings. Nil discards them.
	Warn func(msg string)
}

// ResolveGlobals implements wrapper.GlobalResolver.
func (p Policy) ResolveGlobals(imports []wrapper.Import, _ wrapper.Options) ([]string, error) {
	out := make([]string, len(imports))
	for i, imp := range imports {
		if p.Lookup != nil {
			if g, ok := p.Lookup.Global(imp.Source); ok {
				out[i] = g
				continue
			}
		}
		if strings.HasPrefix(imp.Name, generatedPrefix) {
			return nil, &UnresolvedError{Source: imp.Source}
		}
		if p.Warn != nil {
			p.Warn(fmt.Sprintf("No name was supplied for imported module '%s'. Guessing '%s', but you should use the globals option", imp.Source, imp.Name))
		}
		out[i] = imp.Name
	}
	return out, nil
}

// Fixed is a resolver that returns already resolved expressions. It lets a
// caller resolve once and render several wrappers without repeating the
// fallback warnings.
type Fixed []string

// ResolveGlobals returns a copy of f.
func (f Fixed) ResolveGlobals([]wrapper.Import, wrapper.Options) ([]string, error) {
	out := make([]string, len(f))
	copy(out, f)
	return out, nil
}
