package wrapper

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError reports a format tag outside the supported set.
type UnsupportedFormatError struct {
	Tag string
}

func (e *UnsupportedFormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("unsupported module format %q (expected: es|amd|cjs|iife|umd|eval)", e.Tag)
}

// MissingOptionError reports a required option that was not set.
type MissingOptionError struct {
	Option string
	Format Format
}

func (e *MissingOptionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("missing required '%s' option for %s export", e.Option, strings.ToUpper(e.Format.String()))
}

// GlobalCountError reports a GlobalResolver that did not return exactly one
// expression per import.
type GlobalCountError struct {
	Imports int
	Globals int
}

func (e *GlobalCountError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("global resolver returned %d names for %d imports", e.Globals, e.Imports)
}
