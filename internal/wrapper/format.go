package wrapper

import (
	"fmt"
	"strings"
)

// Format selects a module wrapping convention.
type Format uint8

const (
	// FormatES is native ECMAScript modules; no wrapper is emitted.
	FormatES Format = iota + 1
	FormatAMD
	FormatCJS
	FormatIIFE
	FormatUMD
	FormatEval
)

// Formats lists every supported format in declaration order.
var Formats = []Format{FormatES, FormatAMD, FormatCJS, FormatIIFE, FormatUMD, FormatEval}

// String returns the format tag.
func (f Format) String() string {
	switch f {
	case FormatES:
		return "es"
	case FormatAMD:
		return "amd"
	case FormatCJS:
		return "cjs"
	case FormatIIFE:
		return "iife"
	case FormatUMD:
		return "umd"
	case FormatEval:
		return "eval"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Valid reports whether f is one of the declared formats.
func (f Format) Valid() bool {
	return f >= FormatES && f <= FormatEval
}

// ParseFormat converts a tag such as "umd" to a Format.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "es", "esm":
		return FormatES, nil
	case "amd":
		return FormatAMD, nil
	case "cjs", "commonjs":
		return FormatCJS, nil
	case "iife":
		return FormatIIFE, nil
	case "umd":
		return FormatUMD, nil
	case "eval":
		return FormatEval, nil
	default:
		return 0, &UnsupportedFormatError{Tag: tag}
	}
}
