package wrapper

import (
	"fmt"
	"strings"
)

// Outro returns the epilogue that closes the scopes opened by Intro for the
// same format and imports. exportName is the identifier holding the bundle's
// export inside the wrapper.
func Outro(format Format, exportName string, opts Options, imports []Import) (string, error) {
	switch format {
	case FormatES:
		return fmt.Sprintf("export default %s;", exportName), nil
	case FormatAMD:
		return fmt.Sprintf("return %s;\n\n});", exportName), nil
	case FormatCJS:
		return fmt.Sprintf("module.exports = %s;", exportName), nil
	case FormatIIFE, FormatEval:
		globals, err := GlobalArgs(opts, imports)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("return %s;\n\n}(%s));", exportName, strings.Join(globals, ", ")), nil
	case FormatUMD:
		return fmt.Sprintf("return %s;\n\n})));", exportName), nil
	default:
		return "", &UnsupportedFormatError{Tag: format.String()}
	}
}

// Wrap surrounds body with the intro and outro for format. Trailing newlines
// of body are collapsed into the blank line before the outro.
func Wrap(format Format, exportName, body string, opts Options, imports []Import) (string, error) {
	if !format.Valid() {
		return "", &UnsupportedFormatError{Tag: format.String()}
	}
	if exportName == "" {
		return "", &MissingOptionError{Option: "export", Format: format}
	}
	intro, err := Intro(format, opts, imports)
	if err != nil {
		return "", err
	}
	outro, err := Outro(format, exportName, opts, imports)
	if err != nil {
		return "", err
	}
	return Assemble(intro, body, outro), nil
}

// Assemble joins a rendered intro, body and outro the way Wrap does.
func Assemble(intro, body, outro string) string {
	body = strings.TrimRight(body, "\n")
	var sb strings.Builder
	sb.Grow(len(intro) + len(body) + len(outro) + 3)
	sb.WriteString(intro)
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(outro)
	sb.WriteString("\n")
	return sb.String()
}
