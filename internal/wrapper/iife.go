package wrapper

import "fmt"

func iifeIntro(opts Options, imports []Import) (string, error) {
	if opts.Name == "" {
		return "", &MissingOptionError{Option: "name", Format: FormatIIFE}
	}
	return fmt.Sprintf("var %s = (function (%s) { 'use strict';\n\n", opts.Name, ParamList(imports)), nil
}

func evalIntro(imports []Import) string {
	return fmt.Sprintf("(function (%s) { 'use strict';\n\n", ParamList(imports))
}
