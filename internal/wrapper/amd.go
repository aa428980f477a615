package wrapper

import (
	"fmt"
	"strings"
)

func amdIntro(opts Options, imports []Import) string {
	var sb strings.Builder
	sb.WriteString("define(")
	if opts.AMD.ID != "" {
		fmt.Fprintf(&sb, " '%s', ", opts.AMD.ID)
	}
	// an empty dependency list is omitted, not written as []
	if len(imports) > 0 {
		fmt.Fprintf(&sb, "[ %s ], ", strings.Join(amdIDs(imports), ", "))
	}
	fmt.Fprintf(&sb, "function (%s) { 'use strict';\n\n", ParamList(imports))
	return sb.String()
}
