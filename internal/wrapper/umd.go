package wrapper

import (
	"fmt"
	"strings"

	"modwrap/internal/deindent"
)

// umdProbe is one branch of the UMD environment check: when cond holds at
// load time, action exports the factory result. An empty cond is the final
// fallback.
type umdProbe struct {
	cond   string
	action string
}

// umdProbes returns the environment checks in evaluation order: CommonJS,
// then AMD, then the global fallback. The order must not change; loaders that
// satisfy several checks (an AMD loader exposing a global module object) rely
// on CommonJS winning.
func umdProbes(name, cjsArgs, amdArgs, globals string) []umdProbe {
	return []umdProbe{
		{
			cond:   "typeof exports === 'object' && typeof module !== 'undefined'",
			action: "module.exports = factory(" + cjsArgs + ")",
		},
		{
			cond:   "typeof define === 'function' && define.amd",
			action: "define(" + amdArgs + "factory)",
		},
		{
			action: "(global." + name + " = factory(" + globals + "))",
		},
	}
}

func umdIntro(opts Options, imports []Import) (string, error) {
	if opts.Name == "" {
		return "", &MissingOptionError{Option: "name", Format: FormatUMD}
	}
	globals, err := GlobalArgs(opts, imports)
	if err != nil {
		return "", err
	}

	requires := make([]string, len(imports))
	for i, imp := range imports {
		requires[i] = "require('" + imp.Source + "')"
	}

	var amdArgs string
	if opts.AMD.ID != "" {
		amdArgs = "'" + opts.AMD.ID + "', "
	}
	if len(imports) > 0 {
		amdArgs += "[" + strings.Join(amdIDs(imports), ", ") + "], "
	}

	probes := umdProbes(opts.Name, strings.Join(requires, ", "), amdArgs, strings.Join(globals, ", "))

	var sb strings.Builder
	sb.WriteString("\n\t\t(function ( global, factory ) {\n")
	for _, p := range probes {
		if p.cond == "" {
			fmt.Fprintf(&sb, "\t\t\t%s;\n", p.action)
			continue
		}
		fmt.Fprintf(&sb, "\t\t\t%s ? %s :\n", p.cond, p.action)
	}
	fmt.Fprintf(&sb, "\t\t}(this, (function (%s) { 'use strict';", ParamList(imports))

	return deindent.Deindent(sb.String()) + "\n\n", nil
}
