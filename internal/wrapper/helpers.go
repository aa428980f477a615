package wrapper

import "strings"

// StripExtension returns path up to its last '.', or path unchanged when it
// has none. Only module ids handed to AMD loaders are stripped.
func StripExtension(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i]
	}
	return path
}

// ParamList renders the factory parameter list: "" for no imports, otherwise
// the local names joined by ", " with one space on each side.
func ParamList(imports []Import) string {
	if len(imports) == 0 {
		return ""
	}
	names := make([]string, len(imports))
	for i, imp := range imports {
		names[i] = imp.Name
	}
	return " " + strings.Join(names, ", ") + " "
}

// amdIDs returns the quoted, extension-stripped sources.
func amdIDs(imports []Import) []string {
	ids := make([]string, len(imports))
	for i, imp := range imports {
		ids[i] = "'" + StripExtension(imp.Source) + "'"
	}
	return ids
}
