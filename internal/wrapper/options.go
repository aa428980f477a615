package wrapper

// Import is one external dependency of the bundle.
type Import struct {
	// Name is the identifier the dependency is bound to inside the wrapper.
	Name string
	// Source is the module specifier as authored, e.g. "./foo.js".
	Source string
}

// AMDOptions configures the AMD define call.
type AMDOptions struct {
	// ID is the optional module id passed as the first argument of define.
	ID string
}

// GlobalResolver maps imports to the global expressions that hold them when
// the bundle runs as a plain script. It returns one expression per import, in
// import order.
type GlobalResolver interface {
	ResolveGlobals(imports []Import, opts Options) ([]string, error)
}

// Options is read by the generators and never modified.
type Options struct {
	// Name is the global variable the bundle is exported as. Required for
	// iife and umd.
	Name string
	AMD  AMDOptions
	// Globals resolves global expressions for umd, iife and eval. When nil
	// each import's local name is used.
	Globals GlobalResolver
}

// GlobalArgs returns the global expression for each import as rendered by
// the umd, iife and eval wrappers.
func GlobalArgs(opts Options, imports []Import) ([]string, error) {
	if opts.Globals == nil {
		names := make([]string, len(imports))
		for i, imp := range imports {
			names[i] = imp.Name
		}
		return names, nil
	}
	names, err := opts.Globals.ResolveGlobals(imports, opts)
	if err != nil {
		return nil, err
	}
	if len(names) != len(imports) {
		return nil, &GlobalCountError{Imports: len(imports), Globals: len(names)}
	}
	return names, nil
}
