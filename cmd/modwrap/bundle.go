package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"modwrap/internal/globals"
	"modwrap/internal/project"
	"modwrap/internal/trace"
	"modwrap/internal/wrapper"
)

// bundleSetup is everything needed to render a wrapper, merged from
// modwrap.toml and command-line flags.
type bundleSetup struct {
	format  wrapper.Format
	export  string
	opts    wrapper.Options
	imports []wrapper.Import
	globals map[string]string
	source  string // manifest path, "" when flags only
}

func addBundleFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to modwrap.toml (default: search upwards from the working directory)")
	cmd.Flags().Bool("no-config", false, "ignore modwrap.toml")
	cmd.Flags().String("format", "", "module format (es|amd|cjs|iife|umd|eval)")
	cmd.Flags().String("name", "", "global name the bundle is exported as (iife, umd)")
	cmd.Flags().String("amd-id", "", "AMD module id")
	cmd.Flags().String("export", "", "identifier holding the bundle's export")
	cmd.Flags().StringArray("import", nil, "external import as name=source (repeatable, order matters)")
	cmd.Flags().StringArray("global", nil, "global expression for an import as source=expr (repeatable)")
}

func loadBundleSetup(cmd *cobra.Command) (*bundleSetup, error) {
	flags := cmd.Flags()
	setup := &bundleSetup{globals: map[string]string{}}

	noConfig, err := flags.GetBool("no-config")
	if err != nil {
		return nil, err
	}
	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if !noConfig {
		var cfg *project.Config
		switch {
		case configPath != "":
			loaded, err := project.LoadConfig(configPath)
			if err != nil {
				return nil, err
			}
			cfg = &loaded
			setup.source = configPath
		default:
			manifest, ok, err := project.LoadManifest(".")
			if err != nil {
				return nil, err
			}
			if ok {
				cfg = &manifest.Config
				setup.source = manifest.Path
			}
		}
		if cfg != nil {
			if err := setup.applyConfig(*cfg); err != nil {
				return nil, err
			}
		}
	}

	if err := setup.applyFlags(cmd); err != nil {
		return nil, err
	}
	if setup.format == 0 {
		return nil, fmt.Errorf("no module format: pass --format or set [bundle].format in %s", project.ManifestName)
	}
	return setup, nil
}

func (s *bundleSetup) applyConfig(cfg project.Config) error {
	format, err := cfg.Format()
	if err != nil {
		return err
	}
	s.format = format
	s.export = cfg.Bundle.Export
	s.opts.Name = cfg.Bundle.Name
	s.opts.AMD.ID = cfg.Bundle.AMDID
	s.imports = cfg.WrapperImports()
	for src, global := range cfg.Globals {
		s.globals[src] = global
	}
	return nil
}

func (s *bundleSetup) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		tag, _ := flags.GetString("format")
		format, err := wrapper.ParseFormat(tag)
		if err != nil {
			return err
		}
		s.format = format
	}
	if flags.Changed("name") {
		name, _ := flags.GetString("name")
		s.opts.Name = project.Identifier(name)
	}
	if flags.Changed("amd-id") {
		id, _ := flags.GetString("amd-id")
		s.opts.AMD.ID = strings.TrimSpace(id)
	}
	if flags.Changed("export") {
		export, _ := flags.GetString("export")
		s.export = project.Identifier(export)
	}
	if flags.Changed("import") {
		values, _ := flags.GetStringArray("import")
		imports, err := parseImports(values)
		if err != nil {
			return err
		}
		// flag imports replace the manifest list
		s.imports = imports
	}
	if flags.Changed("global") {
		values, _ := flags.GetStringArray("global")
		for _, v := range values {
			src, expr, err := splitPair(v, "--global", "source=expr")
			if err != nil {
				return err
			}
			s.globals[src] = project.Identifier(expr)
		}
	}
	return nil
}

func parseImports(values []string) ([]wrapper.Import, error) {
	imports := make([]wrapper.Import, 0, len(values))
	for _, v := range values {
		name, src, err := splitPair(v, "--import", "name=source")
		if err != nil {
			return nil, err
		}
		imports = append(imports, wrapper.Import{Name: project.Identifier(name), Source: src})
	}
	return imports, nil
}

func splitPair(value, flag, shape string) (string, string, error) {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	val = strings.TrimSpace(val)
	if !ok || key == "" || val == "" {
		return "", "", fmt.Errorf("invalid %s value %q (expected %s)", flag, value, shape)
	}
	return key, val, nil
}

// warner prints global fallback warnings and records them as trace events.
type warner struct {
	mu     sync.Mutex
	out    io.Writer
	quiet  bool
	tracer trace.Tracer
}

func (w *warner) Warn(msg string) {
	trace.Warn(w.tracer, msg)
	if w.quiet {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, warnColor.Sprint("warning: ")+msg)
}

func newWarner(cmd *cobra.Command) (*warner, error) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, err
	}
	return &warner{out: cmd.ErrOrStderr(), quiet: quiet, tracer: trace.FromContext(cmd.Context())}, nil
}

// resolveGlobals runs the global fallback policy once for the setup's imports
// and pins the result into the wrapper options. Formats that never reference
// globals skip it.
func (s *bundleSetup) resolveGlobals(w *warner) ([]string, error) {
	switch s.format {
	case wrapper.FormatUMD, wrapper.FormatIIFE, wrapper.FormatEval:
	default:
		return nil, nil
	}
	policy := globals.Policy{Lookup: globals.Map(s.globals), Warn: w.Warn}
	resolved, err := policy.ResolveGlobals(s.imports, s.opts)
	if err != nil {
		return nil, err
	}
	s.opts.Globals = globals.Fixed(resolved)
	return resolved, nil
}
