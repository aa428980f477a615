package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"

	"modwrap/internal/wrapper"
)

var (
	// ErrBundleSectionMissing indicates that [bundle] is missing.
	ErrBundleSectionMissing = errors.New("missing [bundle]")
	// ErrFormatMissing indicates that [bundle].format is missing.
	ErrFormatMissing = errors.New("missing [bundle].format")
)

// Manifest is a loaded modwrap.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML layout of modwrap.toml.
type Config struct {
	Bundle  BundleConfig      `toml:"bundle"`
	Imports []ImportConfig    `toml:"imports"`
	Globals map[string]string `toml:"globals"`
}

// BundleConfig is the [bundle] section.
type BundleConfig struct {
	Format string `toml:"format"`
	Name   string `toml:"name"`
	Export string `toml:"export"`
	AMDID  string `toml:"amd_id"`
}

// ImportConfig is one [[imports]] entry.
type ImportConfig struct {
	Name   string `toml:"name"`
	Source string `toml:"source"`
}

// LoadManifest finds modwrap.toml starting at startDir and loads it.
// ok is false when no manifest exists.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes and checks a modwrap.toml file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("bundle") {
		return Config{}, fmt.Errorf("%s: %w", path, ErrBundleSectionMissing)
	}
	if !meta.IsDefined("bundle", "format") || strings.TrimSpace(cfg.Bundle.Format) == "" {
		return Config{}, fmt.Errorf("%s: %w", path, ErrFormatMissing)
	}
	if _, err := wrapper.ParseFormat(cfg.Bundle.Format); err != nil {
		return Config{}, fmt.Errorf("%s: [bundle].format: %w", path, err)
	}
	for i, imp := range cfg.Imports {
		if strings.TrimSpace(imp.Name) == "" {
			return Config{}, fmt.Errorf("%s: imports[%d]: missing name", path, i)
		}
		if strings.TrimSpace(imp.Source) == "" {
			return Config{}, fmt.Errorf("%s: imports[%d]: missing source", path, i)
		}
	}
	return cfg.normalized(), nil
}

// normalized returns cfg with identifiers and specifiers in NFC so that
// equal names written with different code point sequences compare equal.
func (cfg Config) normalized() Config {
	out := Config{
		Bundle: BundleConfig{
			Format: strings.TrimSpace(cfg.Bundle.Format),
			Name:   Identifier(cfg.Bundle.Name),
			Export: Identifier(cfg.Bundle.Export),
			AMDID:  norm.NFC.String(strings.TrimSpace(cfg.Bundle.AMDID)),
		},
	}
	for _, imp := range cfg.Imports {
		out.Imports = append(out.Imports, ImportConfig{
			Name:   Identifier(imp.Name),
			Source: norm.NFC.String(imp.Source),
		})
	}
	if len(cfg.Globals) > 0 {
		out.Globals = make(map[string]string, len(cfg.Globals))
		for src, global := range cfg.Globals {
			out.Globals[norm.NFC.String(src)] = Identifier(global)
		}
	}
	return out
}

// Identifier trims and NFC-normalizes a JavaScript identifier or expression.
func Identifier(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Format returns the parsed [bundle].format.
func (cfg Config) Format() (wrapper.Format, error) {
	return wrapper.ParseFormat(cfg.Bundle.Format)
}

// WrapperImports returns the [[imports]] entries in declaration order.
func (cfg Config) WrapperImports() []wrapper.Import {
	imports := make([]wrapper.Import, len(cfg.Imports))
	for i, imp := range cfg.Imports {
		imports[i] = wrapper.Import{Name: imp.Name, Source: imp.Source}
	}
	return imports
}
