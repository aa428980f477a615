// Package driver runs wrapper rendering over bundle files on disk.
package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"modwrap/internal/project"
	"modwrap/internal/trace"
	"modwrap/internal/wrapcache"
	"modwrap/internal/wrapper"
)

// WrapOptions configures WrapFiles.
type WrapOptions struct {
	Format  wrapper.Format
	Export  string
	Options wrapper.Options
	Imports []wrapper.Import

	// OutDir receives wrapped files; "" writes next to each input.
	OutDir string
	// DryRun keeps wrapped output in WrapResult.Output instead of writing it.
	DryRun bool
	Jobs   int
	Cache  *wrapcache.Cache
}

// WrapResult is the outcome for one input file.
type WrapResult struct {
	Path    string // input path
	OutPath string // written file, "" on dry run or error
	Output  []byte // wrapped text, kept only on dry run
	Err     error
}

// Headers renders the intro and outro for opts, consulting the cache first.
// cached reports whether the cache served them.
func Headers(ctx context.Context, opts WrapOptions) (intro, outro string, cached bool, err error) {
	tracer := trace.FromContext(ctx)
	if opts.Export == "" {
		return "", "", false, &wrapper.MissingOptionError{Option: "export", Format: opts.Format}
	}

	var globals []string
	switch opts.Format {
	case wrapper.FormatUMD, wrapper.FormatIIFE, wrapper.FormatEval:
		globals, err = wrapper.GlobalArgs(opts.Options, opts.Imports)
		if err != nil {
			return "", "", false, err
		}
	}
	key := project.WrapperKey(opts.Format, opts.Options, opts.Export, opts.Imports, globals)
	if payload, ok, err := opts.Cache.Get(key); err != nil {
		// a broken entry is rebuilt below
		trace.Point(tracer, trace.ScopeStep, "cache", "read error: "+err.Error(), 0)
	} else if ok {
		trace.Point(tracer, trace.ScopeStep, "cache", "hit "+key.String()[:12], 0)
		return payload.Intro, payload.Outro, true, nil
	}

	intro, err = wrapper.Intro(opts.Format, opts.Options, opts.Imports)
	if err != nil {
		return "", "", false, err
	}
	outro, err = wrapper.Outro(opts.Format, opts.Export, opts.Options, opts.Imports)
	if err != nil {
		return "", "", false, err
	}
	trace.Point(tracer, trace.ScopeStep, "render", opts.Format.String(), 0)

	if opts.Cache != nil {
		payload, err := wrapcache.NewPayload(opts.Format, len(opts.Imports), intro, outro)
		if err == nil {
			err = opts.Cache.Put(key, payload)
		}
		if err != nil {
			trace.Point(tracer, trace.ScopeStep, "cache", "write error: "+err.Error(), 0)
		}
	}
	return intro, outro, false, nil
}

// OutputPath returns where the wrapped form of input is written:
// "<stem>.<format><ext>" in outDir, or beside input when outDir is "".
func OutputPath(input string, format wrapper.Format, outDir string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".js"
	}
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, stem+"."+format.String()+ext)
}

// WrapFiles wraps every file in parallel. Per-file failures are reported in
// the results; the returned error is reserved for header rendering and
// cancellation.
func WrapFiles(ctx context.Context, files []string, opts WrapOptions) ([]WrapResult, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "wrap", 0)
	defer span.End("")

	intro, outro, cached, err := Headers(ctx, opts)
	if err != nil {
		return nil, err
	}
	span.WithExtra("cached", fmt.Sprint(cached))

	if len(files) == 0 {
		return nil, nil
	}
	if opts.OutDir != "" && !opts.DryRun {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return nil, err
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns results[i]
	results := make([]WrapResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fileSpan := trace.Begin(tracer, trace.ScopeTarget, "target:"+path, span.ID())
			results[i] = wrapOne(path, intro, outro, opts)
			if results[i].Err != nil {
				fileSpan.End("error")
			} else {
				fileSpan.End(results[i].OutPath)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func wrapOne(path, intro, outro string, opts WrapOptions) WrapResult {
	res := WrapResult{Path: path}
	body, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read bundle: %w", err)
		return res
	}
	out := []byte(wrapper.Assemble(intro, string(body), outro))
	if opts.DryRun {
		res.Output = out
		return res
	}
	outPath := OutputPath(path, opts.Format, opts.OutDir)
	if err := writeAtomic(outPath, out); err != nil {
		res.Err = err
		return res
	}
	res.OutPath = outPath
	return res
}

func writeAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".modwrap-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
