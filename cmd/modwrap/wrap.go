package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modwrap/internal/driver"
	"modwrap/internal/observ"
	"modwrap/internal/trace"
	"modwrap/internal/wrapcache"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap [flags] <bundle.js> [bundle.js...]",
	Short: "Wrap bundle files for the configured module format",
	Long: `Wrap each bundle file with the intro and outro for the configured format.
Output goes to <stem>.<format><ext> next to the input, or into --out-dir.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWrap,
}

func init() {
	addBundleFlags(wrapCmd)
	wrapCmd.Flags().String("out-dir", "", "directory for wrapped files")
	wrapCmd.Flags().Bool("stdout", false, "print wrapped output instead of writing files")
	wrapCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	wrapCmd.Flags().Bool("no-cache", false, "do not read or write the wrapper cache")
}

func runWrap(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	if toStdout && outDir != "" {
		return fmt.Errorf("wrap: --stdout cannot be used with --out-dir")
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	tracer := trace.FromContext(cmd.Context())

	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
		defer func() { fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) }()
	}

	phase := timer.Begin("config")
	setup, err := loadBundleSetup(cmd)
	if err != nil {
		return err
	}
	timer.End(phase, setup.source)
	if setup.export == "" {
		return fmt.Errorf("wrap: missing export name (pass --export or set [bundle].export)")
	}
	w, err := newWarner(cmd)
	if err != nil {
		return err
	}
	phase = timer.Begin("globals")
	if _, err := setup.resolveGlobals(w); err != nil {
		return fmt.Errorf("wrap: %w", err)
	}
	timer.End(phase, "")

	var cache *wrapcache.Cache
	if !noCache {
		cache, err = wrapcache.OpenDefault("modwrap")
		if err != nil {
			trace.Warn(tracer, "cache disabled: "+err.Error())
		}
	}

	phase = timer.Begin("wrap")
	results, err := driver.WrapFiles(cmd.Context(), args, driver.WrapOptions{
		Format:  setup.format,
		Export:  setup.export,
		Options: setup.opts,
		Imports: setup.imports,
		OutDir:  outDir,
		DryRun:  toStdout,
		Jobs:    jobs,
		Cache:   cache,
	})
	if err != nil {
		return fmt.Errorf("wrap: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))
	return renderWrapResults(cmd, results, toStdout)
}

func renderWrapResults(cmd *cobra.Command, results []driver.WrapResult, toStdout bool) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s%s: %v\n", errorColor.Sprint("wrap: "), res.Path, res.Err)
			continue
		}
		if toStdout {
			if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
				return err
			}
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.Path, res.OutPath)
		}
	}
	if failed > 0 {
		return fmt.Errorf("wrap: failed to wrap %d of %d files", failed, len(results))
	}
	return nil
}
