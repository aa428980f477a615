package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"modwrap/internal/trace"
	"modwrap/internal/wrapper"
)

var introCmd = &cobra.Command{
	Use:   "intro [flags]",
	Short: "Print the prologue that precedes a bundle body",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeader(cmd, "intro", func(setup *bundleSetup) (string, error) {
			return wrapper.Intro(setup.format, setup.opts, setup.imports)
		})
	},
}

var outroCmd = &cobra.Command{
	Use:   "outro [flags]",
	Short: "Print the epilogue that follows a bundle body",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeader(cmd, "outro", func(setup *bundleSetup) (string, error) {
			if setup.export == "" {
				return "", errors.New("outro: missing export name (pass --export or set [bundle].export)")
			}
			out, err := wrapper.Outro(setup.format, setup.export, setup.opts, setup.imports)
			if err != nil {
				return "", err
			}
			return out + "\n", nil
		})
	},
}

func init() {
	addBundleFlags(introCmd)
	addBundleFlags(outroCmd)
}

func runHeader(cmd *cobra.Command, name string, render func(*bundleSetup) (string, error)) error {
	cmd.SilenceUsage = true

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	tracer := trace.FromContext(cmd.Context())
	span := trace.Begin(tracer, trace.ScopeDriver, name, 0)
	defer span.End("")

	setup, err := loadBundleSetup(cmd)
	if err != nil {
		return err
	}
	span.WithExtra("format", setup.format.String())
	if setup.source != "" {
		trace.Point(tracer, trace.ScopeStep, "config", setup.source, span.ID())
	}

	w, err := newWarner(cmd)
	if err != nil {
		return err
	}
	if _, err := setup.resolveGlobals(w); err != nil {
		return err
	}

	text, err := render(setup)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}
