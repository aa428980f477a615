package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modwrap/internal/wrapcache"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cached wrappers",
	Long:  "Remove the intro/outro cache that wrap keeps under $XDG_CACHE_HOME/modwrap.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cache, err := wrapcache.OpenDefault("modwrap")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clean %q: %w", cache.Dir(), err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed cached wrappers in %s\n", cache.Dir())
	return err
}
