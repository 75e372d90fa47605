package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "scholar",
		Short:         "Academic publication metadata service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.toml (overlays are read from the same directory)")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))

	return root
}
