package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graft",
	Short: "Graft is a behavior composition engine",
	Long: `Graft composes behaviors (mixins) into target member tables under
pluggable conflict policies.

This tool works on a project of declarative plan documents: it lints them,
reports member provenance, and exports composition diagrams.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the Graft project")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose logging to stderr")
}
