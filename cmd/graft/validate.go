package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft/internal/cli"
	"github.com/aretw0/graft/internal/presentation/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the project's plans for consistency",
	Long: `Parses, validates and statically resolves every plan in the project,
reporting malformed documents, unknown policies and strict-mode collisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, loader, logger, err := projectContext(cmd)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		lint := func() bool {
			checked, err := cli.ValidateAll(loader, cfg, logger)
			if err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return false
			}
			fmt.Printf("Plans are valid! ✅ (%d checked)\n", checked)
			return true
		}

		if watchMode, _ := cmd.Flags().GetBool("watch"); watchMode {
			report.PrintBanner()
			if err := cli.Watch(context.Background(), loader, func() { lint() }); err != nil {
				fmt.Printf("Watcher failed: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if !lint() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolP("watch", "w", false, "Re-validate whenever a plan document changes")
}
