package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft/internal/cli"
	"github.com/aretw0/graft/internal/presentation/report"
	"github.com/aretw0/graft/pkg/manifest"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <plan>",
	Short: "Report member provenance for a plan",
	Long: `Resolves a plan without running any user code and reports where every
member of the composed target comes from, including the conflicts each
member went through.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, loader, _, err := projectContext(cmd)
		if err != nil {
			fmt.Printf("Error initializing graft: %v\n", err)
			os.Exit(1)
		}

		p, err := cli.LoadPlan(loader, cfg, args[0])
		if err != nil {
			fmt.Printf("Error loading plan: %v\n", err)
			os.Exit(1)
		}

		res, err := manifest.Resolve(p)
		if err != nil {
			fmt.Printf("Error resolving plan: %v\n", err)
			os.Exit(1)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				fmt.Printf("Error encoding resolution: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
		case "markdown":
			// Raw markdown regardless of TTY, for piping into docs.
			fmt.Print(report.BuildMarkdown(res))
		default:
			render := report.NewRenderer()
			out, err := render(report.BuildMarkdown(res))
			if err != nil {
				fmt.Printf("Error rendering report: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().String("format", "", "Output format: markdown or json (default renders for the terminal)")
}
