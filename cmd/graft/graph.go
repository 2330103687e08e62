package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft/internal/cli"
	"github.com/aretw0/graft/internal/presentation/graph"
	"github.com/aretw0/graft/pkg/manifest"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <plan>",
	Short: "Export the composition graph visualization",
	Long: `Resolves a plan and outputs a Mermaid diagram (graph LR) showing which
source supplied each member of the composed target.`,
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

		fmt.Print(graph.GenerateMermaid(res))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
