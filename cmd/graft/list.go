package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the plans in the project",
	Run: func(cmd *cobra.Command, args []string) {
		_, loader, _, err := projectContext(cmd)
		if err != nil {
			fmt.Printf("Error initializing graft: %v\n", err)
			os.Exit(1)
		}

		ids, err := loader.ListPlans()
		if err != nil {
			fmt.Printf("Error listing plans: %v\n", err)
			os.Exit(1)
		}

		for _, id := range ids {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
