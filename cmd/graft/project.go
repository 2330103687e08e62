package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft/internal/cli"
	loamadapter "github.com/aretw0/graft/pkg/adapters/loam"
)

// projectContext resolves the persistent flags into the config, plan loader
// and logger shared by the plan commands.
func projectContext(cmd *cobra.Command) (cli.Config, *loamadapter.Loader, *slog.Logger, error) {
	dir, _ := cmd.Flags().GetString("dir")

	cfg, err := cli.LoadConfig(dir)
	if err != nil {
		return cli.Config{}, nil, nil, err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}

	loader, err := cli.OpenLoader(cfg, dir)
	if err != nil {
		return cli.Config{}, nil, nil, err
	}

	return cfg, loader, cli.NewLogger(cfg.Debug), nil
}
