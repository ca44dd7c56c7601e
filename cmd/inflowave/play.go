package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chenqi92/inflowave/playground"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Explore completions interactively in the terminal",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if target := cmd.String("target"); target != "" {
				cfg.Version = target
			}
			return playground.Run(cfg)
		},
	}
}
