// Command inflowave completes and inspects time series queries from the
// command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/chenqi92/inflowave"
)

func main() {
	app := &cli.Command{
		Name:  "inflowave",
		Usage: "Context-aware completion for time series query languages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file (default: search upward from cwd)",
				Sources: cli.EnvVars("INFLOWAVE_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "target",
				Aliases: []string{"t"},
				Usage:   "server version or family (1.x, 2.x, 3.x, or e.g. 1.8.10)",
				Sources: cli.EnvVars("INFLOWAVE_TARGET"),
			},
		},
		Commands: []*cli.Command{
			completeCommand(),
			tablesCommand(),
			playCommand(),
			versionsCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the workspace config: the explicit --config path when
// given, otherwise the nearest config file above the working directory. A
// missing config is not an error; completion falls back to defaults.
func loadConfig(cmd *cli.Command) (*inflowave.Config, error) {
	if path := cmd.String("config"); path != "" {
		return inflowave.LoadConfigFile(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting cwd: %w", err)
	}

	cfg, err := inflowave.LoadConfig(cwd)
	if errors.Is(err, inflowave.ErrConfigNotFound) {
		return &inflowave.Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// versionKey resolves the language version: flag wins over config.
func versionKey(cmd *cli.Command, cfg *inflowave.Config) string {
	if target := cmd.String("target"); target != "" {
		return target
	}
	return cfg.VersionKey()
}

func versionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "versions",
		Usage: "List registered language versions",
		Action: func(_ context.Context, _ *cli.Command) error {
			for _, key := range inflowave.RegisteredVersions() {
				fmt.Println(key)
			}
			return nil
		},
	}
}
