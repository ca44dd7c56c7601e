package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/chenqi92/inflowave/completion"
)

func completeCommand() *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Aliases:   []string{"c"},
		Usage:     "Complete a query at a cursor offset",
		ArgsUsage: "[query text, or - to read stdin]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "cursor byte offset (default: end of text)",
				Value:   -1,
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "selected database (overrides config)",
			},
			&cli.StringSliceFlag{
				Name:    "measurement",
				Aliases: []string{"m"},
				Usage:   "known measurement name (repeatable, overrides config)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit candidates as JSON",
			},
		},
		Action: runComplete,
	}
}

// completeResult is the JSON shape of one candidate.
type completeResult struct {
	Label         string `json:"label"`
	Kind          string `json:"kind"`
	Detail        string `json:"detail,omitempty"`
	Documentation string `json:"documentation,omitempty"`
	InsertText    string `json:"insertText,omitempty"`
	IsSnippet     bool   `json:"isSnippet,omitempty"`
}

func runComplete(ctx context.Context, cmd *cli.Command) error {
	text, err := queryText(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	offset := int(cmd.Int("offset"))
	if offset < 0 || offset > len(text) {
		offset = len(text)
	}

	engine := completion.NewEngine(versionKey(cmd, cfg))

	req := completion.Request{
		Text:         text,
		Offset:       offset,
		Database:     cfg.Database,
		Databases:    cfg.Databases,
		Measurements: cfg.Measurements,
		Fields:       cfg.Fields,
		Tags:         cfg.Tags,
	}
	if db := cmd.String("database"); db != "" {
		req.Database = db
	}
	if ms := cmd.StringSlice("measurement"); len(ms) > 0 {
		req.Measurements = ms
	}
	if len(cfg.Schema) > 0 {
		req.FieldTags = make(completion.FieldTagMap, len(cfg.Schema))
		for name, entry := range cfg.Schema {
			req.FieldTags[name] = completion.FieldTags{Fields: entry.Fields, Tags: entry.Tags}
		}
	}

	items := engine.Complete(ctx, req)

	if cmd.Bool("json") {
		results := make([]completeResult, 0, len(items))
		for _, item := range items {
			results = append(results, completeResult{
				Label:         item.Label,
				Kind:          item.Kind.String(),
				Detail:        item.Detail,
				Documentation: item.Documentation,
				InsertText:    item.InsertText,
				IsSnippet:     item.IsSnippet,
			})
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, item := range items {
		if item.Detail != "" {
			fmt.Printf("%-12s %s\t%s\n", item.Kind, item.Label, item.Detail)
		} else {
			fmt.Printf("%-12s %s\n", item.Kind, item.Label)
		}
	}
	return nil
}

// queryText reads the query from the argument list, or from stdin when the
// sole argument is "-" or no argument is given.
func queryText(cmd *cli.Command) (string, error) {
	args := cmd.Args().Slice()
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	if len(args) > 1 {
		return "", fmt.Errorf("expected a single query argument, got %d", len(args))
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
