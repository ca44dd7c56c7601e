package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/boyter/gocodewalker"
	"github.com/urfave/cli/v3"

	"github.com/chenqi92/inflowave"
	"github.com/chenqi92/inflowave/completion"
)

func tablesCommand() *cli.Command {
	return &cli.Command{
		Name:      "tables",
		Usage:     "List measurements referenced by query files",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit table names as JSON",
			},
		},
		Action: runTables,
	}
}

func runTables(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collectQueryFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return inflowave.ErrNoQueryFiles
	}

	seen := make(map[string]bool)
	var tables []string
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, name := range completion.ExtractTables(string(data)) {
			if !seen[name] {
				seen[name] = true
				tables = append(tables, name)
			}
		}
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tables)
	}

	for _, name := range tables {
		fmt.Println(name)
	}
	return nil
}

// collectQueryFiles expands the argument list into query file paths. Files
// are taken as-is when they carry a known extension; directories are walked
// respecting .gitignore.
func collectQueryFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			if hasQueryExtension(arg) {
				files = append(files, arg)
			}
			continue
		}

		if err := walkDir(arg, func(path string) {
			files = append(files, path)
		}); err != nil {
			return nil, err
		}
	}
	return files, nil
}

func hasQueryExtension(path string) bool {
	for _, ext := range inflowave.QueryFileExtensions {
		if strings.HasSuffix(path, "."+ext) {
			return true
		}
	}
	return false
}

// walkDir walks a directory for query files, respecting .gitignore.
func walkDir(root string, callback func(path string)) error {
	fileListQueue := make(chan *gocodewalker.File, 100)

	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	fileWalker.AllowListExtensions = inflowave.QueryFileExtensions

	var walkErr error
	fileWalker.SetErrorHandler(func(e error) bool {
		walkErr = e
		return true
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for f := range fileListQueue {
			callback(f.Location)
		}
	}()

	if err := fileWalker.Start(); err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	wg.Wait()

	return walkErr
}
