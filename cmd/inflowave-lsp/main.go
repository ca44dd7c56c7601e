// Command inflowave-lsp is a Language Server Protocol server offering
// completion and hover for time series query files.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chenqi92/inflowave"
	"github.com/chenqi92/inflowave/lsp"
)

var (
	configFlag = flag.String("config", "", "path to config file (default: search upward from cwd)")
	targetFlag = flag.String("target", "", "server version or family (1.x, 2.x, 3.x)")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	// Set up logging to stderr (stdout is for LSP communication)
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	if *debugFlag {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	defer func() {
		_ = logger.Sync()
	}()

	cfg := resolveConfig(logger)
	if *targetFlag != "" {
		cfg.Version = *targetFlag
	}

	logger.Info("Starting inflowave-lsp server", zap.String("version", cfg.VersionKey()))

	ctx := context.Background()

	err = run(ctx, logger, os.Stdin, os.Stdout, cfg)
	if err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

// resolveConfig loads the workspace config; a missing config file is normal
// and falls back to defaults.
func resolveConfig(logger *zap.Logger) *inflowave.Config {
	if *configFlag != "" {
		cfg, err := inflowave.LoadConfigFile(*configFlag)
		if err != nil {
			logger.Warn("Failed to load config", zap.String("path", *configFlag), zap.Error(err))
			return &inflowave.Config{}
		}
		return cfg
	}

	cwd, err := os.Getwd()
	if err != nil {
		return &inflowave.Config{}
	}

	cfg, err := inflowave.LoadConfig(cwd)
	if err != nil {
		if !errors.Is(err, inflowave.ErrConfigNotFound) {
			logger.Warn("Failed to load config", zap.Error(err))
		}
		return &inflowave.Config{}
	}
	return cfg
}

func run(ctx context.Context, logger *zap.Logger, in io.Reader, out io.Writer, cfg *inflowave.Config) error {
	// Create a JSON-RPC stream connection over stdio
	stream := jsonrpc2.NewStream(&readWriteCloser{in, out})
	conn := jsonrpc2.NewConn(stream)

	// Create a client to send notifications to the editor
	client := protocol.ClientDispatcher(conn, logger)

	server := lsp.NewServer(client, logger, cfg, nil)

	// Register the server handler with the connection
	conn.Go(ctx, protocol.ServerHandler(server, nil))

	// Wait for the connection to close
	<-conn.Done()

	return conn.Err()
}

// readWriteCloser wraps separate reader/writer into io.ReadWriteCloser.
type readWriteCloser struct {
	io.Reader
	io.Writer
}

func (rwc *readWriteCloser) Close() error {
	if c, ok := rwc.Writer.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
