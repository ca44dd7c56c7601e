// Package lsp implements a Language Server Protocol server exposing the
// completion engine to editors. It is a thin adapter: document bookkeeping
// and protocol mapping live here, grammar knowledge lives in the engine.
package lsp

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/chenqi92/inflowave"
	"github.com/chenqi92/inflowave/completion"
)

// SchemaProvider looks up per-measurement symbols from the backend.
// Implementations may be slow or fail; the engine degrades to the configured
// default symbols in that case.
type SchemaProvider interface {
	FieldsForMeasurement(ctx context.Context, database, measurement string) ([]string, error)
	TagsForMeasurement(ctx context.Context, database, measurement string) ([]string, error)
}

// Server implements the LSP Server interface.
type Server struct {
	client protocol.Client
	logger *zap.Logger

	// Document state
	mu        sync.RWMutex
	documents map[protocol.DocumentURI]*Document

	engine *completion.Engine
	cfg    *inflowave.Config
	schema SchemaProvider // may be nil

	// completionSeq tags completion requests with a monotonically
	// increasing sequence number so stale responses are never rendered.
	completionSeq atomic.Int64

	// Server state
	initialized   bool
	shutdown      bool
	workspaceRoot string
}

// Document represents an open document in the server.
type Document struct {
	URI     protocol.DocumentURI
	Version int32
	Content string
}

// NewServer creates a new LSP server.
// cfg supplies the version key and the offline schema symbols; provider is
// the optional live schema lookup and may be nil.
func NewServer(client protocol.Client, logger *zap.Logger, cfg *inflowave.Config, provider SchemaProvider) *Server {
	if cfg == nil {
		cfg = &inflowave.Config{}
	}

	engine := completion.NewEngine(cfg.VersionKey(), completion.WithLogger(logger))

	logger.Info("Completion engine ready",
		zap.String("family", engine.Version().Family),
		zap.Strings("available", inflowave.RegisteredVersions()))

	return &Server{
		client:    client,
		logger:    logger,
		documents: make(map[protocol.DocumentURI]*Document),
		engine:    engine,
		cfg:       cfg,
		schema:    provider,
	}
}

// Initialize handles the initialize request.
func (s *Server) Initialize(_ context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s.logger.Info("Initialize")

	if params.RootURI != "" {
		s.workspaceRoot = params.RootURI.Filename()
		s.logger.Info("Workspace root", zap.String("root", s.workspaceRoot))
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			// Full document sync - client sends entire content on change
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			HoverProvider: true,
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{" ", ",", ".", `"`},
				ResolveProvider:   false,
			},
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    "inflowave-lsp",
			Version: "0.1.0",
		},
	}, nil
}

// Initialized handles the initialized notification.
func (s *Server) Initialized(_ context.Context, _ *protocol.InitializedParams) error {
	s.logger.Info("Initialized")
	s.initialized = true

	return nil
}

// Shutdown handles the shutdown request.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info("Shutdown")
	s.shutdown = true

	return nil
}

// Exit handles the exit notification.
func (s *Server) Exit(_ context.Context) error {
	s.logger.Info("Exit")
	// The main loop should handle exiting after this
	return nil
}

// DidOpen handles textDocument/didOpen notifications.
func (s *Server) DidOpen(_ context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.logger.Info("DidOpen", zap.String("uri", string(params.TextDocument.URI)))

	doc := &Document{
		URI:     params.TextDocument.URI,
		Version: params.TextDocument.Version,
		Content: params.TextDocument.Text,
	}

	s.mu.Lock()
	s.documents[params.TextDocument.URI] = doc
	s.mu.Unlock()

	return nil
}

// DidChange handles textDocument/didChange notifications.
func (s *Server) DidChange(_ context.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.logger.Debug("DidChange",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Int32("version", params.TextDocument.Version))

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[params.TextDocument.URI]
	if !ok {
		s.logger.Warn("DidChange for unknown document", zap.String("uri", string(params.TextDocument.URI)))

		return nil
	}

	// Full sync - take the last content change (should only be one)
	if len(params.ContentChanges) > 0 {
		doc.Content = params.ContentChanges[len(params.ContentChanges)-1].Text
		doc.Version = params.TextDocument.Version
	}

	return nil
}

// DidClose handles textDocument/didClose notifications.
func (s *Server) DidClose(_ context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.logger.Info("DidClose", zap.String("uri", string(params.TextDocument.URI)))

	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()

	return nil
}

// DidSave handles textDocument/didSave notifications.
func (s *Server) DidSave(_ context.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.logger.Info("DidSave", zap.String("uri", string(params.TextDocument.URI)))

	return nil
}

// getDocument returns a document by URI (read-locked).
func (s *Server) getDocument(uri protocol.DocumentURI) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[uri]

	return doc, ok
}

// logTimed is deferred by request handlers to record how long they took.
func (s *Server) logTimed(handler string, start time.Time) {
	s.logger.Debug("handler done",
		zap.String("handler", handler),
		zap.Duration("elapsed", time.Since(start)))
}
