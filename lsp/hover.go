package lsp

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// Hover handles textDocument/hover requests. Keywords and functions of the
// active language version get their vocabulary documentation; everything
// else hovers to nothing.
func (s *Server) Hover(_ context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	defer s.logTimed("Hover", time.Now())
	s.logger.Debug("Hover",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	offset := offsetForPosition(doc.Content, params.Position)
	word := wordAt(doc.Content, offset)
	if word == "" {
		return nil, nil //nolint:nilnil
	}

	version := s.engine.Version()

	var content string
	if doc, ok := version.Keywords[strings.ToUpper(word)]; ok {
		content = fmt.Sprintf("**%s** (keyword)\n\n%s", strings.ToUpper(word), doc)
	} else if doc, ok := version.Functions[strings.ToLower(word)]; ok {
		content = fmt.Sprintf("**%s** (function)\n\n%s", strings.ToLower(word), doc)
	}

	if content == "" {
		return nil, nil //nolint:nilnil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: content,
		},
	}, nil
}

// wordAt returns the identifier surrounding a byte offset.
func wordAt(content string, offset int) string {
	if offset < 0 || offset > len(content) {
		return ""
	}

	start := offset
	for start > 0 && isIdentByte(content[start-1]) {
		start--
	}

	end := offset
	for end < len(content) && isIdentByte(content[end]) {
		end++
	}

	return content[start:end]
}

func isIdentByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)) || b == '_'
}
