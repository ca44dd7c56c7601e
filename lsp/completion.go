package lsp

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/chenqi92/inflowave/completion"
)

// Completion handles textDocument/completion requests.
// The engine does the grammar work; this method maps document state in and
// protocol items out, and drops responses superseded by a newer request.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	defer s.logTimed("Completion", time.Now())
	s.logger.Debug("Completion",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	seq := s.completionSeq.Add(1)

	offset := offsetForPosition(doc.Content, params.Position)
	items := s.engine.Complete(ctx, s.completionRequest(doc.Content, offset))

	// A newer keystroke arrived while we were resolving symbols; the
	// editor has already re-requested, so this result is dead weight.
	if s.completionSeq.Load() != seq {
		s.logger.Debug("Completion superseded", zap.Int64("seq", seq))
		return &protocol.CompletionList{IsIncomplete: true}, nil
	}

	result := convertItems(items)

	if prefix := extractPrefix(doc.Content[:offset]); prefix != "" {
		result = filterByPrefix(result, prefix)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        result,
	}, nil
}

// completionRequest assembles the engine request from the workspace config
// and the optional live schema provider.
func (s *Server) completionRequest(text string, offset int) completion.Request {
	req := completion.Request{
		Text:         text,
		Offset:       offset,
		Database:     s.cfg.Database,
		Databases:    s.cfg.Databases,
		Measurements: s.cfg.Measurements,
		Fields:       s.cfg.Fields,
		Tags:         s.cfg.Tags,
	}

	if len(s.cfg.Schema) > 0 {
		req.FieldTags = make(completion.FieldTagMap, len(s.cfg.Schema))
		for name, entry := range s.cfg.Schema {
			req.FieldTags[name] = completion.FieldTags{
				Fields: entry.Fields,
				Tags:   entry.Tags,
			}
		}
	}

	if s.schema != nil {
		database := s.cfg.Database
		req.FetchFields = func(ctx context.Context, measurement string) ([]string, error) {
			return s.schema.FieldsForMeasurement(ctx, database, measurement)
		}
		req.FetchTags = func(ctx context.Context, measurement string) ([]string, error) {
			return s.schema.TagsForMeasurement(ctx, database, measurement)
		}
	}

	return req
}

// convertItems converts engine completions to LSP protocol completions.
func convertItems(items []completion.Item) []protocol.CompletionItem {
	result := make([]protocol.CompletionItem, 0, len(items))

	for i, item := range items {
		lspItem := protocol.CompletionItem{
			Label:      item.Label,
			Kind:       convertItemKind(item.Kind),
			Detail:     item.Detail,
			InsertText: item.InsertText,
			// Preserve the engine's ranking against the client's
			// default alphabetical sort.
			SortText: sortKey(i),
		}

		if item.Documentation != "" {
			lspItem.Documentation = &protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: item.Documentation,
			}
		}

		if item.IsSnippet {
			lspItem.InsertTextFormat = protocol.InsertTextFormatSnippet
		}

		result = append(result, lspItem)
	}

	return result
}

// convertItemKind converts engine completion kinds to LSP protocol kinds.
func convertItemKind(kind completion.ItemKind) protocol.CompletionItemKind {
	switch kind {
	case completion.ItemKeyword:
		return protocol.CompletionItemKindKeyword
	case completion.ItemFunction:
		return protocol.CompletionItemKindFunction
	case completion.ItemMeasurement:
		return protocol.CompletionItemKindClass
	case completion.ItemDatabase:
		return protocol.CompletionItemKindModule
	case completion.ItemField:
		return protocol.CompletionItemKindField
	case completion.ItemTag:
		return protocol.CompletionItemKindProperty
	case completion.ItemOperator:
		return protocol.CompletionItemKindOperator
	case completion.ItemValue:
		return protocol.CompletionItemKindValue
	case completion.ItemSnippet:
		return protocol.CompletionItemKindSnippet
	default:
		return protocol.CompletionItemKindText
	}
}

// sortKey produces a zero-padded rank so lexicographic client sorting
// matches engine order.
func sortKey(rank int) string {
	return fmt.Sprintf("%04d", rank)
}

// filterByPrefix filters completion items by a case-insensitive prefix.
func filterByPrefix(items []protocol.CompletionItem, prefix string) []protocol.CompletionItem {
	prefix = strings.ToLower(prefix)
	filtered := make([]protocol.CompletionItem, 0, len(items))
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), prefix) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// extractPrefix extracts the identifier prefix being typed.
func extractPrefix(text string) string {
	end := len(text)
	start := end

	for i := end - 1; i >= 0; i-- {
		c := rune(text[i])
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
			start = i
		} else {
			break
		}
	}
	return text[start:end]
}

// offsetForPosition converts an LSP line/character position to a byte
// offset into content. Positions past the end of a line or the document
// clamp rather than error, matching how editors report positions during
// rapid edits.
func offsetForPosition(content string, pos protocol.Position) int {
	offset := 0
	line := uint32(0)

	for line < pos.Line {
		nl := strings.IndexByte(content[offset:], '\n')
		if nl < 0 {
			return len(content)
		}
		offset += nl + 1
		line++
	}

	lineEnd := len(content)
	if nl := strings.IndexByte(content[offset:], '\n'); nl >= 0 {
		lineEnd = offset + nl
	}

	offset += int(pos.Character)
	if offset > lineEnd {
		offset = lineEnd
	}
	return offset
}
