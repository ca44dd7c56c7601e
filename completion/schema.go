package completion

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FieldTags is the known symbol set of one measurement.
type FieldTags struct {
	Fields []string
	Tags   []string
}

// FieldTagMap maps measurement names to their fields and tags.
// Supplied read-only by the caller; the engine never mutates or caches it.
type FieldTagMap map[string]FieldTags

// FetchFunc asynchronously looks up field or tag names for a measurement
// from an out-of-process schema provider. It may be slow or fail.
type FetchFunc func(ctx context.Context, measurement string) ([]string, error)

// fetchTimeout bounds a single schema lookup; a stuck provider degrades the
// suggestion list instead of stalling the editor.
const fetchTimeout = 2 * time.Second

// resolveFieldTags returns the field and tag names scoped to the context's
// current table. The FieldTagMap is consulted first; otherwise the fetch
// callbacks run, fields and tags concurrently with each other. Any failure
// falls back to the caller-supplied defaults. Results are never cached
// beyond the single request.
func (e *Engine) resolveFieldTags(ctx context.Context, qc *QueryContext, req *Request) ([]string, []string) {
	table := qc.CurrentTable
	if table == "" {
		return req.Fields, req.Tags
	}

	if ft, ok := req.FieldTags[table]; ok {
		return orDefault(ft.Fields, req.Fields), orDefault(ft.Tags, req.Tags)
	}

	if req.FetchFields == nil && req.FetchTags == nil {
		return req.Fields, req.Tags
	}

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	var (
		fields []string
		tags   []string
	)

	g, fetchCtx := errgroup.WithContext(fetchCtx)

	if req.FetchFields != nil {
		g.Go(func() error {
			var err error
			fields, err = req.FetchFields(fetchCtx, table)
			return err
		})
	}
	if req.FetchTags != nil {
		g.Go(func() error {
			var err error
			tags, err = req.FetchTags(fetchCtx, table)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		e.logger.Debug("schema fetch failed, using defaults",
			zap.String("measurement", table),
			zap.Error(err))

		return req.Fields, req.Tags
	}

	return orDefault(fields, req.Fields), orDefault(tags, req.Tags)
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}

	return values
}
