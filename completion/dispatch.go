package completion

import (
	"context"

	"go.uber.org/zap"

	"github.com/chenqi92/inflowave"
)

// Engine produces ranked completion candidates for a version family.
// It holds no per-request state: the version config and logger are read-only,
// so one Engine is safe to share across concurrent requests.
type Engine struct {
	version *inflowave.VersionConfig
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger for debug traces of dispatch decisions.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine for a version key.
// Unknown keys fall back to the baseline family rather than erroring.
func NewEngine(versionKey string, opts ...Option) *Engine {
	e := &Engine{
		version: inflowave.VersionFor(versionKey),
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Version returns the version config this engine completes against.
func (e *Engine) Version() *inflowave.VersionConfig {
	return e.version
}

// Request carries one completion invocation. All symbol inputs are
// caller-supplied and read-only for the duration of the call.
type Request struct {
	// Text is the full document text; Offset the cursor byte offset.
	Text   string
	Offset int

	// Database is the currently selected database, if any.
	Database string

	// Databases and Measurements are the known schema object names.
	Databases    []string
	Measurements []string

	// Fields and Tags are the defaults used when a table-scoped lookup
	// is unavailable or fails.
	Fields []string
	Tags   []string

	// FieldTags optionally scopes fields/tags per measurement.
	FieldTags FieldTagMap

	// FetchFields and FetchTags optionally refresh per-measurement
	// symbols from a schema provider.
	FetchFields FetchFunc
	FetchTags   FetchFunc
}

// Complete analyzes the cursor position and returns the ranked candidate
// list. It never fails: degraded input degrades to the default suggestion
// branch, and a schema provider failure falls back to the request's default
// symbols. The caller owns supersession of stale requests.
func (e *Engine) Complete(ctx context.Context, req Request) []Item {
	qc := Analyze(req.Text, req.Offset, req.Database)

	e.logger.Debug("completion context",
		zap.Stringer("statement", qc.Statement),
		zap.Stringer("clause", qc.Clause),
		zap.String("precedingWord", qc.PrecedingWord),
		zap.String("currentTable", qc.CurrentTable),
		zap.Bool("expectingField", qc.ExpectingField),
		zap.Bool("expectingTable", qc.ExpectingTable))

	items := e.dispatch(ctx, &qc, &req)

	// While the statement is not yet recognizably SELECT/SHOW/CREATE,
	// offer full query skeletons alongside whatever the branch produced.
	switch qc.Statement {
	case StatementSelect, StatementShow, StatementCreate:
	default:
		items = append(items, templateItems()...)
	}

	rank(items, &qc)

	return items
}

// dispatch is the fixed decision list: first match wins.
func (e *Engine) dispatch(ctx context.Context, qc *QueryContext, req *Request) []Item {
	switch {
	case qc.ExpectingTable:
		return measurementItems(req.Measurements)

	// A field-seeking position inside WHERE/GROUP BY/ORDER BY belongs to
	// that clause's branch below, which adds the clause vocabulary
	// (operators, time buckets, ordering keywords) on top of the symbols.
	case qc.ExpectingField && !qc.InWhere && !qc.InGroupBy && !qc.InOrderBy:
		fields, tags := e.resolveFieldTags(ctx, qc, req)
		items := fieldItems(fields, qc.CurrentTable)
		items = append(items, tagItems(tags, qc.CurrentTable)...)
		items = append(items, specialFieldItems()...)
		items = append(items, functionItems(e.version)...)

		return items

	case qc.PrecedingWord == "SELECT" || qc.Clause == ClauseSelect:
		fields, _ := e.lookupFieldTags(qc, req)
		items := fieldItems(fields, qc.CurrentTable)
		items = append(items, functionItems(e.version)...)
		items = append(items, specialFieldItems()...)

		return items

	case qc.PrecedingWord == "FROM" || qc.InFrom:
		return measurementItems(req.Measurements)

	case qc.PrecedingWord == "WHERE" || qc.InWhere:
		fields, tags := e.resolveFieldTags(ctx, qc, req)
		items := fieldItems(fields, qc.CurrentTable)
		items = append(items, tagItems(tags, qc.CurrentTable)...)
		items = append(items, operatorItems()...)
		items = append(items, timeLiteralItems()...)

		return items

	case qc.PrecedingWord == "GROUP" || qc.InGroupBy:
		_, tags := e.resolveFieldTags(ctx, qc, req)
		items := timeBucketItems()
		items = append(items, tagItems(tags, qc.CurrentTable)...)

		return items

	case qc.PrecedingWord == "ORDER" || qc.InOrderBy:
		fields, _ := e.lookupFieldTags(qc, req)
		items := orderByItems()
		items = append(items, fieldItems(fields, qc.CurrentTable)...)

		return items

	case qc.PrecedingWord == "SHOW" || qc.PrecedingWord == "CREATE" || qc.PrecedingWord == "DROP":
		return verbItems(e.version, qc.PrecedingWord)

	default:
		items := keywordItems(e.version)
		items = append(items, functionItems(e.version)...)
		if qc.Database == "" {
			items = append(items, databaseItems(req.Databases)...)
		} else {
			items = append(items, measurementItems(req.Measurements)...)
		}

		return items
	}
}

// lookupFieldTags is the synchronous variant of resolveFieldTags: it consults
// the FieldTagMap but never calls out to the schema provider.
func (e *Engine) lookupFieldTags(qc *QueryContext, req *Request) ([]string, []string) {
	if qc.CurrentTable != "" {
		if ft, ok := req.FieldTags[qc.CurrentTable]; ok {
			return orDefault(ft.Fields, req.Fields), orDefault(ft.Tags, req.Tags)
		}
	}

	return req.Fields, req.Tags
}
