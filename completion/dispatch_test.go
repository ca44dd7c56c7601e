package completion_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenqi92/inflowave/completion"
)

func complete(t *testing.T, text string, req completion.Request) []completion.Item {
	t.Helper()

	engine := completion.NewEngine("1.x")
	req.Text = text
	req.Offset = len(text)

	return engine.Complete(context.Background(), req)
}

func labels(items []completion.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func kinds(items []completion.Item) map[completion.ItemKind]int {
	out := make(map[completion.ItemKind]int)
	for _, item := range items {
		out[item.Kind]++
	}
	return out
}

func TestComplete_AfterFromSuggestsMeasurements(t *testing.T) {
	t.Parallel()

	items := complete(t, "SELECT * FROM ", completion.Request{
		Measurements: []string{"cpu", "mem"},
	})

	require.NotEmpty(t, items)
	assert.Equal(t, []string{"cpu", "mem"}, labels(items))
	assert.Equal(t, completion.ItemMeasurement, items[0].Kind)
}

func TestComplete_AfterSelectSuggestsFieldsAndFunctions(t *testing.T) {
	t.Parallel()

	items := complete(t, "SELECT ", completion.Request{
		Fields: []string{"usage_idle"},
	})

	counts := kinds(items)
	assert.Positive(t, counts[completion.ItemField])
	assert.Positive(t, counts[completion.ItemFunction])

	assert.Contains(t, labels(items), "usage_idle")
	assert.Contains(t, labels(items), "mean")
	assert.Contains(t, labels(items), "*")
}

func TestComplete_WhereSuggestsSymbolsAndOperators(t *testing.T) {
	t.Parallel()

	items := complete(t, `SELECT usage_idle FROM "cpu" WHERE `, completion.Request{
		Fields: []string{"usage_idle"},
		Tags:   []string{"host"},
	})

	got := labels(items)
	assert.Contains(t, got, "usage_idle")
	assert.Contains(t, got, "host")
	assert.Contains(t, got, "=")
	assert.Contains(t, got, "AND")
	assert.Contains(t, got, "time > now() - 1h")

	// Fields outrank tags, which outrank operators, inside WHERE.
	assert.Equal(t, completion.ItemField, items[0].Kind)
}

func TestComplete_GroupBySuggestsBucketsAndTags(t *testing.T) {
	t.Parallel()

	items := complete(t, "SELECT mean(value) FROM cpu GROUP BY ", completion.Request{
		Tags: []string{"host", "region"},
	})

	got := labels(items)
	assert.Contains(t, got, "time(5m)")
	assert.Contains(t, got, "host")
	assert.NotContains(t, got, "cpu", "measurements do not belong in GROUP BY")
}

func TestComplete_OrderBySuggestsOrderingKeywords(t *testing.T) {
	t.Parallel()

	items := complete(t, "SELECT * FROM cpu ORDER BY ", completion.Request{})

	got := labels(items)
	assert.Contains(t, got, "time")
	assert.Contains(t, got, "ASC")
	assert.Contains(t, got, "DESC")
}

func TestComplete_ShowVocabulary(t *testing.T) {
	t.Parallel()

	items := complete(t, "SHOW ", completion.Request{})

	got := labels(items)
	assert.Contains(t, got, "DATABASES")
	assert.Contains(t, got, "MEASUREMENTS")
	assert.Contains(t, got, "CONTINUOUS QUERIES", "1.x supports continuous queries")
}

func TestComplete_ShowVocabularyFeatureGated(t *testing.T) {
	t.Parallel()

	engine := completion.NewEngine("3.x")
	items := engine.Complete(context.Background(), completion.Request{
		Text:   "SHOW ",
		Offset: 5,
	})

	got := labels(items)
	assert.Contains(t, got, "DATABASES")
	assert.NotContains(t, got, "CONTINUOUS QUERIES", "3.x dropped continuous queries")
}

func TestComplete_EmptyInputOffersKeywordsAndTemplates(t *testing.T) {
	t.Parallel()

	items := complete(t, "", completion.Request{
		Databases: []string{"telegraf"},
	})

	counts := kinds(items)
	assert.Positive(t, counts[completion.ItemKeyword])
	assert.Positive(t, counts[completion.ItemSnippet], "templates offered before a statement takes shape")
	assert.Positive(t, counts[completion.ItemDatabase], "no database selected yet")
}

func TestComplete_SelectedDatabaseSwitchesToMeasurements(t *testing.T) {
	t.Parallel()

	items := complete(t, "", completion.Request{
		Database:     "telegraf",
		Databases:    []string{"telegraf"},
		Measurements: []string{"cpu"},
	})

	counts := kinds(items)
	assert.Zero(t, counts[completion.ItemDatabase])
	assert.Positive(t, counts[completion.ItemMeasurement])
}

func TestComplete_NoTemplatesInsideSelect(t *testing.T) {
	t.Parallel()

	items := complete(t, "SELECT * FROM ", completion.Request{
		Measurements: []string{"cpu"},
	})

	assert.Zero(t, kinds(items)[completion.ItemSnippet])
}

func TestComplete_FieldTagMapScopesToCurrentTable(t *testing.T) {
	t.Parallel()

	items := complete(t, `SELECT * FROM "cpu" WHERE `, completion.Request{
		Fields: []string{"default_field"},
		FieldTags: completion.FieldTagMap{
			"cpu": {Fields: []string{"usage_idle"}, Tags: []string{"host"}},
			"mem": {Fields: []string{"used_percent"}},
		},
	})

	got := labels(items)
	assert.Contains(t, got, "usage_idle")
	assert.NotContains(t, got, "used_percent")
	assert.NotContains(t, got, "default_field")
}

func TestComplete_FetchPopulatesSymbols(t *testing.T) {
	t.Parallel()

	items := complete(t, `SELECT * FROM "cpu" WHERE `, completion.Request{
		FetchFields: func(_ context.Context, measurement string) ([]string, error) {
			assert.Equal(t, "cpu", measurement)
			return []string{"usage_user"}, nil
		},
		FetchTags: func(_ context.Context, _ string) ([]string, error) {
			return []string{"host"}, nil
		},
	})

	got := labels(items)
	assert.Contains(t, got, "usage_user")
	assert.Contains(t, got, "host")
}

func TestComplete_FetchFailureFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	items := complete(t, `SELECT * FROM "cpu" WHERE `, completion.Request{
		Fields: []string{"fallback_field"},
		FetchFields: func(_ context.Context, _ string) ([]string, error) {
			return nil, errors.New("connection refused")
		},
	})

	assert.Contains(t, labels(items), "fallback_field")
}

func TestComplete_QuotedInsertText(t *testing.T) {
	t.Parallel()

	items := complete(t, "SELECT * FROM ", completion.Request{
		Measurements: []string{"cpu load"},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "cpu load", items[0].Label)
	assert.Equal(t, `"cpu load"`, items[0].InsertText)
}

func TestNewEngine_UnknownVersionFallsBack(t *testing.T) {
	t.Parallel()

	engine := completion.NewEngine("9.7.3")
	require.NotNil(t, engine.Version())
	assert.Equal(t, "1.x", engine.Version().Family)
}

func TestNewEngine_VersionStringResolvesFamily(t *testing.T) {
	t.Parallel()

	engine := completion.NewEngine("2.7.1")
	assert.Equal(t, "2.x", engine.Version().Family)
}

var snippetPlaceholders = regexp.MustCompile(`\$\d+`)

func TestComplete_TemplateInsertionReanalyzes(t *testing.T) {
	t.Parallel()

	engine := completion.NewEngine("1.x")
	items := engine.Complete(context.Background(), completion.Request{})

	var templates []completion.Item
	for _, item := range items {
		if item.Kind == completion.ItemSnippet {
			templates = append(templates, item)
		}
	}
	require.NotEmpty(t, templates)

	for _, tmpl := range templates {
		text := snippetPlaceholders.ReplaceAllString(tmpl.InsertText, "")
		qc := completion.Analyze(text, len(text), "")

		switch {
		case strings.HasPrefix(text, "SELECT"):
			assert.Equal(t, completion.StatementSelect, qc.Statement, tmpl.Label)
		case strings.HasPrefix(text, "SHOW"):
			assert.Equal(t, completion.StatementShow, qc.Statement, tmpl.Label)
		}

		assert.NotPanics(t, func() {
			engine.Complete(context.Background(), completion.Request{
				Text:   text,
				Offset: len(text),
			})
		}, tmpl.Label)
	}
}

func TestComplete_TemplateFilledInContinuesNaturally(t *testing.T) {
	t.Parallel()

	// Fill the basic template's placeholders the way an editor would and
	// keep typing: the analyzer must pick up the inserted clauses.
	text := `SELECT usage_idle FROM "cpu" WHERE `
	qc := completion.Analyze(text, len(text), "")

	assert.Equal(t, completion.StatementSelect, qc.Statement)
	assert.False(t, qc.InFrom)
	assert.True(t, qc.InWhere)
	assert.Equal(t, "cpu", qc.CurrentTable)

	items := complete(t, text, completion.Request{
		FieldTags: completion.FieldTagMap{
			"cpu": {Fields: []string{"usage_idle"}, Tags: []string{"host"}},
		},
	})
	assert.Contains(t, labels(items), "usage_idle")
	assert.Contains(t, labels(items), "=")
}
