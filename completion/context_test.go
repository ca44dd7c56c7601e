package completion_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/chenqi92/inflowave/completion"
)

func analyzeAtEnd(text string) completion.QueryContext {
	return completion.Analyze(text, len(text), "")
}

func TestAnalyze_AfterSelect(t *testing.T) {
	t.Parallel()

	qc := analyzeAtEnd("SELECT ")

	assert.Equal(t, completion.StatementSelect, qc.Statement)
	assert.Equal(t, completion.ClauseSelect, qc.Clause)
	assert.Equal(t, "SELECT", qc.PrecedingWord)
	assert.True(t, qc.ExpectingField)
	assert.False(t, qc.ExpectingTable)
}

func TestAnalyze_AfterFrom(t *testing.T) {
	t.Parallel()

	qc := analyzeAtEnd("SELECT * FROM ")

	assert.Equal(t, completion.ClauseFrom, qc.Clause)
	assert.True(t, qc.InFrom)
	assert.True(t, qc.ExpectingTable)
	assert.False(t, qc.ExpectingField)
}

func TestAnalyze_AfterWhere(t *testing.T) {
	t.Parallel()

	qc := analyzeAtEnd(`SELECT usage_idle FROM "cpu" WHERE `)

	assert.True(t, qc.InWhere)
	assert.True(t, qc.ExpectingField)
	assert.Equal(t, "cpu", qc.CurrentTable)
	assert.Equal(t, []string{"cpu"}, qc.Tables)
}

func TestAnalyze_GroupBy(t *testing.T) {
	t.Parallel()

	qc := analyzeAtEnd("SELECT mean(value) FROM cpu GROUP BY ")

	assert.True(t, qc.InGroupBy)
	assert.Equal(t, completion.ClauseGroupBy, qc.Clause)
	assert.False(t, qc.InFrom, "GROUP ends the FROM clause immediately")
}

func TestAnalyze_OrderBy(t *testing.T) {
	t.Parallel()

	qc := analyzeAtEnd("SELECT * FROM cpu ORDER BY ")

	assert.True(t, qc.InOrderBy)
	assert.False(t, qc.InFrom)
}

func TestAnalyze_CurrentWord(t *testing.T) {
	t.Parallel()

	text := "SELECT usa"
	qc := completion.Analyze(text, len(text), "")

	assert.Equal(t, "USA", qc.CurrentWord)
	assert.Equal(t, completion.ClauseSelect, qc.Clause)
}

func TestAnalyze_CursorMidWord(t *testing.T) {
	t.Parallel()

	// Cursor between "us" and "age_idle".
	qc := completion.Analyze("SELECT usage_idle FROM cpu", 9, "")

	assert.Equal(t, "USAGE_IDLE", qc.CurrentWord)
}

func TestAnalyze_SemicolonScopesStatement(t *testing.T) {
	t.Parallel()

	qc := analyzeAtEnd("SELECT * FROM cpu; SHOW ")

	assert.Equal(t, completion.StatementShow, qc.Statement)
	assert.Equal(t, "SHOW", qc.PrecedingWord)
	assert.False(t, qc.InFrom, "clause state does not leak across statements")
}

func TestAnalyze_OffsetClamped(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		completion.Analyze("SELECT", -5, "")
		completion.Analyze("SELECT", 400, "")
		completion.Analyze("", 0, "")
	})
}

func TestAnalyze_MultiTableCurrentTable(t *testing.T) {
	t.Parallel()

	qc := analyzeAtEnd("SELECT * FROM cpu, mem WHERE ")

	assert.Equal(t, []string{"cpu", "mem"}, qc.Tables)
	assert.Equal(t, "cpu", qc.CurrentTable)
}

func TestAnalyze_CommaInFromExpectsTable(t *testing.T) {
	t.Parallel()

	qc := analyzeAtEnd("SELECT * FROM cpu, ")

	assert.True(t, qc.ExpectingTable)
}

func TestAnalyze_CommaInSelectExpectsField(t *testing.T) {
	t.Parallel()

	qc := analyzeAtEnd("SELECT usage_idle, ")

	assert.True(t, qc.ExpectingField)
}

func TestAnalyze_Database(t *testing.T) {
	t.Parallel()

	qc := completion.Analyze("SELECT ", 7, "telegraf")

	assert.Equal(t, "telegraf", qc.Database)
}

func TestAnalyze_Pure(t *testing.T) {
	t.Parallel()

	text := `SELECT usage_idle FROM "cpu" WHERE host = `
	first := completion.Analyze(text, len(text), "telegraf")
	second := completion.Analyze(text, len(text), "telegraf")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Analyze is not deterministic (-first +second):\n%s", diff)
	}
}

func TestAnalyze_StatementKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want completion.StatementKind
	}{
		{"SELECT ", completion.StatementSelect},
		{"SHOW ", completion.StatementShow},
		{"CREATE ", completion.StatementCreate},
		{"DROP ", completion.StatementDrop},
		{"DELETE ", completion.StatementOther},
		{"", completion.StatementUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			qc := analyzeAtEnd(tt.text)
			assert.Equal(t, tt.want, qc.Statement)
		})
	}
}
