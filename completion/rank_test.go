package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rankedLabels(items []Item, qc *QueryContext) []string {
	rank(items, qc)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func TestRank_MeasurementOutranksKeywordInFrom(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Label: "LIMIT", Kind: ItemKeyword},
		{Label: "template", Kind: ItemSnippet},
		{Label: "cpu", Kind: ItemMeasurement},
	}

	assert.Equal(t,
		[]string{"cpu", "LIMIT", "template"},
		rankedLabels(items, &QueryContext{InFrom: true}))
}

func TestRank_FieldAndTagOutrankKeywordsInWhere(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Label: "AND", Kind: ItemKeyword},
		{Label: "host", Kind: ItemTag},
		{Label: "usage_idle", Kind: ItemField},
	}

	assert.Equal(t,
		[]string{"usage_idle", "host", "AND"},
		rankedLabels(items, &QueryContext{InWhere: true}))
}

func TestRank_DefaultWeightOrder(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Label: "now()", Kind: ItemValue},
		{Label: "template", Kind: ItemSnippet},
		{Label: "SELECT", Kind: ItemKeyword},
		{Label: "mean", Kind: ItemFunction},
	}

	assert.Equal(t,
		[]string{"mean", "SELECT", "template", "now()"},
		rankedLabels(items, &QueryContext{}))
}

func TestRank_ContextWeightsOnlyApplyInsideTheirClause(t *testing.T) {
	t.Parallel()

	// Outside FROM a measurement falls back to the default weight and
	// loses to a keyword.
	items := []Item{
		{Label: "cpu", Kind: ItemMeasurement},
		{Label: "SELECT", Kind: ItemKeyword},
	}

	assert.Equal(t,
		[]string{"SELECT", "cpu"},
		rankedLabels(items, &QueryContext{}))
}

func TestRank_TiesPreserveEmissionOrder(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Label: "cpu", Kind: ItemMeasurement},
		{Label: "mem", Kind: ItemMeasurement},
		{Label: "disk", Kind: ItemMeasurement},
	}

	assert.Equal(t,
		[]string{"cpu", "mem", "disk"},
		rankedLabels(items, &QueryContext{InFrom: true}))
}
