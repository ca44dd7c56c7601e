package completion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chenqi92/inflowave/completion"
)

func TestNeedsQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ident string
		want  bool
	}{
		{"cpu", false},
		{"abc_123", false},
		{"_internal", false},
		{"1abc", true},
		{"my field", true},
		{"cpu-load", true},
		{"region.us", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, completion.NeedsQuotes(tt.ident))
		})
	}
}

func TestQuoteIdent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cpu", completion.QuoteIdent("cpu"))
	assert.Equal(t, `"my field"`, completion.QuoteIdent("my field"))
	assert.Equal(t, `"1h_rollup"`, completion.QuoteIdent("1h_rollup"))
}
