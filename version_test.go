package inflowave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenqi92/inflowave"
)

func TestFamilyForVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    string
	}{
		{"1.x", "1.x"},
		{"1.8.10", "1.x"},
		{"v1.8", "1.x"},
		{"2.7.1", "2.x"},
		{"3.0", "3.x"},
		{"", "1.x"},
		{"latest", "1.x"},
		{"9.0.0", "1.x"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, inflowave.FamilyForVersion(tt.version))
		})
	}
}

func TestRegisteredVersions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"1.x", "2.x", "3.x"}, inflowave.RegisteredVersions())
}

func TestVersionFor_FamilyAndRawVersion(t *testing.T) {
	t.Parallel()

	direct := inflowave.VersionFor("2.x")
	require.NotNil(t, direct)
	assert.Equal(t, "2.x", direct.Family)

	raw := inflowave.VersionFor("2.7.1")
	assert.Same(t, direct, raw, "raw versions resolve to their family config")
}

func TestVersionConfig_KeywordLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	v := inflowave.VersionFor("1.x")

	assert.True(t, v.HasKeyword("select"))
	assert.True(t, v.HasKeyword("SELECT"))
	assert.False(t, v.HasKeyword("nonsense"))

	assert.True(t, v.HasFunction("MEAN"))
	assert.True(t, v.HasFunction("mean"))
}

func TestVersionConfig_FluxFunctionsOnlyIn2x(t *testing.T) {
	t.Parallel()

	v1 := inflowave.VersionFor("1.x")
	v2 := inflowave.VersionFor("2.x")

	assert.False(t, v1.HasFunction("aggregateWindow"))
	assert.True(t, v2.HasFunction("aggregateWindow"))
	assert.True(t, v2.HasFunction("mean"), "2.x keeps the shared aggregates")
}

func TestVerbVocabulary_FeatureGates(t *testing.T) {
	t.Parallel()

	haystack := func(entries []inflowave.VerbEntry) []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Label)
		}
		return out
	}

	v1 := haystack(inflowave.VersionFor("1.x").VerbVocabulary("SHOW"))
	assert.Contains(t, v1, "CONTINUOUS QUERIES")
	assert.Contains(t, v1, "USERS")

	v3 := haystack(inflowave.VersionFor("3.x").VerbVocabulary("SHOW"))
	assert.Contains(t, v3, "DATABASES")
	assert.NotContains(t, v3, "CONTINUOUS QUERIES")
	assert.NotContains(t, v3, "USERS")
}

func TestVerbVocabulary_UnknownVerb(t *testing.T) {
	t.Parallel()

	assert.Empty(t, inflowave.VersionFor("1.x").VerbVocabulary("EXPLAIN"))
}

func TestFeatures_Enabled(t *testing.T) {
	t.Parallel()

	f := inflowave.Features{ContinuousQueries: true}

	assert.True(t, f.Enabled(""), "ungated entries are always enabled")
	assert.True(t, f.Enabled(inflowave.FeatureContinuousQueries))
	assert.False(t, f.Enabled(inflowave.FeatureFlux))
}
