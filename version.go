package inflowave

import (
	"sort"
	"strings"
)

// Features describes the boolean capability flags of a version family.
// Generators never branch on these directly; vocabulary rows carry the name
// of the feature that gates them and are filtered through Enabled.
type Features struct {
	ContinuousQueries bool
	RetentionPolicies bool
	Flux              bool
	UserManagement    bool
}

// Feature names referenced by vocabulary rows.
const (
	FeatureContinuousQueries = "continuous-queries"
	FeatureRetentionPolicies = "retention-policies"
	FeatureFlux              = "flux"
	FeatureUserManagement    = "user-management"
)

// Enabled reports whether the named feature is available.
// The empty name means "not gated" and is always available.
func (f Features) Enabled(name string) bool {
	switch name {
	case "":
		return true
	case FeatureContinuousQueries:
		return f.ContinuousQueries
	case FeatureRetentionPolicies:
		return f.RetentionPolicies
	case FeatureFlux:
		return f.Flux
	case FeatureUserManagement:
		return f.UserManagement
	}

	return false
}

// VerbEntry is one row of a SHOW/CREATE/DROP sub-vocabulary.
type VerbEntry struct {
	// Label is the completion text (e.g. "RETENTION POLICIES").
	Label string

	// Doc describes the statement for hover/documentation.
	Doc string

	// Feature gates availability; empty means always available.
	Feature string
}

// VersionConfig is the immutable vocabulary of one backend version family.
// Configs are registered once at init and shared read-only across requests.
type VersionConfig struct {
	// Family is the registry key (e.g. "1.x").
	Family string

	// Keywords maps upper-cased keywords to their documentation.
	Keywords map[string]string

	// Functions maps lower-cased function names to their documentation.
	Functions map[string]string

	// DataTypes lists the column data types the family understands.
	DataTypes []string

	// Features are the family's capability flags.
	Features Features

	// Verbs holds the SHOW/CREATE/DROP sub-vocabularies keyed by verb.
	Verbs map[string][]VerbEntry
}

// HasKeyword reports whether word (any case) is a keyword of this family.
func (v *VersionConfig) HasKeyword(word string) bool {
	_, ok := v.Keywords[strings.ToUpper(word)]
	return ok
}

// HasFunction reports whether name (any case) is a function of this family.
func (v *VersionConfig) HasFunction(name string) bool {
	_, ok := v.Functions[strings.ToLower(name)]
	return ok
}

// VerbVocabulary returns the sub-vocabulary for a SHOW/CREATE/DROP verb,
// filtered to the rows whose gating feature is enabled.
func (v *VersionConfig) VerbVocabulary(verb string) []VerbEntry {
	rows := v.Verbs[strings.ToUpper(verb)]
	out := make([]VerbEntry, 0, len(rows))

	for _, row := range rows {
		if v.Features.Enabled(row.Feature) {
			out = append(out, row)
		}
	}

	return out
}

var versions = make(map[string]*VersionConfig)

// RegisterVersion registers a version family config by its family name.
func RegisterVersion(cfg *VersionConfig) {
	versions[cfg.Family] = cfg
}

// VersionFor returns the config for a version key.
// The key may be a family name ("1.x") or a raw version ("1.8.10").
// Unknown keys fall back to the baseline family rather than erroring.
func VersionFor(key string) *VersionConfig {
	if cfg, ok := versions[key]; ok {
		return cfg
	}
	if cfg, ok := versions[FamilyForVersion(key)]; ok {
		return cfg
	}

	return versions[DefaultFamily]
}

// RegisteredVersions returns the sorted names of all registered families.
func RegisteredVersions() []string {
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
