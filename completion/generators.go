package completion

import (
	"sort"

	"github.com/chenqi92/inflowave"
)

// Candidate generators. Each is a pure mapping from a symbol list to items;
// the dispatcher decides which to invoke and the ranker orders the result.

func keywordItems(version *inflowave.VersionConfig) []Item {
	items := make([]Item, 0, len(version.Keywords))

	for keyword, doc := range version.Keywords {
		items = append(items, Item{
			Label:         keyword,
			Kind:          ItemKeyword,
			Detail:        "keyword",
			Documentation: doc,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Label < items[j].Label
	})

	return items
}

func functionItems(version *inflowave.VersionConfig) []Item {
	items := make([]Item, 0, len(version.Functions))

	for name, doc := range version.Functions {
		items = append(items, Item{
			Label:         name,
			Kind:          ItemFunction,
			Detail:        "function",
			Documentation: doc,
			InsertText:    name + "($1)",
			IsSnippet:     true,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Label < items[j].Label
	})

	return items
}

func measurementItems(names []string) []Item {
	items := make([]Item, 0, len(names))

	for _, name := range names {
		items = append(items, Item{
			Label:      name,
			Kind:       ItemMeasurement,
			Detail:     "measurement",
			InsertText: QuoteIdent(name),
		})
	}

	return items
}

func databaseItems(names []string) []Item {
	items := make([]Item, 0, len(names))

	for _, name := range names {
		items = append(items, Item{
			Label:      name,
			Kind:       ItemDatabase,
			Detail:     "database",
			InsertText: QuoteIdent(name),
		})
	}

	return items
}

func fieldItems(names []string, table string) []Item {
	detail := "field"
	if table != "" {
		detail = "field of " + table
	}

	items := make([]Item, 0, len(names))
	for _, name := range names {
		items = append(items, Item{
			Label:      name,
			Kind:       ItemField,
			Detail:     detail,
			InsertText: QuoteIdent(name),
		})
	}

	return items
}

func tagItems(names []string, table string) []Item {
	detail := "tag"
	if table != "" {
		detail = "tag of " + table
	}

	items := make([]Item, 0, len(names))
	for _, name := range names {
		items = append(items, Item{
			Label:      name,
			Kind:       ItemTag,
			Detail:     detail,
			InsertText: QuoteIdent(name),
		})
	}

	return items
}

func specialFieldItems() []Item {
	return []Item{
		{Label: "*", Kind: ItemField, Detail: "all fields"},
		{Label: "time", Kind: ItemField, Detail: "timestamp column"},
	}
}

func operatorItems() []Item {
	ops := []struct{ op, doc string }{
		{"=", "Equal to"},
		{"!=", "Not equal to"},
		{"<", "Less than"},
		{"<=", "Less than or equal to"},
		{">", "Greater than"},
		{">=", "Greater than or equal to"},
		{"=~", "Matches regular expression"},
		{"!~", "Does not match regular expression"},
		{"AND", "Logical AND"},
		{"OR", "Logical OR"},
	}

	items := make([]Item, 0, len(ops))
	for _, o := range ops {
		items = append(items, Item{
			Label:         o.op,
			Kind:          ItemOperator,
			Documentation: o.doc,
		})
	}

	return items
}

func timeLiteralItems() []Item {
	literals := []struct{ text, doc string }{
		{"now()", "The current timestamp"},
		{"time > now() - 1h", "Points from the last hour"},
		{"time > now() - 6h", "Points from the last six hours"},
		{"time > now() - 24h", "Points from the last day"},
		{"time > now() - 7d", "Points from the last week"},
		{"time > now() - 30d", "Points from the last thirty days"},
	}

	items := make([]Item, 0, len(literals))
	for _, l := range literals {
		items = append(items, Item{
			Label:         l.text,
			Kind:          ItemValue,
			Detail:        "time filter",
			Documentation: l.doc,
		})
	}

	return items
}

func timeBucketItems() []Item {
	buckets := []string{"time(1s)", "time(10s)", "time(1m)", "time(5m)", "time(15m)", "time(1h)", "time(1d)"}

	items := make([]Item, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, Item{
			Label:  b,
			Kind:   ItemValue,
			Detail: "time bucket",
		})
	}

	return items
}

func orderByItems() []Item {
	return []Item{
		{Label: "time", Kind: ItemKeyword, Detail: "order by timestamp", InsertText: "time"},
		{Label: "ASC", Kind: ItemKeyword, Detail: "ascending"},
		{Label: "DESC", Kind: ItemKeyword, Detail: "descending"},
	}
}

// verbItems returns the feature-filtered sub-vocabulary for SHOW/CREATE/DROP.
func verbItems(version *inflowave.VersionConfig, verb string) []Item {
	rows := version.VerbVocabulary(verb)

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			Label:         row.Label,
			Kind:          ItemKeyword,
			Detail:        "statement",
			Documentation: row.Doc,
		})
	}

	return items
}

func templateItems() []Item {
	return []Item{
		{
			Label:         "SELECT ... FROM ...",
			Kind:          ItemSnippet,
			Detail:        "query template",
			Documentation: "Basic query skeleton",
			InsertText:    "SELECT $1 FROM \"$2\" WHERE $3",
			IsSnippet:     true,
		},
		{
			Label:         "SELECT recent",
			Kind:          ItemSnippet,
			Detail:        "query template",
			Documentation: "Query the last hour of a measurement",
			InsertText:    "SELECT $1 FROM \"$2\" WHERE time > now() - 1h",
			IsSnippet:     true,
		},
		{
			Label:         "SELECT aggregated",
			Kind:          ItemSnippet,
			Detail:        "query template",
			Documentation: "Aggregate a field over time buckets",
			InsertText:    "SELECT mean(\"$1\") FROM \"$2\" WHERE time > now() - 1h GROUP BY time(5m)",
			IsSnippet:     true,
		},
		{
			Label:         "SHOW MEASUREMENTS",
			Kind:          ItemSnippet,
			Detail:        "query template",
			InsertText:    "SHOW MEASUREMENTS",
			Documentation: "List measurements in the current database",
		},
	}
}
