package completion

import "sort"

// Priority weights. Context-dependent entries are resolved in weight;
// everything else falls through to the kind's base weight.
const (
	weightMeasurementInFrom = 100
	weightFieldInWhere      = 90
	weightTagInWhere        = 85
	weightFunction          = 80
	weightKeyword           = 70
	weightSnippet           = 60
	weightDefault           = 50
)

// rank orders items in place by descending context weight.
// The sort is stable: ties preserve generator emission order.
func rank(items []Item, qc *QueryContext) {
	sort.SliceStable(items, func(i, j int) bool {
		return weight(items[i], qc) > weight(items[j], qc)
	})
}

func weight(item Item, qc *QueryContext) int {
	switch {
	case item.Kind == ItemMeasurement && qc.InFrom:
		return weightMeasurementInFrom
	case item.Kind == ItemField && qc.InWhere:
		return weightFieldInWhere
	case item.Kind == ItemTag && qc.InWhere:
		return weightTagInWhere
	}

	switch item.Kind {
	case ItemFunction:
		return weightFunction
	case ItemKeyword:
		return weightKeyword
	case ItemSnippet:
		return weightSnippet
	default:
		return weightDefault
	}
}
