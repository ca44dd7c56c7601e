package completion

// ItemKind indicates the symbol class of a completion candidate.
type ItemKind int

const (
	// ItemKeyword is a language keyword (SELECT, FROM, WHERE, ...).
	ItemKeyword ItemKind = iota

	// ItemFunction is a built-in function.
	ItemFunction

	// ItemMeasurement is a measurement (table) name.
	ItemMeasurement

	// ItemDatabase is a database name.
	ItemDatabase

	// ItemField is a field name.
	ItemField

	// ItemTag is a tag name.
	ItemTag

	// ItemOperator is a comparison or logical operator.
	ItemOperator

	// ItemValue is a literal or literal-like expression (time literals).
	ItemValue

	// ItemSnippet is an insertable template with placeholders.
	ItemSnippet
)

// String returns the kind name for logging.
func (k ItemKind) String() string {
	switch k {
	case ItemKeyword:
		return "keyword"
	case ItemFunction:
		return "function"
	case ItemMeasurement:
		return "measurement"
	case ItemDatabase:
		return "database"
	case ItemField:
		return "field"
	case ItemTag:
		return "tag"
	case ItemOperator:
		return "operator"
	case ItemValue:
		return "value"
	case ItemSnippet:
		return "snippet"
	default:
		return "unknown"
	}
}

// Item is one completion candidate. Items are immutable values produced by
// the generators, ranked once, and consumed once by the editor host.
type Item struct {
	// Label is the text shown in the completion list.
	Label string

	// Kind indicates the symbol class.
	Kind ItemKind

	// Detail is short info shown next to the label.
	Detail string

	// Documentation is longer markdown documentation.
	Documentation string

	// InsertText is the text to insert; Label when empty.
	InsertText string

	// IsSnippet marks InsertText as snippet syntax with $1-style
	// placeholders the editor expands on acceptance.
	IsSnippet bool
}
