package completion

// NeedsQuotes reports whether an identifier must be wrapped in double quotes
// before insertion: it contains a character outside [A-Za-z0-9_] or begins
// with a digit. The empty identifier needs no quotes; it is never emitted.
func NeedsQuotes(ident string) bool {
	if ident == "" {
		return false
	}

	if ident[0] >= '0' && ident[0] <= '9' {
		return true
	}

	for i := 0; i < len(ident); i++ {
		b := ident[i]
		if b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' {
			continue
		}
		return true
	}

	return false
}

// QuoteIdent wraps ident in double quotes when the quoting rule requires it.
// Applied uniformly when inserting database, measurement, field or tag names.
func QuoteIdent(ident string) string {
	if NeedsQuotes(ident) {
		return `"` + ident + `"`
	}

	return ident
}
