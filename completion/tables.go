package completion

// ExtractTables returns the ordered, de-duplicated set of measurement names
// referenced via FROM, JOIN (any variant) or INTO anywhere in the text, with
// surrounding quotes stripped. Every occurrence of a clause keyword counts as
// a reference regardless of nesting; this is a deliberate heuristic, not a
// parse. Dotted references ("db"."rp"."m") resolve to their last component.
func ExtractTables(text string) []string {
	tokens := Scan(text)

	var out []string
	seen := make(map[string]bool)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Type != TokenWord {
			continue
		}

		switch tok.Upper() {
		case "FROM", "JOIN", "INTO":
		default:
			continue
		}

		// FROM accepts a comma-separated list of references.
		j := i + 1
		for j < len(tokens) {
			name, next := tableNameAt(tokens, j)
			if name == "" {
				break
			}
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}

			j = next
			if j < len(tokens) && tokens[j].Type == TokenComma {
				j++
				continue
			}
			break
		}
	}

	return out
}

// tableNameAt reads one possibly dotted table reference starting at index j.
// It returns the final name component and the index just past the reference,
// or "" when j does not start a reference.
func tableNameAt(tokens []Token, j int) (string, int) {
	name := ""

	for j < len(tokens) && tokens[j].IsWord() {
		name = tokens[j].Value
		j++

		if j < len(tokens) && tokens[j].Type == TokenDot {
			j++
			continue
		}
		break
	}

	return name, j
}
