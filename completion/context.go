package completion

// StatementKind classifies the top-level statement under the cursor.
type StatementKind int

const (
	StatementUnknown StatementKind = iota
	StatementSelect
	StatementShow
	StatementCreate
	StatementDrop
	StatementOther
)

// String returns the statement kind name for logging.
func (k StatementKind) String() string {
	switch k {
	case StatementSelect:
		return "SELECT"
	case StatementShow:
		return "SHOW"
	case StatementCreate:
		return "CREATE"
	case StatementDrop:
		return "DROP"
	case StatementOther:
		return "other"
	default:
		return "unknown"
	}
}

// QueryContext describes where in the grammar the cursor sits.
// It is recomputed on every request, owned by that request, and never
// mutated after Analyze returns.
type QueryContext struct {
	Statement StatementKind
	Clause    ClauseKind

	InFrom    bool
	InWhere   bool
	InGroupBy bool
	InOrderBy bool

	// PrecedingWord is the upper-cased word before the word under the
	// cursor; CurrentWord is the upper-cased word under the cursor.
	PrecedingWord string
	CurrentWord   string

	// Tables are the measurements referenced anywhere in the document,
	// in order of first reference.
	Tables []string

	// CurrentTable is the best-guess measurement the cursor context
	// belongs to; empty when no table is in scope.
	CurrentTable string

	// Database is the currently selected database, if any.
	Database string

	// ExpectingField is set when the grammar position calls for a field
	// or tag name; ExpectingTable when it calls for a measurement name.
	ExpectingField bool
	ExpectingTable bool
}

// Analyze classifies a cursor position within query text.
// It is a pure function: identical inputs yield structurally equal contexts.
// It never fails; empty or malformed input yields an unknown-statement
// context with all flags false.
func Analyze(text string, offset int, currentDatabase string) QueryContext {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	qc := QueryContext{Database: currentDatabase}
	tokens := Scan(text)

	// Split the stream at the cursor: tokens fully before it, and the
	// word the cursor touches (a word ending exactly at the cursor counts,
	// that is the word being typed).
	var (
		prefix  []Token
		current *Token
	)

	for idx := range tokens {
		tok := tokens[idx]
		if tok.Pos.Offset >= offset {
			break
		}
		if tok.IsWord() && tok.End >= offset {
			current = &tokens[idx]
			break
		}
		if tok.End > offset {
			break
		}
		prefix = append(prefix, tok)
	}

	if current != nil {
		qc.CurrentWord = current.Upper()
	}

	// Statements are separated by semicolons; only the one the cursor is
	// in contributes clause state.
	stmt := prefix
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i].Type == TokenSemi {
			stmt = prefix[i+1:]
			break
		}
	}

	qc.Statement = statementKindOf(stmt)

	var tracker clauseTracker
	for _, tok := range stmt {
		tracker.advance(tok)
	}
	qc.Clause = tracker.clause

	qc.InFrom = qc.Clause == ClauseFrom
	qc.InWhere = qc.Clause == ClauseWhere
	qc.InGroupBy = qc.Clause == ClauseGroupBy
	qc.InOrderBy = qc.Clause == ClauseOrderBy

	for i := len(stmt) - 1; i >= 0; i-- {
		if stmt[i].IsWord() {
			qc.PrecedingWord = stmt[i].Upper()
			break
		}
	}

	if len(stmt) > 0 {
		last := stmt[len(stmt)-1]

		switch {
		case last.IsWord():
			switch last.Upper() {
			case "FROM", "JOIN", "INTO":
				qc.ExpectingTable = true
			case "SELECT", "WHERE", "AND", "OR", "BY":
				qc.ExpectingField = true
			}
		case last.Type == TokenComma:
			switch qc.Clause {
			case ClauseFrom:
				qc.ExpectingTable = true
			case ClauseSelect:
				qc.ExpectingField = true
			}
		}
	}

	// Tables are extracted from the whole document, not just the prefix,
	// so completions stay table-aware while editing a clause typed before
	// FROM was finished.
	qc.Tables = ExtractTables(text)
	qc.CurrentTable = currentTableOf(stmt, qc.Tables)

	return qc
}

func statementKindOf(stmt []Token) StatementKind {
	for _, tok := range stmt {
		if !tok.IsWord() {
			continue
		}

		switch tok.Upper() {
		case "SELECT":
			return StatementSelect
		case "SHOW":
			return StatementShow
		case "CREATE":
			return StatementCreate
		case "DROP":
			return StatementDrop
		default:
			return StatementOther
		}
	}

	return StatementUnknown
}

// currentTableOf picks the measurement the cursor context belongs to:
// a single referenced table wins outright; otherwise the table named by the
// nearest preceding FROM that is also a known reference; otherwise the first
// referenced table. Multi-table scoping is a documented heuristic.
func currentTableOf(stmt []Token, tables []string) string {
	switch len(tables) {
	case 0:
		return ""
	case 1:
		return tables[0]
	}

	known := make(map[string]bool, len(tables))
	for _, t := range tables {
		known[t] = true
	}

	nearest := ""
	for i := 0; i+1 < len(stmt); i++ {
		if stmt[i].Type == TokenWord && stmt[i].Upper() == "FROM" && stmt[i+1].IsWord() {
			if name, _ := tableNameAt(stmt, i+1); known[name] {
				nearest = name
			}
		}
	}

	if nearest != "" {
		return nearest
	}

	return tables[0]
}
