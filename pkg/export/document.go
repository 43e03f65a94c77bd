package export

import "strings"

// Document accumulates the statements of one export in order. Nothing
// is written anywhere until the document is complete, so a failed
// export leaves no partial output behind.
type Document struct {
	statements []string
}

func NewDocument() *Document {
	return &Document{}
}

// Append adds a statement to the document. Empty statements are
// dropped.
func (d *Document) Append(stmt string) {
	if stmt == "" {
		return
	}
	d.statements = append(d.statements, stmt)
}

// Statements returns a copy of the accumulated statements in order.
func (d *Document) Statements() []string {
	out := make([]string, len(d.statements))
	copy(out, d.statements)
	return out
}

func (d *Document) Len() int {
	return len(d.statements)
}

// String renders the document: statements joined by blank lines, with
// a trailing newline. An empty document renders as an empty string.
func (d *Document) String() string {
	if len(d.statements) == 0 {
		return ""
	}
	return strings.Join(d.statements, "\n\n") + "\n"
}
