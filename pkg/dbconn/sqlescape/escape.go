// Package sqlescape escapes values and identifiers for inclusion in
// MySQL-dialect statements. The export pipeline builds statements as
// text, so everything that reaches the document goes through here.
package sqlescape

import "strings"

// EscapeString escapes s so it can be wrapped in single quotes and
// embedded in a statement. It applies the backslash escapes the MySQL
// text protocol understands.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case 0:
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case 0x1a: // ctrl-Z, EOF on DOS-descended clients
			b.WriteString(`\Z`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// QuoteIdentifier wraps an identifier in backticks. Backticks inside
// the name are doubled.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
