package catalog

import (
	"strconv"
	"strings"
)

// TypeCode classifies a source column into one of the Jet-era families
// that drive type mapping and literal formatting. The declared type name
// as written in the source is preserved separately on the Column.
type TypeCode int

const (
	Unknown TypeCode = iota
	Boolean
	Byte
	Integer // 16-bit
	Long    // 32-bit
	Currency
	Single
	Double
	DateTime
	Text // bounded, carries a size
	Memo // unbounded
)

func (tc TypeCode) String() string {
	switch tc {
	case Boolean:
		return "BOOLEAN"
	case Byte:
		return "BYTE"
	case Integer:
		return "INTEGER"
	case Long:
		return "LONG"
	case Currency:
		return "CURRENCY"
	case Single:
		return "SINGLE"
	case Double:
		return "DOUBLE"
	case DateTime:
		return "DATETIME"
	case Text:
		return "TEXT"
	case Memo:
		return "MEMO"
	}
	return "UNKNOWN"
}

// Numeric returns true for the integer and floating families, the types
// whose literals are written unquoted.
func (tc TypeCode) Numeric() bool {
	switch tc {
	case Byte, Integer, Long, Currency, Single, Double:
		return true
	}
	return false
}

// FixedWidth returns true for types that occupy a fixed number of bytes
// in the source storage engine. Text and memo columns are variable.
func (tc TypeCode) FixedWidth() bool {
	switch tc {
	case Boolean, Byte, Integer, Long, Currency, Single, Double, DateTime:
		return true
	}
	return false
}

// ParseDeclaredType classifies a declared column type such as
// "VARCHAR(50)", "CURRENCY" or "INTEGER" into a TypeCode and a size.
// The size is only meaningful for bounded text; a bare CHAR or VARCHAR
// defaults to 255. Desktop databases converted into SQLite containers
// keep their original type names verbatim, so the vocabulary here covers
// both the Jet names (MEMO, CURRENCY, COUNTER) and the SQL ones.
func ParseDeclaredType(declared string) (TypeCode, int) {
	base, size := splitDeclared(declared)
	switch base {
	case "BOOLEAN", "BOOL", "BIT", "YESNO", "LOGICAL":
		return Boolean, 0
	case "TINYINT", "BYTE":
		return Byte, 0
	case "SMALLINT", "SHORT":
		return Integer, 0
	case "INT", "INTEGER", "MEDIUMINT", "BIGINT", "LONG", "COUNTER", "AUTOINCREMENT":
		return Long, 0
	case "CURRENCY", "MONEY":
		return Currency, 0
	case "REAL", "FLOAT", "SINGLE":
		return Single, 0
	case "DOUBLE", "DOUBLE PRECISION", "DECIMAL", "NUMERIC", "NUMBER":
		return Double, 0
	case "DATE", "DATETIME", "TIMESTAMP", "TIME":
		return DateTime, 0
	case "CHAR", "NCHAR", "CHARACTER", "VARCHAR", "NVARCHAR":
		if size <= 0 {
			size = 255
		}
		return Text, size
	case "TEXT", "NTEXT", "LONGCHAR":
		// Access exports TEXT(n) for bounded fields and bare TEXT
		// for memo fields.
		if size > 0 {
			return Text, size
		}
		return Memo, 0
	case "CLOB", "MEMO", "LONGTEXT":
		return Memo, 0
	}
	return Unknown, size
}

// splitDeclared separates "VARCHAR(50)" into its base name and size.
// Precision suffixes as in DECIMAL(10,2) are ignored beyond the first
// number.
func splitDeclared(declared string) (string, int) {
	s := strings.ToUpper(strings.TrimSpace(declared))
	open := strings.Index(s, "(")
	if open == -1 {
		return s, 0
	}
	base := strings.TrimSpace(s[:open])
	inner := s[open+1:]
	if end := strings.Index(inner, ")"); end != -1 {
		inner = inner[:end]
	}
	if comma := strings.Index(inner, ","); comma != -1 {
		inner = inner[:comma]
	}
	size, err := strconv.Atoi(strings.TrimSpace(inner))
	if err != nil {
		return base, 0
	}
	return base, size
}
