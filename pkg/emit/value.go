package emit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/jetware/jet2my/pkg/dbconn/sqlescape"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Literal renders one raw source value as a destination literal, driven
// by the column's type family. Absent values render as the family's
// neutral literal: False for booleans, 0 for numerics, NULL for
// everything else. Text is always single-quoted and escaped; a value
// containing a quote must not be able to terminate the statement early.
func Literal(v any, code catalog.TypeCode, dateOnly bool) string {
	switch code {
	case catalog.Boolean:
		if v == nil {
			return "False"
		}
		// Booleans pass through as-is, textual or numeric.
		return asText(v)
	case catalog.Byte, catalog.Integer, catalog.Long:
		if v == nil {
			return "0"
		}
		return asText(v)
	case catalog.Currency, catalog.Single, catalog.Double:
		var s string
		if v != nil {
			s = asText(v)
		}
		if s == "" {
			return "0"
		}
		// Locale-formatted floats arrive with a decimal comma.
		return strings.ReplaceAll(s, ",", ".")
	case catalog.DateTime:
		if v == nil {
			return "NULL"
		}
		return dateLiteral(v, dateOnly)
	}
	// Text, memo and unrecognized families quote as text.
	if v == nil {
		return "NULL"
	}
	return "'" + sqlescape.EscapeString(asText(v)) + "'"
}

func dateLiteral(v any, dateOnly bool) string {
	layout := dateTimeLayout
	if dateOnly {
		layout = dateLayout
	}
	if ts, ok := v.(time.Time); ok {
		return "'" + ts.Format(layout) + "'"
	}
	s := asText(v)
	if ts, ok := parseTimestamp(s); ok {
		return "'" + ts.Format(layout) + "'"
	}
	// Not a shape we recognize. Keep the raw text, quoted, rather
	// than invent a date.
	return "'" + sqlescape.EscapeString(s) + "'"
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{dateTimeLayout, time.RFC3339, dateLayout} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func asText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format(dateTimeLayout)
	default:
		return fmt.Sprint(val)
	}
}
