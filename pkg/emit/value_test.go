package emit

import (
	"testing"
	"time"

	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestLiteralBooleans(t *testing.T) {
	assert.Equal(t, "False", Literal(nil, catalog.Boolean, false))
	assert.Equal(t, "True", Literal(true, catalog.Boolean, false))
	assert.Equal(t, "False", Literal(false, catalog.Boolean, false))
	// Sources that store booleans numerically pass through as-is.
	assert.Equal(t, "1", Literal(int64(1), catalog.Boolean, false))
	assert.Equal(t, "0", Literal(int64(0), catalog.Boolean, false))
}

func TestLiteralIntegers(t *testing.T) {
	assert.Equal(t, "0", Literal(nil, catalog.Long, false))
	assert.Equal(t, "42", Literal(int64(42), catalog.Long, false))
	assert.Equal(t, "-7", Literal("-7", catalog.Integer, false))
	assert.Equal(t, "3", Literal(int64(3), catalog.Byte, false))
}

func TestLiteralFloats(t *testing.T) {
	// Absent and empty both mean zero for the float family.
	assert.Equal(t, "0", Literal(nil, catalog.Double, false))
	assert.Equal(t, "0", Literal("", catalog.Currency, false))

	assert.Equal(t, "1.5", Literal(1.5, catalog.Double, false))
	assert.Equal(t, "19.99", Literal("19.99", catalog.Currency, false))

	// Locale-formatted values arrive with a decimal comma.
	assert.Equal(t, "3.14", Literal("3,14", catalog.Single, false))
}

func TestLiteralDates(t *testing.T) {
	assert.Equal(t, "NULL", Literal(nil, catalog.DateTime, false))

	ts := time.Date(2003, 1, 2, 13, 4, 5, 0, time.UTC)
	assert.Equal(t, "'2003-01-02 13:04:05'", Literal(ts, catalog.DateTime, false))
	assert.Equal(t, "'2003-01-02'", Literal(ts, catalog.DateTime, true))

	// Textual timestamps normalize through the same layouts.
	assert.Equal(t, "'2003-01-02 13:04:05'", Literal("2003-01-02 13:04:05", catalog.DateTime, false))
	assert.Equal(t, "'2003-01-02'", Literal("2003-01-02 13:04:05", catalog.DateTime, true))
	assert.Equal(t, "'2003-01-02 00:00:00'", Literal("2003-01-02", catalog.DateTime, false))

	// Text that is not a recognizable timestamp stays as quoted text.
	assert.Equal(t, "'not a date'", Literal("not a date", catalog.DateTime, false))
}

func TestLiteralText(t *testing.T) {
	assert.Equal(t, "NULL", Literal(nil, catalog.Text, false))
	assert.Equal(t, "''", Literal("", catalog.Text, false))
	assert.Equal(t, "'Ada'", Literal("Ada", catalog.Text, false))
	assert.Equal(t, "'bytes'", Literal([]byte("bytes"), catalog.Memo, false))

	// Values containing quote characters cannot terminate the
	// statement early.
	assert.Equal(t, `'O\'Brien'`, Literal("O'Brien", catalog.Text, false))
	assert.Equal(t, `'multi\nline'`, Literal("multi\nline", catalog.Memo, false))
	assert.Equal(t, `'tricky\\'`, Literal(`tricky\`, catalog.Text, false))
}

func TestLiteralUnknown(t *testing.T) {
	// Unrecognized families behave like text.
	assert.Equal(t, "NULL", Literal(nil, catalog.Unknown, false))
	assert.Equal(t, "'payload'", Literal("payload", catalog.Unknown, false))
}
