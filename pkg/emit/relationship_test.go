package emit

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestEmitRelationship(t *testing.T) {
	stmt, ok := EmitRelationship(catalog.Relationship{
		PrimaryTable: "Order",
		ForeignTable: "LineItem",
		Pairs:        []catalog.ColumnPair{{PrimaryColumn: "id", ForeignColumn: "order_id"}},
	}, slog.Default())
	assert.True(t, ok)
	assert.Equal(t, "ALTER TABLE LineItem ADD FOREIGN KEY (`order_id`) REFERENCES Order(`id`);", stmt)
}

func TestEmitRelationshipComposite(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	// Only the first pair makes it into the statement.
	stmt, ok := EmitRelationship(catalog.Relationship{
		PrimaryTable: "Region",
		ForeignTable: "City",
		Pairs: []catalog.ColumnPair{
			{PrimaryColumn: "country", ForeignColumn: "country"},
			{PrimaryColumn: "code", ForeignColumn: "region"},
		},
	}, logger)
	assert.True(t, ok)
	assert.Equal(t, "ALTER TABLE City ADD FOREIGN KEY (`country`) REFERENCES Region(`country`);", stmt)
	assert.Contains(t, buf.String(), "truncated")
}

func TestEmitRelationshipNoPairs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, ok := EmitRelationship(catalog.Relationship{
		PrimaryTable: "A",
		ForeignTable: "B",
	}, logger)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "no column pairs")
}
