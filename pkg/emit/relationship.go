package emit

import (
	"fmt"
	"log/slog"

	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/jetware/jet2my/pkg/dbconn/sqlescape"
)

// EmitRelationship builds the ALTER TABLE statement adding the foreign
// key for one relationship. Only the first column pair participates;
// composite relationships are truncated with a warning because the
// document format carries single-column constraints only. The returned
// bool is false when the relationship produces no statement.
func EmitRelationship(rel catalog.Relationship, logger *slog.Logger) (string, bool) {
	if len(rel.Pairs) == 0 {
		logger.Warn("relationship has no column pairs, skipping",
			"primaryTable", rel.PrimaryTable,
			"foreignTable", rel.ForeignTable)
		return "", false
	}
	if len(rel.Pairs) > 1 {
		logger.Warn("composite relationship truncated to its first column pair",
			"primaryTable", rel.PrimaryTable,
			"foreignTable", rel.ForeignTable,
			"pairs", len(rel.Pairs))
	}
	pair := rel.Pairs[0]
	return fmt.Sprintf("ALTER TABLE %s ADD FOREIGN KEY (%s) REFERENCES %s(%s);",
		rel.ForeignTable,
		sqlescape.QuoteIdentifier(pair.ForeignColumn),
		rel.PrimaryTable,
		sqlescape.QuoteIdentifier(pair.PrimaryColumn)), true
}
