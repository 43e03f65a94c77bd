package export

import (
	"testing"

	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestExcludeRules(t *testing.T) {
	rules := DefaultExcludeRules()

	// System tables are always out.
	assert.True(t, rules.Excluded(catalog.Table{Name: "sqlite_sequence", System: true}))

	// Prefix matching is case-insensitive.
	assert.True(t, rules.Excluded(catalog.Table{Name: "MSysObjects"}))
	assert.True(t, rules.Excluded(catalog.Table{Name: "msysaces"}))

	// Marker matching is a prefix test too.
	assert.True(t, rules.Excluded(catalog.Table{Name: "~TMPCLP168921"}))

	// Exact exclusions are exact, including case.
	assert.True(t, rules.Excluded(catalog.Table{Name: "Switchboard Items"}))
	assert.False(t, rules.Excluded(catalog.Table{Name: "switchboard items"}))

	assert.False(t, rules.Excluded(catalog.Table{Name: "Person"}))
	assert.False(t, rules.Excluded(catalog.Table{Name: "Systems"}))
}

func TestExcludeRulesZeroValue(t *testing.T) {
	// With no rules configured, only system tables are excluded.
	var rules ExcludeRules
	assert.True(t, rules.Excluded(catalog.Table{Name: "sqlite_master", System: true}))
	assert.False(t, rules.Excluded(catalog.Table{Name: "MSysObjects"}))
	assert.False(t, rules.Excluded(catalog.Table{Name: "~tmp"}))
}
