package export

import (
	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/jetware/jet2my/pkg/utils"
)

// ExcludeRules decides which tables stay out of the export. The zero
// value excludes only engine system tables; DefaultExcludeRules adds
// the conventions desktop databases accumulate.
type ExcludeRules struct {
	// Prefixes excludes tables whose name starts with any of these,
	// case-insensitively. Engine housekeeping tables live under such
	// prefixes.
	Prefixes []string
	// Markers excludes tables whose name starts with any of these
	// marker strings, case-insensitively. Deleted and temporary
	// objects are parked under marker names.
	Markers []string
	// Exacts excludes tables whose name equals one of these exactly.
	Exacts []string
}

// DefaultExcludeRules returns the standard exclusions: the MSys
// housekeeping prefix, the ~ temporary-object marker and the
// Switchboard Items UI table.
func DefaultExcludeRules() ExcludeRules {
	return ExcludeRules{
		Prefixes: []string{"MSys"},
		Markers:  []string{"~"},
		Exacts:   []string{"Switchboard Items"},
	}
}

// Excluded reports whether the table stays out of the export. System
// tables are always excluded regardless of the configured rules.
func (r ExcludeRules) Excluded(tbl catalog.Table) bool {
	if tbl.System {
		return true
	}
	for _, prefix := range r.Prefixes {
		if utils.HasPrefixFold(tbl.Name, prefix) {
			return true
		}
	}
	for _, marker := range r.Markers {
		if utils.HasPrefixFold(tbl.Name, marker) {
			return true
		}
	}
	for _, name := range r.Exacts {
		if tbl.Name == name {
			return true
		}
	}
	return false
}
