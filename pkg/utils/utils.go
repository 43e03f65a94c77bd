// Package utils contains some common utilities used by all other packages.
package utils

import (
	"log/slog"
	"strings"
)

// Closer is an interface for types that have a Close() method.
// This is compatible with io.Closer and many other types in the codebase.
type Closer interface {
	Close() error
}

// CloseAndLog closes a resource and logs any error. This is useful for defer statements
// where the error cannot be meaningfully handled except by logging.
// Example: defer utils.CloseAndLog(db)
func CloseAndLog(closer Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		slog.Error("deferred close failed", "error", err)
	}
}

// ContainsFold reports whether any element of list equals s ignoring
// case. Identifiers in desktop database catalogs compare
// case-insensitively, so name lists from flags do too.
func ContainsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// HasPrefixFold reports whether s starts with prefix ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
