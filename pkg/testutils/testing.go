// Package testutils contains some common utilities used exclusively
// by the test suite.
package testutils

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

// DSN returns the DSN of the MySQL server replay tests run against.
func DSN() string {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		return "jet2my:jet2my@tcp(127.0.0.1:3306)/test"
	}
	return dsn
}

// CreateTestSource creates an empty scratch source database for a test
// and returns its path. The file lives under t.TempDir() and is cleaned
// up with the test.
func CreateTestSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.db")
	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	// Force creation of the file on disk.
	err = db.Ping()
	assert.NoError(t, err)
	return path
}

// RunSQL executes stmt against the source database at path.
func RunSQL(t *testing.T, path, stmt string) {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	_, err = db.ExecContext(t.Context(), stmt)
	assert.NoError(t, err)
}
