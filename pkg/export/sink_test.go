package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.sql")

	doc := NewDocument()
	doc.Append("CREATE TABLE a (`x` INT(11) DEFAULT 0);")
	require.NoError(t, WriteFile(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE a (`x` INT(11) DEFAULT 0);\n", string(data))

	// Overwriting is fine and leaves no scratch files behind.
	doc.Append("CREATE TABLE b (`y` INT(11) DEFAULT 0);")
	require.NoError(t, WriteFile(doc, path))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileBadPath(t *testing.T) {
	doc := NewDocument()
	doc.Append("x;")
	err := WriteFile(doc, filepath.Join(t.TempDir(), "missing", "dump.sql"))
	assert.Error(t, err)
}
