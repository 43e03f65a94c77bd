package dbconn

import (
	"testing"

	"github.com/jetware/jet2my/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDSN(t *testing.T) {
	dsn, err := newDSN("root:secret@tcp(127.0.0.1:3306)/test", NewConfig())
	require.NoError(t, err)
	assert.Contains(t, dsn, "sql_mode=%22%22")
	assert.Contains(t, dsn, "time_zone=%22%2B00%3A00%22")
	assert.Contains(t, dsn, "charset=utf8mb4")
	assert.Contains(t, dsn, "maxAllowedPacket=0")
	assert.Contains(t, dsn, "interpolateParams=false")
	assert.Contains(t, dsn, "allowNativePasswords=true")

	// The base DSN survives in front of the appended options.
	assert.Contains(t, dsn, "root:secret@tcp(127.0.0.1:3306)/test?")

	dsn, err = newDSN(testutils.DSN(), NewConfig())
	require.NoError(t, err)
	assert.Contains(t, dsn, "sql_mode=")
}

func TestNewDSNExistingParams(t *testing.T) {
	dsn, err := newDSN("root@tcp(localhost)/db?timeout=1s", NewConfig())
	require.NoError(t, err)
	// Options append with & when the DSN already has parameters.
	assert.Contains(t, dsn, "timeout=1s&sql_mode=")
}

func TestNewDSNInvalid(t *testing.T) {
	_, err := newDSN("not a dsn", NewConfig())
	assert.Error(t, err)
}

func TestNewDSNCustomSessionOptions(t *testing.T) {
	config := NewConfig()
	config.SQLMode = "ANSI_QUOTES"
	config.TimeZone = "SYSTEM"
	config.Charset = "latin1"

	dsn, err := newDSN("root@tcp(localhost)/db", config)
	require.NoError(t, err)
	assert.Contains(t, dsn, "sql_mode=ANSI_QUOTES")
	assert.Contains(t, dsn, "time_zone=SYSTEM")
	assert.Contains(t, dsn, "charset=latin1")
}

func TestNewConfig(t *testing.T) {
	config := NewConfig()
	assert.Equal(t, `""`, config.SQLMode)
	assert.Equal(t, `"+00:00"`, config.TimeZone)
	assert.Equal(t, "utf8mb4", config.Charset)
	assert.Equal(t, 2, config.MaxOpenConnections)
	assert.False(t, config.InterpolateParams)
}
