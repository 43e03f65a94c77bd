// Package dbconn opens standardized connections to the destination
// MySQL server for replaying export documents.
package dbconn

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

const maxConnLifetime = time.Minute * 3

// Config holds the connection options replay uses.
type Config struct {
	SQLMode            string
	TimeZone           string
	Charset            string
	MaxOpenConnections int
	InterpolateParams  bool
}

func NewConfig() *Config {
	return &Config{
		// Documents written from desktop databases routinely carry
		// values a strict SQL mode rejects: zero dates, out-of-range
		// defaults. mysqldump unsets the mode the same way on load.
		SQLMode: `""`,
		// Timestamp literals in the document must land verbatim, not
		// shifted through the server's time zone.
		TimeZone:           `"+00:00"`,
		Charset:            "utf8mb4",
		MaxOpenConnections: 2, // replay is sequential, one plus headroom
		InterpolateParams:  false,
	}
}

// newDSN takes a DSN and appends the session options replay depends
// on, so the behavior of the destination does not depend on server
// configuration.
func newDSN(dsn string, config *Config) (string, error) {
	var ops []string
	if _, err := mysql.ParseDSN(dsn); err != nil {
		return "", err
	}
	ops = append(ops, fmt.Sprintf("%s=%s", "sql_mode", url.QueryEscape(config.SQLMode)))
	ops = append(ops, fmt.Sprintf("%s=%s", "time_zone", url.QueryEscape(config.TimeZone)))
	ops = append(ops, fmt.Sprintf("%s=%s", "charset", config.Charset))
	// Multi-row INSERTs can be large; defer to the server's limit
	// instead of the driver's 4MiB default.
	ops = append(ops, fmt.Sprintf("%s=%s", "maxAllowedPacket", "0"))
	ops = append(ops, fmt.Sprintf("%s=%t", "interpolateParams", config.InterpolateParams))
	ops = append(ops, fmt.Sprintf("%s=%s", "allowNativePasswords", "true"))

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%s%s", dsn, separator, strings.Join(ops, "&")), nil
}

// New is similar to sql.Open except we take the inputDSN and append
// additional options to it to standardize the connection. It will also
// ping the connection to ensure it is valid.
func New(inputDSN string, config *Config) (*sql.DB, error) {
	dsn, err := newDSN(inputDSN, config)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(config.MaxOpenConnections)
	db.SetConnMaxLifetime(maxConnLifetime)
	return db, nil
}
