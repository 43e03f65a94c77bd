// Package apply replays an export document against a live MySQL
// server: the statements run in document order over one connection.
package apply

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jetware/jet2my/pkg/dbconn"
	"github.com/jetware/jet2my/pkg/statement"
	"github.com/jetware/jet2my/pkg/utils"
)

const (
	defaultHost     = "127.0.0.1"
	defaultPort     = 3306
	defaultUsername = "root"
	defaultPassword = ""
	defaultDatabase = ""
)

// Apply is the apply command: parse a generated SQL document and run
// its statements against a destination schema.
type Apply struct {
	File         string  `arg:"" name:"file" help:"Path to the SQL document to replay." type:"existingfile"`
	Host         string  `name:"host" help:"Hostname" optional:""`
	Username     string  `name:"username" help:"User" optional:""`
	Password     *string `name:"password" help:"Password" optional:"" env:"MYSQL_PWD"`
	Database     string  `name:"database" help:"Database" optional:""`
	DefaultsFile string  `name:"defaults-file" help:"my.cnf-style file with [client] and [jet2my] sections supplying connection parameters." optional:""`
	DryRun       bool    `name:"dry-run" help:"Parse the document and log the statements without executing them." optional:"" default:"false"`
}

// normalizeOptions does some validation and sets defaults. Values given
// on the command line win over the defaults file, which wins over the
// built-in defaults.
func (a *Apply) normalizeOptions() error {
	conf, err := newConfParams(a.DefaultsFile)
	if err != nil {
		return err
	}
	if a.Host == "" {
		a.Host = conf.GetHost()
	}
	if !strings.Contains(a.Host, ":") {
		a.Host = fmt.Sprintf("%s:%d", a.Host, conf.GetPort())
	}
	if a.Username == "" {
		a.Username = conf.GetUser()
	}
	if a.Password == nil {
		pw := conf.GetPassword()
		a.Password = &pw
	}
	if a.Database == "" {
		a.Database = conf.GetDatabase()
	}
	if a.Database == "" {
		return errors.New("database/schema name is required")
	}
	return nil
}

func (a *Apply) Run() error {
	logger := slog.Default()
	if err := a.normalizeOptions(); err != nil {
		return err
	}

	data, err := os.ReadFile(a.File)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	stmts, err := statement.Split(string(data))
	if err != nil {
		return err
	}
	if len(stmts) == 0 {
		return errors.New("document contains no statements")
	}

	if a.DryRun {
		for i, stmt := range stmts {
			logger.Info("would execute",
				"statement", i+1,
				"kind", stmt.Kind.String(),
				"table", stmt.Table)
		}
		logger.Info("dry run complete", "statements", len(stmts))
		return nil
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s", a.Username, *a.Password, a.Host, a.Database)
	db, err := dbconn.New(dsn, dbconn.NewConfig())
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", a.Host, err)
	}
	defer utils.CloseAndLog(db)

	for i, stmt := range stmts {
		logger.Info("executing",
			"statement", i+1,
			"total", len(stmts),
			"kind", stmt.Kind.String(),
			"table", stmt.Table)
		if _, err := db.ExecContext(context.TODO(), stmt.Text); err != nil {
			return fmt.Errorf("statement %d (%s %s): %w", i+1, stmt.Kind, stmt.Table, err)
		}
	}
	logger.Info("replay complete", "statements", len(stmts))
	return nil
}
