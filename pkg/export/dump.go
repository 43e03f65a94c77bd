package export

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/jetware/jet2my/pkg/emit"
	"github.com/jetware/jet2my/pkg/metrics"
	"github.com/jetware/jet2my/pkg/utils"
)

// Dump is the dump command: read a source database file, build the SQL
// document and write it out.
type Dump struct {
	Source        string   `arg:"" name:"source" help:"Path to the source database file." type:"existingfile"`
	Out           string   `name:"out" help:"Path the SQL document is written to." optional:"" default:"dump.sql"`
	WithData      bool     `name:"with-data" help:"Export row data as INSERT statements, not just the schema." optional:"" default:"false"`
	SkipData      []string `name:"skip-data" help:"Tables whose rows are never exported (log and audit tables)." optional:""`
	DateOnly      []string `name:"date-only" help:"Column names exported as DATE instead of DATETIME." optional:""`
	ExcludePrefix []string `name:"exclude-prefix" help:"Table name prefixes to exclude." optional:"" default:"MSys"`
	ExcludeMarker []string `name:"exclude-marker" help:"Leading markers identifying temporary tables to exclude." optional:"" default:"~"`
	ExcludeTable  []string `name:"exclude-table" help:"Exact table names to exclude." optional:"" default:"Switchboard Items"`
	Metrics       bool     `name:"metrics" help:"Log export counters when the run completes." optional:"" default:"false"`
}

func (d *Dump) Run() error {
	logger := slog.Default()
	if d.Out == "" {
		return errors.New("an output path is required")
	}

	cat, err := catalog.Open(d.Source)
	if err != nil {
		return err
	}
	defer utils.CloseAndLog(cat)

	logger.Info("starting export",
		"source", d.Source,
		"out", d.Out,
		"withData", d.WithData)

	opts := emit.Options{
		DateOnlyColumns: d.DateOnly,
		SkipDataTables:  d.SkipData,
	}
	rules := ExcludeRules{
		Prefixes: d.ExcludePrefix,
		Markers:  d.ExcludeMarker,
		Exacts:   d.ExcludeTable,
	}
	exporter := NewExporter(cat, opts, rules, d.WithData)
	exporter.SetLogger(logger)
	if d.Metrics {
		exporter.SetMetricsSink(metrics.NewLogSink(logger))
	}

	doc, err := exporter.Run(context.TODO())
	if err != nil {
		return err
	}
	if err := WriteFile(doc, d.Out); err != nil {
		return err
	}
	logger.Info("wrote SQL document", "path", d.Out, "statements", doc.Len())
	return nil
}
