// Package export drives a whole-database export: table enumeration,
// filtering, statement emission and the final document. The pipeline
// is sequential by design, one cursor at a time, so source engines
// that dislike concurrent readers are safe.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/jetware/jet2my/pkg/emit"
	"github.com/jetware/jet2my/pkg/metrics"
)

// Exporter runs one export end to end against a catalog.
type Exporter struct {
	cat         catalog.Catalog
	opts        emit.Options
	rules       ExcludeRules
	withData    bool
	logger      *slog.Logger
	metricsSink metrics.Sink
}

func NewExporter(cat catalog.Catalog, opts emit.Options, rules ExcludeRules, withData bool) *Exporter {
	return &Exporter{
		cat:         cat,
		opts:        opts,
		rules:       rules,
		withData:    withData,
		logger:      slog.Default(),
		metricsSink: &metrics.NoopSink{},
	}
}

func (e *Exporter) SetLogger(logger *slog.Logger) {
	e.logger = logger
}

func (e *Exporter) SetMetricsSink(sink metrics.Sink) {
	e.metricsSink = sink
}

// Run builds the export document: every included table in catalog
// order, then every included relationship in catalog order. Any
// failure abandons the document entirely.
func (e *Exporter) Run(ctx context.Context) (*Document, error) {
	startTime := time.Now()
	tables, err := e.cat.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating tables: %w", err)
	}

	doc := NewDocument()
	emitter := emit.NewTableEmitter(e.cat, e.opts)
	emitter.SetLogger(e.logger)

	byName := make(map[string]catalog.Table, len(tables))
	included := 0
	for _, tbl := range tables {
		byName[tbl.Name] = tbl
		if e.rules.Excluded(tbl) {
			e.logger.Debug("excluding table", "table", tbl.Name, "system", tbl.System)
			continue
		}
		stmt, err := emitter.EmitTable(ctx, tbl, e.withData)
		if err != nil {
			return nil, err
		}
		doc.Append(stmt)
		included++
	}

	rels, err := e.cat.Relationships(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating relationships: %w", err)
	}
	emitted := 0
	for _, rel := range rels {
		if e.skipRelationship(rel, byName) {
			continue
		}
		stmt, ok := emit.EmitRelationship(rel, e.logger)
		if !ok {
			continue
		}
		doc.Append(stmt)
		emitted++
	}

	e.logger.Info("export complete",
		"tables", included,
		"excluded", len(tables)-included,
		"relationships", emitted,
		"statements", doc.Len())
	if err := e.sendMetrics(ctx, time.Since(startTime), included, emitted); err != nil {
		// we don't want to fail the export if metrics sending fails, log and continue
		e.logger.Error("error sending metrics from exporter", "error", err)
	}
	return doc, nil
}

func (e *Exporter) sendMetrics(ctx context.Context, exportTime time.Duration, tableCount, relationshipCount int) error {
	m := &metrics.Metrics{
		Values: []metrics.MetricValue{
			{
				Name:  metrics.ExportTimeMetricName,
				Type:  metrics.GAUGE,
				Value: float64(exportTime.Milliseconds()),
			},
			{
				Name:  metrics.TablesExportedMetricName,
				Type:  metrics.COUNTER,
				Value: float64(tableCount),
			},
			{
				Name:  metrics.RelationshipsExportedMetricName,
				Type:  metrics.COUNTER,
				Value: float64(relationshipCount),
			},
		},
	}

	contextWithTimeout, cancel := context.WithTimeout(ctx, metrics.SinkTimeout)
	defer cancel()

	return e.metricsSink.Send(contextWithTimeout, m)
}

// skipRelationship applies the table exclusion rules to both ends of a
// relationship and drops self-references, which the single-pair
// constraint format cannot express without creating a cycle on load.
func (e *Exporter) skipRelationship(rel catalog.Relationship, tables map[string]catalog.Table) bool {
	if rel.PrimaryTable == rel.ForeignTable {
		e.logger.Warn("skipping self-referencing relationship",
			"table", rel.PrimaryTable)
		return true
	}
	for _, name := range []string{rel.PrimaryTable, rel.ForeignTable} {
		tbl, ok := tables[name]
		if !ok || e.rules.Excluded(tbl) {
			e.logger.Warn("skipping relationship touching an excluded table",
				"primaryTable", rel.PrimaryTable,
				"foreignTable", rel.ForeignTable,
				"excluded", name)
			return true
		}
	}
	return false
}
