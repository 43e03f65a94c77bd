package metrics

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopSink(t *testing.T) {
	sink := &NoopSink{}
	err := sink.Send(context.Background(), &Metrics{Values: []MetricValue{
		{Name: TablesExportedMetricName, Type: COUNTER, Value: 3},
	}})
	assert.NoError(t, err)
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	err := sink.Send(context.Background(), &Metrics{Values: []MetricValue{
		{Name: TablesExportedMetricName, Type: COUNTER, Value: 3},
		{Name: ExportTimeMetricName, Type: GAUGE, Value: 125},
		{Name: "bogus", Type: UNKNOWN, Value: 1},
	}})
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, TablesExportedMetricName)
	assert.Contains(t, out, "type=counter")
	assert.Contains(t, out, ExportTimeMetricName)
	assert.Contains(t, out, "type=gauge")
	assert.Contains(t, out, "invalid metric type")
}
