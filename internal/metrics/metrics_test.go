package metrics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/render"
	"github.com/specialistvlad/rtegraph/internal/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type metricWriter interface {
	Write(*dto.Metric) error
}

func gaugeValue(t *testing.T, m metricWriter) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, m.Write(&metric))
	return metric.GetGauge().GetValue()
}

func counterValue(t *testing.T, m metricWriter) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, m.Write(&metric))
	return metric.GetCounter().GetValue()
}

func sampleDocument() render.Document {
	g := diagram.New("sample")
	c := g.Cluster(nil, "mapping_1", "E1")
	a := g.NodeWithID("event/E1", c, "E1", diagram.NodeStyle{})
	b := g.NodeWithID("T1", c, "T1", diagram.NodeStyle{})
	g.Connect(a, b, c, "", diagram.ColorNone)
	return render.Document{Name: "event-task", Graph: g}
}

func TestRender(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Render(context.Background(), sampleDocument()))

	assert.Equal(t, 2.0, gaugeValue(t, r.DocumentNodes.WithLabelValues("event-task")))
	assert.Equal(t, 1.0, gaugeValue(t, r.DocumentEdges.WithLabelValues("event-task")))
	assert.Equal(t, 1.0, gaugeValue(t, r.DocumentClusters.WithLabelValues("event-task")))
	assert.Equal(t, 1.0, counterValue(t, r.DocumentsTotal))
}

func TestStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", err: nil, want: StatusSuccess},
		{name: "integrity fault", err: fmt.Errorf("report x: %w", &resolve.IntegrityError{Kind: "executable", Ref: "R404"}), want: StatusIntegrityFault},
		{name: "other error", err: errors.New("disk full"), want: StatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}

func TestRecordRunAndWrite(t *testing.T) {
	r := NewRegistry()
	r.RecordRun(1500*time.Millisecond, nil)
	r.RecordRun(time.Second, &resolve.IntegrityError{Kind: "executable", Ref: "R404"})

	assert.Equal(t, 1.0, counterValue(t, r.RunsTotal.WithLabelValues(StatusSuccess)))
	assert.Equal(t, 1.0, counterValue(t, r.RunsTotal.WithLabelValues(StatusIntegrityFault)))
	assert.Equal(t, 1.0, gaugeValue(t, r.RunDuration))

	path := filepath.Join(t.TempDir(), "rtegraph.prom")
	require.NoError(t, r.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `rtegraph_runs_total{status="integrity_fault"} 1`)
	assert.Contains(t, string(data), "rtegraph_run_duration_seconds 1")
}
