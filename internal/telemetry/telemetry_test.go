package telemetry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
)

func TestRecorderWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterRecorder(&buf)
	stats := grain.Stats{Grains: 4, BoundaryPercentage: 12.5}
	for i := 1; i <= 3; i++ {
		rec := NewStepRecord("ca", i, core.StepStats{Iteration: i, Changed: 10 * i}, stats)
		require.NoError(t, r.Write(rec))
	}
	require.NoError(t, r.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "engine,step,iteration,changed,nucleated,grains"))
	assert.Equal(t, 1, strings.Count(buf.String(), "engine,"))
	assert.True(t, strings.HasPrefix(lines[3], "ca,3,3,30,0,4"))
}

func TestNilRecorderDiscards(t *testing.T) {
	r, err := NewRecorder("")
	require.NoError(t, err)
	assert.Nil(t, r)
	assert.NoError(t, r.Write(StepRecord{}))
	assert.NoError(t, r.Close())
}

func TestRecorderCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "steps.csv")
	r, err := NewRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.Write(StepRecord{Engine: "mc", Step: 1}))
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mc,1,")
}

func TestWriteSweep(t *testing.T) {
	var buf bytes.Buffer
	recs := []SweepRecord{{Seed: 1, Method: "ca", Steps: 20, Done: true}, {Seed: 2, Method: "ca", Steps: 22}}
	require.NoError(t, WriteSweep(&buf, recs))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1,ca,20,true"))
}

func TestMetricsTextfile(t *testing.T) {
	m := NewMetrics()
	m.Observe("srxmc", core.StepStats{Changed: 7, Nucleated: 2}, grain.Stats{Grains: 5})
	m.Observe("srxmc", core.StepStats{Changed: 3}, grain.Stats{Grains: 6})

	path := filepath.Join(t.TempDir(), "grain.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `grain_steps_total{engine="srxmc"} 2`)
	assert.Contains(t, text, `grain_cells_changed_total{engine="srxmc"} 10`)
	assert.Contains(t, text, `grain_nuclei_total{engine="srxmc"} 2`)
	assert.Contains(t, text, `grain_count{engine="srxmc"} 6`)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.Observe("ca", core.StepStats{}, grain.Stats{})
	assert.NoError(t, m.WriteTextfile("ignored"))
}
