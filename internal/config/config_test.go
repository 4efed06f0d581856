package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pqbench/internal/bench"
	"pqbench/internal/pq"
	"pqbench/internal/report"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pqbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []int{50000, 40000, 30000, 20000, 10000}, cfg.Counts)
	assert.Equal(t, []string{"heap", "sorted_array"}, cfg.Queues)
	assert.Equal(t, "table", cfg.Output)
	assert.True(t, cfg.CollectGarbage)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
counts: [300, 200, 100]
queues: [array]
output: csv
collect_garbage: false
metrics_file: /tmp/pqbench.prom
log:
  level: warn
  format: console
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{300, 200, 100}, cfg.Counts)
	assert.Equal(t, []string{"array"}, cfg.Queues)
	assert.Equal(t, "csv", cfg.Output)
	assert.False(t, cfg.CollectGarbage)
	assert.Equal(t, "/tmp/pqbench.prom", cfg.MetricsFile)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	types, err := cfg.QueueTypes()
	require.NoError(t, err)
	assert.Equal(t, []pq.Type{pq.TypeSortedArray}, types)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "output: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, bench.DefaultCounts(), cfg.Counts)
	assert.True(t, cfg.CollectGarbage)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "\n\n"))
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultCounts(), cfg.Counts)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PQBENCH_OUTPUT", "yaml")
	t.Setenv("PQBENCH_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "unknown key", body: "iterations: 3\n"},
		{name: "wrong type", body: "counts: [ten]\n", want: ErrInvalidConfig},
		{name: "negative count", body: "counts: [10, -5]\n", want: bench.ErrInvalidCount},
		{name: "empty counts", body: "counts: []\n", want: ErrInvalidConfig},
		{name: "unknown queue", body: "queues: [heap, skiplist]\n", want: pq.ErrUnknownQueueType},
		{name: "unknown output", body: "output: xml\n", want: report.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), "expected %v in %v", tt.want, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRead_DefersValidation(t *testing.T) {
	path := writeConfig(t, "counts: [0]\noutput: xml\n")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, cfg.Counts)
	assert.Equal(t, "xml", cfg.Output)

	err = cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, bench.ErrInvalidCount))

	cfg.Counts = []int{5}
	cfg.Output = "csv"
	assert.NoError(t, cfg.Validate())
}

func TestRead_StillRejectsUnknownKeys(t *testing.T) {
	_, err := Read(writeConfig(t, "iterations: 3\n"))
	assert.Error(t, err)
}

func TestQueueTypes_Deduplicates(t *testing.T) {
	cfg := Config{Queues: []string{"heap", "array", "HEAP", "sorted-array"}}
	types, err := cfg.QueueTypes()
	require.NoError(t, err)
	assert.Equal(t, []pq.Type{pq.TypeHeap, pq.TypeSortedArray}, types)
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "pqbench.example.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Counts, cfg.Counts)
	assert.Equal(t, def.Queues, cfg.Queues)
	assert.Equal(t, def.Output, cfg.Output)
	assert.True(t, cfg.CollectGarbage)
}
