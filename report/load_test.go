package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMetrics_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	data := `[
		{"operation": "Parse 1000 files", "baseline_ms": 120, "candidate_ms": 40},
		{"operation": "Type check large project", "baseline_ms": 900.5, "candidate_ms": 300.25}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	metrics, err := LoadMetrics(path)
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	assert.Equal(t, "Parse 1000 files", metrics[0].Operation)
	assert.Equal(t, 120.0, metrics[0].BaselineMs)
	assert.Equal(t, 40.0, metrics[0].CandidateMs)
	assert.Equal(t, "Type check large project", metrics[1].Operation)
	assert.Equal(t, 900.5, metrics[1].BaselineMs)
	assert.Equal(t, 300.25, metrics[1].CandidateMs)
}

func TestLoadMetrics_MissingFile(t *testing.T) {
	_, err := LoadMetrics(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.Error(t, err)
	assert.ErrorContains(t, err, "failed to open metrics file")
}

func TestLoadMetrics_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"operation": "not an array"}`), 0o644))

	_, err := LoadMetrics(path)

	assert.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse metrics file")
}

func TestLoadMetrics_FromStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"operation": "A", "baseline_ms": 2, "candidate_ms": 1}]`), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	orig := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = orig }()

	metrics, err := LoadMetrics("-")
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "A", metrics[0].Operation)
}

func TestLoadMetrics_StdinMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	orig := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = orig }()

	_, err = LoadMetrics("-")
	assert.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse metrics from stdin")
}

func TestReadMetrics_EmptyArray(t *testing.T) {
	metrics, err := readMetrics(strings.NewReader(`[]`))

	assert.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestReadMetrics_PreservesOrder(t *testing.T) {
	data := `[
		{"operation": "c"},
		{"operation": "a"},
		{"operation": "b"}
	]`

	metrics, err := readMetrics(strings.NewReader(data))
	require.NoError(t, err)

	got := make([]string, len(metrics))
	for i, m := range metrics {
		got[i] = m.Operation
	}
	assert.Equal(t, []string{"c", "a", "b"}, got)
}
