package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/andesnlp/garbler/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseConfig decodes a session configuration with defaults filled.
func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
count: 50
seed: 42
levels:
  - name: light
    weight: 2
  - name: heavy
    weight: 1
  - name: custom
    intensity: 0.33
    weight: 1
accept_threshold: 0.5
`))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Count)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 8, cfg.MaxConcurrency, "default concurrency")
	require.Len(t, cfg.Levels, 3)

	tau, err := cfg.Levels[2].intensity()
	require.NoError(t, err)
	assert.Equal(t, 0.33, tau)
}

// TestParseConfig_Rejections covers the validation failures.
func TestParseConfig_Rejections(t *testing.T) {
	cases := map[string]string{
		"zero count":     "count: 0\nlevels: [{name: light, weight: 1}]",
		"no levels":      "count: 10\nlevels: []",
		"unknown preset": "count: 10\nlevels: [{name: cosmic, weight: 1}]",
		"bad intensity":  "count: 10\nlevels: [{name: custom, intensity: 1.4, weight: 1}]",
		"zero weights":   "count: 10\nlevels: [{name: light, weight: 0}]",
		"bad threshold":  "count: 10\nlevels: [{name: light, weight: 1}]\naccept_threshold: 2",
	}
	for name, yml := range cases {
		_, err := ParseConfig([]byte(yml))
		assert.ErrorIs(t, err, ErrBadConfig, name)
	}
}

// TestLoadConfig round-trips through a file.
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("count: 5\nlevels: [{name: medium, weight: 1}]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Count)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestDeriveSeed verifies stream decorrelation and stability.
func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, deriveSeed(1, 0), deriveSeed(1, 0))
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(1, 1))
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(2, 0))
}

func smallConfig(count int) *Config {
	cfg := DefaultConfig()
	cfg.Count = count
	cfg.Seed = 7
	cfg.MaxConcurrency = 4
	return cfg
}

// TestBuild_ReportInvariants runs a real batch end to end and checks
// every outcome's span set against its corrupted text.
func TestBuild_ReportInvariants(t *testing.T) {
	b, err := NewBuilder(smallConfig(40), nil)
	require.NoError(t, err)

	report, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.SessionID)
	require.Len(t, report.Outcomes, 40)

	total := 0
	for i, o := range report.Outcomes {
		assert.Equal(t, i, o.Index)
		assert.NotEmpty(t, o.Level)
		assert.NotEmpty(t, o.Clean.Text)

		n := utf8.RuneCountInString(o.Result.Text)
		assert.NoError(t, span.ValidateSet(o.Result.Spans, n), "example %d", i)
		total += o.Result.Report.Total
	}
	assert.Equal(t, total, report.Overall.Total, "overall merges every example")

	perLevel := 0
	for _, lr := range report.PerLevel {
		perLevel += lr.Total
	}
	assert.Equal(t, report.Overall.Total, perLevel)
}

// TestBuild_Deterministic verifies two builds from the same config are
// identical apart from the session id.
func TestBuild_Deterministic(t *testing.T) {
	a, err := NewBuilder(smallConfig(20), nil)
	require.NoError(t, err)
	b, err := NewBuilder(smallConfig(20), nil)
	require.NoError(t, err)

	ra, err := a.Build(context.Background())
	require.NoError(t, err)
	rb, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ra.Outcomes, rb.Outcomes)
	assert.Equal(t, ra.Overall, rb.Overall)
	assert.NotEqual(t, ra.SessionID, rb.SessionID, "session ids are unique")
}

// TestBuild_Cancellation verifies a dead context aborts the batch.
func TestBuild_Cancellation(t *testing.T) {
	b, err := NewBuilder(smallConfig(100), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = b.Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
