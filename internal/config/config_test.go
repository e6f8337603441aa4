package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, "mock", cfg.Validator.Mode)
	assert.Equal(t, 10, cfg.Ranking.Limit)
	assert.Equal(t, 10*time.Second, cfg.ValidationTimeout())
}

func TestLoadFileAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend:
  url: http://api.test
  timeout: 3s
validator:
  mode: accept
  timeout: 250ms
  latency: 10ms
ranking:
  limit: 25
`), 0o644))

	t.Setenv("MATHQUEST_API_URL", "http://override.test")
	t.Setenv("MATHQUEST_RANKING_LIMIT", "5")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://override.test", cfg.Backend.URL)
	assert.Equal(t, 3*time.Second, cfg.BackendTimeout())
	assert.Equal(t, 250*time.Millisecond, cfg.ValidationTimeout())
	assert.Equal(t, 5, cfg.Ranking.Limit)

	m := cfg.Manuscript()
	assert.Equal(t, "accept", m.Mode)
	assert.Equal(t, "sk-test", m.APIKey)
	assert.Equal(t, 10*time.Millisecond, m.Latency)
	assert.Equal(t, 0.7, m.SuccessRate)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MATHQUEST_VALIDATOR=reject\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("MATHQUEST_VALIDATOR") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "reject", cfg.Validator.Mode)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	tests := []struct {
		raw      string
		fallback time.Duration
		want     time.Duration
	}{
		{"", time.Second, time.Second},
		{"2m", time.Second, 2 * time.Minute},
		{"soon", time.Second, time.Second},
	}
	for _, tt := range tests {
		if got := Duration(tt.raw, tt.fallback); got != tt.want {
			t.Errorf("Duration(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
