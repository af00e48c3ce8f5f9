package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/movement"
)

const sample = `
policies:
  - name: standard
    min_run: 1
    max_run: 3
  - name: Ultra
    min_run: 4
    max_run: 10
  - name: zigzag
    min_run: 1
    max_run: 1
search:
  max_expansions: 50000
  timeout: 2s
`

func TestParse_Sample(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 50000, cfg.Search.MaxExpansions)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)

	ps := cfg.MovementPolicies()
	require.Len(t, ps, 3)
	assert.Equal(t, movement.Standard, ps[0])
	assert.Equal(t, movement.Policy{Name: "zigzag", MinRun: 1, MaxRun: 1}, ps[2])

	p, err := cfg.Policy("ULTRA")
	require.NoError(t, err)
	assert.Equal(t, 4, p.MinRun)
	assert.Equal(t, "Ultra", p.Name)
}

func TestParse_EmptyYieldsDefault(t *testing.T) {
	for _, doc := range []string{"", "  \n", "# nothing here\n"} {
		cfg, err := config.Parse([]byte(doc))
		require.NoError(t, err, "%q", doc)
		assert.Equal(t, config.Default(), cfg)
	}

	// A search section alone keeps the default policies.
	cfg, err := config.Parse([]byte("search:\n  max_expansions: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, []movement.Policy{movement.Standard, movement.Ultra}, cfg.MovementPolicies())
	assert.Equal(t, 7, cfg.Search.MaxExpansions)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":  "policies:\n  - name: a\n    min_run: 1\n    max_run: 3\n    diagonal: true\n",
		"NoName":      "policies:\n  - min_run: 1\n    max_run: 3\n",
		"Duplicate":   "policies:\n  - {name: a, min_run: 1, max_run: 3}\n  - {name: A, min_run: 1, max_run: 2}\n",
		"BadRuns":     "policies:\n  - {name: a, min_run: 4, max_run: 2}\n",
		"ZeroMax":     "policies:\n  - {name: a, min_run: 0, max_run: 0}\n",
		"NegBudget":   "search:\n  max_expansions: -1\n",
		"NegTimeout":  "search:\n  timeout: -1s\n",
		"BadDuration": "search:\n  timeout: soon\n",
		"NotAMapping": "- 1\n- 2\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Parse([]byte("policies:\n  - {name: a, min_run: 4, max_run: 2}\n"))
	require.ErrorIs(t, err, movement.ErrInvalidPolicy)
}

func TestPolicy_FallsBackToLookup(t *testing.T) {
	cfg := config.Config{Policies: []config.PolicyConfig{{Name: "zigzag", MinRun: 1, MaxRun: 1}}}
	p, err := cfg.Policy("b")
	require.NoError(t, err)
	assert.Equal(t, movement.Ultra, p)

	_, err = cfg.Policy("nope")
	require.ErrorIs(t, err, movement.ErrUnknownPolicy)
}

func TestPolicy_AliasPrefersFileEntry(t *testing.T) {
	cfg, err := config.Parse([]byte("policies:\n  - {name: Standard, min_run: 2, max_run: 5}\n"))
	require.NoError(t, err)

	for _, name := range []string{"standard", "a", "A"} {
		p, err := cfg.Policy(name)
		require.NoError(t, err, name)
		assert.Equal(t, movement.Policy{Name: "Standard", MinRun: 2, MaxRun: 5}, p, name)
	}

	// Ultra is not in the file, so its alias still reaches the built-in.
	p, err := cfg.Policy("b")
	require.NoError(t, err)
	assert.Equal(t, movement.Ultra, p)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crucible.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Policies, 3)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
