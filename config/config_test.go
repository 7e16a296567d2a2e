package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nearpair/config"
	"github.com/katalvlaran/nearpair/pairs"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nearpair.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, pairs.DefaultMaxPoints, cfg.MaxPoints)
	assert.Equal(t, 3, cfg.Top)
	assert.Equal(t, config.AutoBudget, cfg.Budget)
}

func TestBudgetFor(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 10, cfg.BudgetFor(20))
	assert.Equal(t, 1000, cfg.BudgetFor(21))
	assert.Equal(t, 10, cfg.BudgetFor(0))

	cfg.Budget = 7
	assert.Equal(t, 7, cfg.BudgetFor(5000))

	// Zero is an explicit budget, not a request for the heuristic.
	cfg.Budget = 0
	assert.Equal(t, 0, cfg.BudgetFor(5000))
	assert.Equal(t, 0, cfg.BudgetFor(3))
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
large_budget: 500
method: heap
top: 2
format: json
history_db: runs.db
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.LargeBudget)
	assert.Equal(t, config.DefaultSmallBudget, cfg.SmallBudget, "unset keys keep defaults")
	assert.Equal(t, "heap", cfg.Method)
	assert.Equal(t, 2, cfg.Top)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "runs.db", cfg.HistoryDB)
	assert.Len(t, cfg.RankOptions(), 2)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "budget: [1, 2"))
	assert.Error(t, err)

	cases := map[string]string{
		"negative budget": "budget: -2",
		"zero max points": "max_points: 0",
		"bad method":      "method: quick",
		"zero top":        "top: 0",
		"bad format":      "format: xml",
		"negative small":  "small_budget: -3",
		"bad threshold":   "small_input_threshold: -1",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
