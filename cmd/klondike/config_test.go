package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegolorenzo12/foxpoker/internal/game"
)

func TestScoringFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klondike.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
scoring {
  foundation = 15
  undo       = 0
}
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	scoring := scoringFrom(cfg)
	assert.Equal(t, 15, scoring.Foundation)
	assert.Equal(t, 0, scoring.Undo)
	assert.Equal(t, game.DefaultScoring().Reveal, scoring.Reveal)
	assert.Equal(t, game.DefaultScoring().FoundationToTableau, scoring.FoundationToTableau)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, game.DefaultScoring(), scoringFrom(cfg))
}

func TestLoadConfigRejectsBadSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("scoring {"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
