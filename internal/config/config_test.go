package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtron-go/rtron/internal/config"
)

func TestLoad_YAMLFile_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rtron.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crsEpsg: 25832\ndiscretizationStepSize: 2.5\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25832, cfg.CrsEpsg)
	assert.Equal(t, 2.5, cfg.DiscretizationStepSize)
	assert.Equal(t, 16, cfg.CircleSlices) // unset option keeps its default
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefault_MatchesSpecDefaults(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 1.0, cfg.DiscretizationStepSize)
	assert.Equal(t, 16, cfg.CircleSlices)
	assert.False(t, cfg.GenerateRandomGeometryIds)
}
