package commands

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmyport-dev/kmyport/internal/config"
)

func runInitCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"init"}, args...))
	return cmd.Execute()
}

func TestInitWritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInitCommand(t, dir))

	cfg, err := config.Load(filepath.Join(dir, "kmyport.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInitRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInitCommand(t, dir))

	err := runInitCommand(t, dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "already exists")

	// --force replaces the file.
	assert.NoError(t, runInitCommand(t, dir, "--force"))
}
