package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aura/core"
)

// inTempDir runs the test from an empty working directory so logs/ lands there
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { core.SetLogger(nil) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inTempDir(t)
	assert.Nil(t, setupLogging(false))
	assert.Equal(t, io.Discard, log.Writer())
	assert.False(t, core.Logger().Enabled(t.Context(), 0))

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log directory without -debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inTempDir(t)
	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	assert.NotEqual(t, os.Stdout, log.Writer())
	assert.NotEqual(t, os.Stderr, log.Writer())

	core.Logger().Info("scene started", "scene", "rune")
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "scene started")
	assert.Contains(t, string(data), "scene=rune")
}

func TestSetupLogging_Rotation(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.MkdirAll(logDir, 0o755))
	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644))

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasSuffix(e.Name(), ".log") {
			rotated++
		}
	}
	assert.Equal(t, 1, rotated)

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}
