package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := Init("loud", "json", "stdout")
	assert.Error(t, err)
}

func TestInitWritesJSONToFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init("debug", "json", path))

	Info("guide generated", zap.String("jurisdiction", "CA"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"guide generated"`)
	assert.Contains(t, string(data), `"jurisdiction":"CA"`)
}

func TestGetLoggerBeforeInit(t *testing.T) {
	assert.NotNil(t, GetLogger())
}
