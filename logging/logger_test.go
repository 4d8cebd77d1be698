package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCreateNewLogger(t *testing.T) {
	t.Parallel()

	l, err := CreateNewLogger("identicon", "test")
	assert.NoError(t, err)
	assert.NotNil(t, l)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	for _, dev := range []bool{false, true} {
		l, err := NewLogger(dev, "identicon", "test")
		assert.NoError(t, err)
		assert.NotNil(t, l)
	}
}

func TestCore(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(obs, zap.AddCaller(), wrapCore(driverConfig{ServiceName: "identicon", ServiceVersion: "v1"}))

	l.Info("rendered")
	l.Named("writer").With(zap.String("key", "a.png")).Error("failed", zap.Error(errors.New("boom")))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	info := entries[0].ContextMap()
	assert.Contains(t, info, serviceContextKey)
	assert.NotContains(t, info, contextKey)

	errEntry := entries[1].ContextMap()
	assert.Contains(t, errEntry, serviceContextKey)
	assert.Contains(t, errEntry, contextKey)
	assert.Equal(t, "a.png", errEntry["key"])
	assert.Equal(t, "writer", entries[1].LoggerName)
}
