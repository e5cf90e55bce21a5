package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "Production", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core)).With("component", "mirror")

	l.Warn("remote write failed", "op", "upsert_profile")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "remote write failed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "mirror", fields["component"])
	assert.Equal(t, "upsert_profile", fields["op"])
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", "v")
	l.Sync()
}
