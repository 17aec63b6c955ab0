package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	chk := require.New(t)

	logger, err := New("warn", false)
	chk.NoError(err)
	chk.False(logger.Core().Enabled(zapcore.InfoLevel))
	chk.True(logger.Core().Enabled(zapcore.WarnLevel))

	_, err = New("loud", true)
	chk.Error(err)
}

func TestInstall(t *testing.T) {
	chk := require.New(t)

	before := zap.L()
	logger, err := New("debug", true)
	chk.NoError(err)

	restore := Install(logger)
	chk.Same(logger, zap.L())
	restore()
	chk.Same(before, zap.L())
}
