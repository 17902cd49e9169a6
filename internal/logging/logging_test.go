package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		format string
		want   zap.AtomicLevel
	}{
		{"info", "json", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"DEBUG", "console", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"warn", "", zap.NewAtomicLevelAt(zap.WarnLevel)},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want.Level()))
			assert.False(t, logger.Core().Enabled(tt.want.Level()-1))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "json")
	assert.Error(t, err)
}
