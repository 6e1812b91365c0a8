package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zap.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zap.InfoLevel, parseLevel("verbose"))
}
