package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("Should write messages at or above the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: WarnLevel, Output: &buf})
		log.Info("hidden")
		log.Warn("visible")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})
	t.Run("Should carry fields added with With", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf})
		log.With("component", "seeder").Info("done")
		assert.Contains(t, buf.String(), "seeder")
	})
	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})
		log.Info("hello", "key", "value")
		line := strings.TrimSpace(buf.String())
		assert.True(t, strings.HasPrefix(line, "{"), "expected JSON output, got %q", line)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return the logger attached to the context", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf})
		ctx := ContextWithLogger(context.Background(), log)
		FromContext(ctx).Info("from context")
		assert.Contains(t, buf.String(), "from context")
	})
	t.Run("Should fall back to a default logger", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
		assert.NotNil(t, FromContext(nil)) //nolint:staticcheck
	})
}
