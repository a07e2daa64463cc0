//go:build unit

package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    Level
		expected string
	}{
		{LevelError, "error"},
		{LevelWarn, "warn"},
		{LevelInfo, "info"},
		{LevelDebug, "debug"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    Level
		expectError bool
	}{
		{
			name:     "parse error level",
			input:    "error",
			expected: LevelError,
		},
		{
			name:     "parse warn level",
			input:    "warn",
			expected: LevelWarn,
		},
		{
			name:     "parse warning alias",
			input:    "warning",
			expected: LevelWarn,
		},
		{
			name:     "parse info level",
			input:    "info",
			expected: LevelInfo,
		},
		{
			name:     "parse debug level",
			input:    "debug",
			expected: LevelDebug,
		},
		{
			name:     "parse uppercase level",
			input:    "INFO",
			expected: LevelInfo,
		},
		{
			name:        "parse invalid level",
			input:       "invalid",
			expectError: true,
		},
		{
			name:        "parse empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name     string
		field    Field
		expected Field
	}{
		{
			name:     "String",
			field:    String("code", "Throttling"),
			expected: Field{Key: "code", Value: "Throttling"},
		},
		{
			name:     "Int",
			field:    Int("attempt", 3),
			expected: Field{Key: "attempt", Value: 3},
		},
		{
			name:     "Bool",
			field:    Bool("retryable", true),
			expected: Field{Key: "retryable", Value: true},
		},
		{
			name:     "Duration",
			field:    Duration("delay", 2 * time.Second),
			expected: Field{Key: "delay", Value: 2 * time.Second},
		},
		{
			name:     "Err uses conventional key",
			field:    Err(boom),
			expected: Field{Key: "error", Value: boom},
		},
		{
			name:     "Any",
			field:    Any("payload", 1.5),
			expected: Field{Key: "payload", Value: 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.field)
		})
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), LevelInfo, "dropped", String("k", "v"))
	})
	assert.Same(t, logger, logger.With(String("k", "v")))
	assert.Same(t, logger, logger.WithGroup("group"))
	assert.False(t, logger.Enabled(LevelError))
	assert.NoError(t, logger.Sync(context.Background()))
}
