//go:build unit

package redisretry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serverError mimics a go-redis server reply error.
type serverError string

func (e serverError) Error() string { return string(e) }

func (serverError) RedisError() {}

func TestPolicy_Recognizes(t *testing.T) {
	t.Parallel()

	policy := New()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "redis server error",
			err:      serverError("LOADING Redis is loading the dataset in memory"),
			expected: true,
		},
		{
			name:     "wrapped redis server error",
			err:      fmt.Errorf("get session: %w", serverError("CLUSTERDOWN The cluster is down")),
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("dial tcp: connection refused"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, policy.Recognizes(tt.err))
		})
	}
}

func TestPolicy_StatusCode(t *testing.T) {
	t.Parallel()

	policy := New()

	t.Run("extracts the reply prefix", func(t *testing.T) {
		t.Parallel()

		code, ok := policy.StatusCode(serverError("TRYAGAIN Multiple keys request during rehashing"))

		require.True(t, ok)
		assert.Equal(t, "TRYAGAIN", code)
	})

	t.Run("lower-case reply carries no code", func(t *testing.T) {
		t.Parallel()

		_, ok := policy.StatusCode(serverError("wrong number of arguments"))

		assert.False(t, ok)
	})

	t.Run("reports absence for foreign errors", func(t *testing.T) {
		t.Parallel()

		_, ok := policy.StatusCode(errors.New("no code here"))

		assert.False(t, ok)
	})

	t.Run("does not panic on nil", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			_, _ = policy.StatusCode(nil)
		})
	})
}

func TestPolicy_Found(t *testing.T) {
	t.Parallel()

	policy := New()

	retryable := []string{"LOADING", "TRYAGAIN", "CLUSTERDOWN", "MASTERDOWN", "READONLY", "BUSY"}
	for _, code := range retryable {
		assert.True(t, policy.Found(code), "%s should be retryable", code)
	}

	terminal := []string{"ERR", "WRONGTYPE", "NOAUTH", "NOSCRIPT", ""}
	for _, code := range terminal {
		assert.False(t, policy.Found(code), "%q should not be retryable", code)
	}
}

func TestIsReplyPrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, isReplyPrefix("LOADING"))
	assert.False(t, isReplyPrefix(""))
	assert.False(t, isReplyPrefix("Err"))
	assert.False(t, isReplyPrefix("E2BIG"))
}
