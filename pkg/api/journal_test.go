package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeQuery_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    SubscribeQuery
		expected SubscribeQuery
	}{
		{
			name:     "zero value gets defaults",
			input:    SubscribeQuery{},
			expected: SubscribeQuery{OrderBy: "recorded_at", OrderDir: "desc", Limit: 50},
		},
		{
			name:     "asc preserved",
			input:    SubscribeQuery{OrderDir: "asc", Limit: 10},
			expected: SubscribeQuery{OrderBy: "recorded_at", OrderDir: "asc", Limit: 10},
		},
		{
			name:     "unknown direction coerced to desc",
			input:    SubscribeQuery{OrderDir: "sideways", Limit: 10},
			expected: SubscribeQuery{OrderBy: "recorded_at", OrderDir: "desc", Limit: 10},
		},
		{
			name:     "limit capped",
			input:    SubscribeQuery{Limit: 1000},
			expected: SubscribeQuery{OrderBy: "recorded_at", OrderDir: "desc", Limit: 200},
		},
		{
			name:     "negative limit gets default",
			input:    SubscribeQuery{Limit: -5},
			expected: SubscribeQuery{OrderBy: "recorded_at", OrderDir: "desc", Limit: 50},
		},
		{
			name:     "custom order field preserved",
			input:    SubscribeQuery{OrderBy: "created_at", Limit: 10},
			expected: SubscribeQuery{OrderBy: "created_at", OrderDir: "desc", Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := tt.input
			query.Normalize()
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestError_IsRetryable(t *testing.T) {
	retryable := []string{CodeUnavailable, CodeDeadlineExceeded, CodeInternal}
	for _, code := range retryable {
		assert.True(t, (&Error{Code: code}).IsRetryable(), code)
	}

	terminal := []string{
		CodeInvalidArgument,
		CodeUnauthenticated,
		CodeNotFound,
		CodeAlreadyExists,
		CodeResourceExhausted,
	}
	for _, code := range terminal {
		assert.False(t, (&Error{Code: code}).IsRetryable(), code)
	}
}
