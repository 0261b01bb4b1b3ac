package okta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeUserID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain identifier",
			input:    "user123",
			expected: "user123",
		},
		{
			name:     "email login",
			input:    "user@test.com",
			expected: "user%40test.com",
		},
		{
			name:     "traversal attempt",
			input:    "user@test.com/../../admin",
			expected: "user%40test.com%2F..%2F..%2Fadmin",
		},
		{
			name:     "spaces",
			input:    "user 123",
			expected: "user%20123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			escaped := escapeUserID(tt.input)
			assert.Equal(t, tt.expected, escaped)
			assert.NotContains(t, escaped, "/", "escaped identifier must stay a single path segment")
			assert.False(t, strings.Contains(escaped, " "))
		})
	}
}

func TestUserTransitionTimestamp(t *testing.T) {
	assert.Equal(t, "a", (&User{StatusChanged: "a", LastUpdated: "b"}).TransitionTimestamp())
	assert.Equal(t, "b", (&User{LastUpdated: "b"}).TransitionTimestamp())
	assert.Empty(t, (&User{}).TransitionTimestamp())
}
