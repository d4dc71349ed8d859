package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoteError(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		message         string
		expectedMessage string
	}{
		{
			name:            "remote message is kept",
			status:          http.StatusForbidden,
			message:         "The request cannot be completed because you have exceeded your quota.",
			expectedMessage: "The request cannot be completed because you have exceeded your quota.",
		},
		{
			name:            "empty message falls back to status",
			status:          http.StatusInternalServerError,
			message:         "",
			expectedMessage: "HTTP error! status: 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRemoteError(tt.status, tt.message, nil)
			assert.Equal(t, ErrorTypeRemote, err.Type)
			assert.Equal(t, tt.expectedMessage, err.Message)
			assert.Equal(t, http.StatusBadGateway, err.StatusCode)
			assert.Equal(t, tt.status, err.Details["remote_status"])
		})
	}
}

func TestAppError_Error(t *testing.T) {
	plain := NewNotFoundError("video not found")
	assert.Equal(t, "not_found: video not found", plain.Error())

	wrapped := NewTransportError("catalog unreachable", fmt.Errorf("dial tcp: timeout"))
	assert.Equal(t, "transport: catalog unreachable (dial tcp: timeout)", wrapped.Error())
}

func TestIsAndAs(t *testing.T) {
	base := NewConfigurationError("API key is not configured")
	wrapped := fmt.Errorf("fetch feed: %w", base)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Same(t, base, appErr)

	assert.True(t, Is(wrapped, ErrorTypeConfiguration))
	assert.False(t, Is(wrapped, ErrorTypeRemote))
	assert.False(t, Is(fmt.Errorf("plain"), ErrorTypeConfiguration))

	_, ok = As(nil)
	assert.False(t, ok)
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := NewInternalError("failed", inner)
	assert.ErrorIs(t, err, inner)
}
