package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIError(t *testing.T) {
	testCases := []struct {
		name        string
		statusCode  int
		payload     string
		wantMessage string
	}{
		{
			name:        "detail_field",
			statusCode:  401,
			payload:     `{"detail": "Token is invalid or expired"}`,
			wantMessage: "Token is invalid or expired",
		},
		{
			name:        "message_field",
			statusCode:  409,
			payload:     `{"message": "IMEI already registered"}`,
			wantMessage: "IMEI already registered",
		},
		{
			name:        "unrecognized_shape_falls_back_to_status_text",
			statusCode:  500,
			payload:     `{"oops": true}`,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "non_json_payload",
			statusCode:  502,
			payload:     `<html>bad gateway</html>`,
			wantMessage: "Bad Gateway",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewAPIError(tc.statusCode, []byte(tc.payload))
			assert.Equal(t, tc.statusCode, err.StatusCode)
			assert.Equal(t, tc.wantMessage, err.Message)
			assert.Equal(t, tc.payload, string(err.Payload))
		})
	}
}

func TestIsStatusHelpers(t *testing.T) {
	unauthorized := NewAPIError(http.StatusUnauthorized, []byte(`{"detail":"expired"}`))
	notFound := NewAPIError(http.StatusNotFound, nil)

	assert.True(t, IsUnauthorized(unauthorized))
	assert.False(t, IsUnauthorized(notFound))
	assert.True(t, IsNotFound(notFound))

	// Helpers must see through wrapping.
	wrapped := fmt.Errorf("fetching sale: %w", notFound)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(errors.New("plain error")))
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("GET /sales/", cause)

	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GET /sales/")
}

func TestGetAPIError(t *testing.T) {
	apiErr := NewAPIError(422, []byte(`{"detail":"bad payload"}`))
	wrapped := fmt.Errorf("creating product: %w", apiErr)

	got, ok := GetAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 422, got.StatusCode)

	_, ok = GetAPIError(errors.New("not an api error"))
	assert.False(t, ok)
}
