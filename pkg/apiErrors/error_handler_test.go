package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		detail         string
		expectedStatus int
	}{
		{"campaign not found", ErrCampaignNotFound, "Campaign not found", http.StatusNotFound},
		{"invalid format", ErrInvalidFormat, "invalid campaign id", http.StatusBadRequest},
		{"fetch failure", ErrCampaignFetch, "Failed to fetch campaigns: boom", http.StatusInternalServerError},
		{"unknown code", "XXX_999", "weird", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, tt.detail, nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, tt.detail, body["detail"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("connection refused"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "connection refused", apiErr.Detail)

	apiErr = FromError(nil, ErrDatabaseOperation)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
