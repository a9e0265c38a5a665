package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signupkit/handler"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected bool
	}{
		{
			name:     "SSE Accept header",
			headers:  map[string]string{"Accept": "text/event-stream"},
			expected: true,
		},
		{
			name:     "SSE Accept header with other values",
			headers:  map[string]string{"Accept": "text/html, text/event-stream, */*"},
			expected: true,
		},
		{
			name:     "DataStar query parameter",
			query:    "?datastar=%7B%7D",
			expected: true,
		},
		{
			name:     "DataStar content type",
			headers:  map[string]string{"Content-Type": "application/x-datastar"},
			expected: true,
		},
		{
			name:     "DataStar request header",
			headers:  map[string]string{"Datastar-Request": "true"},
			expected: true,
		},
		{
			name:     "Regular request",
			headers:  map[string]string{"Accept": "text/html"},
			expected: false,
		},
		{
			name:     "No headers",
			headers:  map[string]string{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/signup/validate/email"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			result := handler.IsDataStar(req)
			assert.Equal(t, tt.expected, result)
		})
	}
}
