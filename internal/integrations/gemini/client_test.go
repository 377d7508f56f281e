package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_AnswerQuestion(t *testing.T) {
	var got GenerateContentRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Grand Hall "},{"text":"is free. "}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/v1beta/", "gemini-2.5-flash", "test-key", 5*time.Second, nopLogger{})

	answer, err := c.AnswerQuestion(context.Background(), "Is it free?", []string{"FAQ text", "  ", "Venues JSON"})
	require.NoError(t, err)
	assert.Equal(t, "Grand Hall is free.", answer)

	require.Len(t, got.Contents, 1)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "Is it free?", got.Contents[0].Parts[0].Text)
	require.NotNil(t, got.SystemInstruction)
	instruction := got.SystemInstruction.Parts[0].Text
	assert.Contains(t, instruction, "Do not make up information")
	assert.Contains(t, instruction, "FAQ text\n\nVenues JSON")
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`, ErrRateLimited},
		{"bad key", http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid"}}`, ErrInvalidResponse},
		{"broken json", http.StatusOK, `{"candidates":`, ErrInvalidResponse},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, ErrEmptyAnswer},
		{"blocked answer", http.StatusOK, `{"candidates":[{"content":{"parts":[]},"finishReason":"SAFETY"}]}`, ErrEmptyAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "gemini-2.5-flash", "test-key", 5*time.Second, nopLogger{})

			_, err := c.AnswerQuestion(context.Background(), "hi", nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "gemini-2.5-flash", "test-key", time.Second, nopLogger{})

	_, err := c.AnswerQuestion(context.Background(), "hi", nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_ErrorMessageExtracted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"model not found"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "unknown", "test-key", time.Second, nopLogger{})

	_, err := c.AnswerQuestion(context.Background(), "hi", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.AnswerQuestion(context.Background(), "hi", nil)
	assert.ErrorIs(t, err, ErrDisabled)
}
