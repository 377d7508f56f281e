package ask_assistant

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	askAssistant "github.com/m04kA/VenueBookingService/internal/usecase/ask_assistant"
)

type fakeUseCase struct {
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *askAssistant.Request) (*askAssistant.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &askAssistant.Response{Answer: "You asked: " + req.Query}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/assistant/ask", strings.NewReader(body)))
	return rec
}

func TestHandle_Answer(t *testing.T) {
	rec := serve(NewHandler(&fakeUseCase{}, nopLogger{}), `{"query":"Which halls are in West?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"answer":"You asked: Which halls are in West?"}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"broken body", `query`, nil, http.StatusBadRequest},
		{"empty query", `{"query":""}`, askAssistant.ErrInvalidInput, http.StatusBadRequest},
		{"upstream down", `{"query":"hi"}`, askAssistant.ErrAssistantUnavailable, http.StatusServiceUnavailable},
		{"internal", `{"query":"hi"}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
