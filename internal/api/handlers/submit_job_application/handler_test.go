package submit_job_application

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/service/inquiries"
	"github.com/m04kA/VenueBookingService/internal/service/inquiries/models"
)

type fakeService struct {
	err error
	got *models.JobApplicationRequest
}

func (f *fakeService) SubmitJobApplication(_ context.Context, req *models.JobApplicationRequest) (*models.JobApplicationResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.JobApplicationResponse{ID: uuid.New(), JobID: req.JobID, Name: req.Name}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	const body = `{"jobId":"job-02","name":"Ravi","email":"ravi@example.com","phone":"9876543210",
		"education":"MBA","hasExperience":"yes","previousExperience":"Sales lead for venues",
		"resumeUrl":"https://ravi.dev","coverLetter":"I have closed partnerships with forty venues."}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"created", body, nil, http.StatusCreated},
		{"empty body", "", nil, http.StatusBadRequest},
		{"invalid", body, inquiries.ErrInvalidInput, http.StatusBadRequest},
		{"unknown job", body, inquiries.ErrJobOpeningNotFound, http.StatusNotFound},
		{"internal", body, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).Handle(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/careers/applications", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "job-02", svc.got.JobID)
				require.NotNil(t, svc.got.PreviousExperience)
				assert.Equal(t, "Sales lead for venues", *svc.got.PreviousExperience)
			}
		})
	}
}
