package submit_job_application

import (
	"context"

	"github.com/m04kA/VenueBookingService/internal/service/inquiries/models"
)

type InquiryService interface {
	SubmitJobApplication(ctx context.Context, req *models.JobApplicationRequest) (*models.JobApplicationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
