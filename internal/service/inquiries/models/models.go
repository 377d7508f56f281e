package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// Request модели

// ContactMessageRequest сообщение из формы обратной связи
type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// JobApplicationRequest отклик на вакансию
type JobApplicationRequest struct {
	JobID              string  `json:"jobId"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Education          string  `json:"education"`
	HasExperience      string  `json:"hasExperience"` // yes | no
	PreviousExperience *string `json:"previousExperience,omitempty"`
	ResumeURL          *string `json:"resumeUrl,omitempty"`
	CoverLetter        string  `json:"coverLetter"`
}

// Response модели

// ContactMessageResponse принятое обращение
type ContactMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobApplicationResponse принятый отклик
type JobApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     string    `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Методы конвертации

func FromDomainContactMessage(m *domain.ContactMessage) *ContactMessageResponse {
	return &ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		CreatedAt: m.CreatedAt,
	}
}

func FromDomainJobApplication(a *domain.JobApplication) *JobApplicationResponse {
	return &JobApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		JobTitle:  a.JobTitle,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}
