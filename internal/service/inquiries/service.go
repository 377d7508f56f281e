package inquiries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/VenueBookingService/internal/domain"
	catalogRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/VenueBookingService/internal/service/inquiries/models"
	"github.com/m04kA/VenueBookingService/pkg/ptr"
)

// Service прием обращений через форму обратной связи и откликов на вакансии
type Service struct {
	jobs   JobCatalog
	repo   Repository
	logger Logger
}

func NewService(jobs JobCatalog, repo Repository, logger Logger) *Service {
	return &Service{
		jobs:   jobs,
		repo:   repo,
		logger: logger,
	}
}

// SendContactMessage сохраняет обращение
func (s *Service) SendContactMessage(ctx context.Context, req *models.ContactMessageRequest) (*models.ContactMessageResponse, error) {
	if err := validateContactMessage(req); err != nil {
		s.logger.Warn("SendContactMessage: validation failed: %v", err)
		return nil, err
	}

	msg, err := s.repo.CreateContactMessage(ctx, &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		s.logger.Error("SendContactMessage: failed to save message: %v", err)
		return nil, fmt.Errorf("%w: SendContactMessage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SendContactMessage: message id=%s saved", msg.ID)
	return models.FromDomainContactMessage(msg), nil
}

// SubmitJobApplication сохраняет отклик на открытую вакансию
func (s *Service) SubmitJobApplication(ctx context.Context, req *models.JobApplicationRequest) (*models.JobApplicationResponse, error) {
	s.logger.Info("SubmitJobApplication: job=%s", req.JobID)

	if err := validateJobApplication(req); err != nil {
		s.logger.Warn("SubmitJobApplication: validation failed: %v", err)
		return nil, err
	}

	job, err := s.jobs.GetJobOpening(ctx, strings.TrimSpace(req.JobID))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrJobOpeningNotFound) {
			s.logger.Warn("SubmitJobApplication: job id=%s not found", req.JobID)
			return nil, ErrJobOpeningNotFound
		}
		s.logger.Error("SubmitJobApplication: repository error for job id=%s: %v", req.JobID, err)
		return nil, fmt.Errorf("%w: SubmitJobApplication - repository error: %v", ErrInternal, err)
	}

	hasExperience := domain.ExperienceAnswer(req.HasExperience) == domain.ExperienceYes
	previous := ""
	if hasExperience {
		previous = strings.TrimSpace(ptr.Deref(req.PreviousExperience, ""))
	}

	app, err := s.repo.CreateJobApplication(ctx, &domain.JobApplication{
		JobID:              job.ID,
		JobTitle:           job.Title,
		Name:               strings.TrimSpace(req.Name),
		Email:              strings.TrimSpace(req.Email),
		Phone:              strings.TrimSpace(req.Phone),
		Education:          strings.TrimSpace(req.Education),
		HasExperience:      hasExperience,
		PreviousExperience: previous,
		ResumeURL:          strings.TrimSpace(ptr.Deref(req.ResumeURL, "")),
		CoverLetter:        strings.TrimSpace(req.CoverLetter),
	})
	if err != nil {
		s.logger.Error("SubmitJobApplication: failed to save application: %v", err)
		return nil, fmt.Errorf("%w: SubmitJobApplication - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SubmitJobApplication: application id=%s for job=%s", app.ID, job.ID)
	return models.FromDomainJobApplication(app), nil
}
