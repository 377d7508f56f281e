package inquiries

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/service/inquiries/models"
	"github.com/m04kA/VenueBookingService/pkg/ptr"
)

func validateMinLength(field, value string, minLen int) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < minLen {
		return fmt.Errorf("%w: %s must be at least %d characters", ErrInvalidInput, field, minLen)
	}
	return nil
}

// validateEmail допускается только голый адрес без имени
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: email is not a valid email address", ErrInvalidInput)
	}
	return nil
}

func validatePhone(phone string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(phone))
	if n < domain.MinPhoneLength || n > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be between %d and %d characters",
			ErrInvalidInput, domain.MinPhoneLength, domain.MaxPhoneLength)
	}
	return nil
}

// validateResumeURL пустая ссылка допустима, иначе нужен абсолютный http(s) адрес
func validateResumeURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: resumeUrl is not a valid URL", ErrInvalidInput)
	}
	return nil
}

// validateContactMessage валидирует обращение
func validateContactMessage(req *models.ContactMessageRequest) error {
	if err := validateMinLength("name", req.Name, domain.MinNameLength); err != nil {
		return err
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validateMinLength("subject", req.Subject, domain.MinContactSubjectLength); err != nil {
		return err
	}
	return validateMinLength("message", req.Message, domain.MinContactMessageLength)
}

// validateJobApplication валидирует отклик
// При опыте "yes" описание предыдущего опыта обязательно
func validateJobApplication(req *models.JobApplicationRequest) error {
	if strings.TrimSpace(req.JobID) == "" {
		return fmt.Errorf("%w: jobId is required", ErrInvalidInput)
	}
	if err := validateMinLength("name", req.Name, domain.MinNameLength); err != nil {
		return err
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validatePhone(req.Phone); err != nil {
		return err
	}
	if err := validateMinLength("education", req.Education, domain.MinEducationLength); err != nil {
		return err
	}

	answer := domain.ExperienceAnswer(req.HasExperience)
	if !answer.IsValid() {
		return fmt.Errorf("%w: hasExperience must be %q or %q", ErrInvalidInput, domain.ExperienceYes, domain.ExperienceNo)
	}
	if answer == domain.ExperienceYes {
		err := validateMinLength("previousExperience", ptr.Deref(req.PreviousExperience, ""), domain.MinPreviousExperienceLength)
		if err != nil {
			return err
		}
	}

	if err := validateResumeURL(ptr.Deref(req.ResumeURL, "")); err != nil {
		return err
	}
	return validateMinLength("coverLetter", req.CoverLetter, domain.MinCoverLetterLength)
}
