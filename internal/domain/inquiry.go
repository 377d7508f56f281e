package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage обращение через форму обратной связи
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// JobOpening открытая вакансия
type JobOpening struct {
	ID          string
	Title       string
	Location    string
	Package     string
	Description string
}

// ExperienceAnswer ответ на вопрос о предыдущем опыте работы
type ExperienceAnswer string

const (
	ExperienceYes ExperienceAnswer = "yes"
	ExperienceNo  ExperienceAnswer = "no"
)

func (a ExperienceAnswer) IsValid() bool {
	return a == ExperienceYes || a == ExperienceNo
}

// JobApplication отклик кандидата на вакансию
type JobApplication struct {
	ID                 uuid.UUID
	JobID              string
	JobTitle           string
	Name               string
	Email              string
	Phone              string
	Education          string
	HasExperience      bool
	PreviousExperience string
	ResumeURL          string
	CoverLetter        string
	CreatedAt          time.Time
}
