package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/VenueBookingService/pkg/psqlbuilder"
	"github.com/m04kA/VenueBookingService/pkg/ptr"
)

// Repository заказы билетов, регистрации на мастер-классы, обращения и отклики в PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

type attendeeRow struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateTicketOrder сохраняет заказ; посетители хранятся в JSONB
func (r *Repository) CreateTicketOrder(ctx context.Context, order *domain.TicketOrder) (*domain.TicketOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	rows := make([]attendeeRow, len(order.Attendees))
	for i, a := range order.Attendees {
		rows[i] = attendeeRow{Name: a.Name, Email: a.Email}
	}
	attendees, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("ticket_orders").
		Columns("id", "concert_id", "concert_name", "user_id", "seat_type", "quantity",
			"unit_price", "total_price", "attendees").
		Values(order.ID, order.ConcertID, order.ConcertName, order.UserID, order.SeatType, order.Quantity,
			order.UnitPrice, order.TotalPrice, string(attendees)).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTicketOrder - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&order.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateTicketOrder - execute insert: %v", ErrExecQuery, err)
	}

	return order, nil
}

// CreateWorkshopRegistration сохраняет регистрацию на мастер-класс
func (r *Repository) CreateWorkshopRegistration(ctx context.Context, reg *domain.WorkshopRegistration) (*domain.WorkshopRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("workshop_registrations").
		Columns("id", "workshop_id", "workshop_title", "name", "email").
		Values(reg.ID, reg.WorkshopID, reg.WorkshopTitle, reg.Name, reg.Email).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateWorkshopRegistration - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&reg.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateWorkshopRegistration - execute insert: %v", ErrExecQuery, err)
	}

	return reg, nil
}

func (r *Repository) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("id", "name", "email", "subject", "message").
		Values(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - execute insert: %v", ErrExecQuery, err)
	}

	return msg, nil
}

// CreateJobApplication сохраняет отклик; пустые необязательные поля пишутся как NULL
func (r *Repository) CreateJobApplication(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("job_applications").
		Columns("id", "job_id", "job_title", "name", "email", "phone", "education",
			"has_experience", "previous_experience", "resume_url", "cover_letter").
		Values(app.ID, app.JobID, app.JobTitle, app.Name, app.Email, app.Phone, app.Education,
			app.HasExperience, nullIfEmpty(app.PreviousExperience), nullIfEmpty(app.ResumeURL), app.CoverLetter).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateJobApplication - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&app.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateJobApplication - execute insert: %v", ErrExecQuery, err)
	}

	return app, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.Ptr(s)
}
