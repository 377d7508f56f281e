package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/VenueBookingService/pkg/psqlbuilder"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// Repository репозиторий бронирований площадок в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникального индекса (venue_id, booking_date) для активных броней дает ErrDateAlreadyBooked
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"venue_id",
			"venue_name",
			"user_id",
			"user_email",
			"booking_date",
			"payment_method",
			"invoice_number",
			"status",
			"base_cost",
			"tax",
			"discount_name",
			"discount_percentage",
			"discount_amount",
			"final_cost",
		).
		Values(
			booking.ID,
			booking.VenueID,
			booking.VenueName,
			booking.UserID,
			booking.UserEmail,
			booking.Date,
			booking.PaymentMethod,
			booking.InvoiceNumber,
			booking.Status,
			booking.BaseCost,
			booking.Tax,
			booking.DiscountName,
			booking.DiscountPercentage,
			booking.DiscountAmount,
			booking.FinalCost,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDateAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя, новые даты первыми
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC", "created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetReservedDates возвращает даты активных бронирований площадки
// В транзакции строки блокируются (FOR UPDATE) до ее завершения
func (r *Repository) GetReservedDates(ctx context.Context, venueID string) ([]types.Date, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := reservedDatesQuery(venueID, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]types.Date, 0)
	for rows.Next() {
		var d types.Date
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: GetReservedDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Cancel переводит бронирование в cancelled_by_user с указанием причины
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", domain.StatusCancelledByUser).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", cancelledAt).
		Where(squirrel.Eq{"id": id, "status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func reservedDatesQuery(venueID string, forUpdate bool) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select("booking_date").
		From(tableName).
		Where(squirrel.Eq{"venue_id": venueID, "status": domain.StatusConfirmed}).
		OrderBy("booking_date ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder.ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		reason      sql.NullString
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.VenueID,
		&b.VenueName,
		&b.UserID,
		&b.UserEmail,
		&b.Date,
		&b.PaymentMethod,
		&b.InvoiceNumber,
		&b.Status,
		&b.BaseCost,
		&b.Tax,
		&b.DiscountName,
		&b.DiscountPercentage,
		&b.DiscountAmount,
		&b.FinalCost,
		&reason,
		&cancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reason.Valid {
		b.CancellationReason = &reason.String
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}

	return &b, nil
}
