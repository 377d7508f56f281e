package booking

import (
	"github.com/m04kA/VenueBookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

const (
	tableName = "venue_bookings"

	// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
	uniqueViolation = "23505"
)

var columns = []string{
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
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}
