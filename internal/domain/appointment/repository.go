package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/models"
)

// Award is the client-statistics delta applied atomically when a visit is
// settled through appointment completion.
type Award struct {
	Spend  decimal.Decimal
	Points int
}

type Repository interface {
	// -------- Configuration snapshot --------
	WeekSchedule(ctx context.Context) (WeekSchedule, error)

	// -------- Lookups --------
	ClientByID(ctx context.Context, id uint) (*models.Client, error)
	StaffByID(ctx context.Context, id uint) (*models.Staff, error)
	ServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error)
	AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)

	ListForDay(
		ctx context.Context,
		staffID uint,
		date string,
	) ([]models.Appointment, error)

	ListForPeriod(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Appointment, error)

	// -------- Booking (atomic: locked overlap scan + insert) --------
	CreateBooked(
		ctx context.Context,
		ap *models.Appointment,
		lines []models.AppointmentService,
	) error

	// Reschedule re-runs the overlap scan excluding ap's own id, then
	// overwrites schedule fields and replaces the service lines.
	Reschedule(
		ctx context.Context,
		ap *models.Appointment,
		lines []models.AppointmentService,
	) error

	// -------- State changes --------
	SaveStatus(ctx context.Context, ap *models.Appointment) error

	// CompleteWithAward persists the completed status and applies the
	// client award as store-side relative increments in one transaction.
	CompleteWithAward(
		ctx context.Context,
		ap *models.Appointment,
		award Award,
	) error

	// -------- Hard delete (erroneous-entry cleanup) --------
	Delete(ctx context.Context, id uint) error
}
