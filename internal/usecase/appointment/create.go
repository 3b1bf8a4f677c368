package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientID   uint
	StaffID    *uint
	ServiceIDs []uint

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("service_required")
	}

	services, err := uc.repo.ServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration := 0
	total := decimal.Zero
	lines := make([]models.AppointmentService, 0, len(services))
	for _, svc := range services {
		duration += svc.DurationMin
		total = total.Add(svc.Price)
		lines = append(lines, models.AppointmentService{
			ServiceID:      svc.ID,
			PriceAtBooking: svc.Price,
		})
	}

	end, err := domain.AddMinutes(in.StartTime, duration)
	if err != nil {
		return nil, err
	}

	week, err := uc.repo.WeekSchedule(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateHours(week, in.Date, in.StartTime, end); err != nil {
		return nil, err
	}

	client, err := uc.repo.ClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if in.StaffID != nil {
		staff, err := uc.repo.StaffByID(ctx, *in.StaffID)
		if err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		if !staff.IsActive {
			return nil, httperr.ErrBusiness("staff_inactive")
		}
	}

	ap := &models.Appointment{
		ClientID:    client.ID,
		StaffID:     in.StaffID,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     end,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		TotalAmount: total,
	}

	// CreateBooked runs the locked overlap scan and the insert in one
	// transaction; no writes happen if the slot is taken.
	if err := uc.repo.CreateBooked(ctx, ap, lines); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
