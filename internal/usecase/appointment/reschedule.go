package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

type RescheduleInput struct {
	AppointmentID uint

	StaffID    *uint
	ServiceIDs []uint

	Date      string
	StartTime string
	Notes     string
}

type Reschedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReschedule(repo domain.Repository, audit *audit.Dispatcher) *Reschedule {
	return &Reschedule{repo: repo, audit: audit}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.AppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

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
			AppointmentID:  ap.ID,
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

	if in.StaffID != nil {
		staff, err := uc.repo.StaffByID(ctx, *in.StaffID)
		if err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		if !staff.IsActive {
			return nil, httperr.ErrBusiness("staff_inactive")
		}
	}

	ap.StaffID = in.StaffID
	ap.Date = in.Date
	ap.StartTime = in.StartTime
	ap.EndTime = end
	ap.Notes = in.Notes
	ap.TotalAmount = total

	// Reschedule re-runs the locked overlap scan excluding ap's own id.
	if err := uc.repo.Reschedule(ctx, ap, lines); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
