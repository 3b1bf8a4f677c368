package appointment

import (
	"context"
	"time"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/domain/loyalty"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

type Complete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewComplete(repo domain.Repository, audit *audit.Dispatcher) *Complete {
	return &Complete{repo: repo, audit: audit}
}

func (uc *Complete) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.AppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Complete(ap, time.Now()); err != nil {
		return nil, err
	}

	// A visit already settled through POS keeps its loyalty award on the
	// sale; completing it here only flips the status.
	if ap.SettledTransactionID != nil {
		if err := uc.repo.SaveStatus(ctx, ap); err != nil {
			return nil, err
		}
	} else {
		award := domain.Award{
			Spend:  ap.TotalAmount,
			Points: loyalty.PointsForVisit(ap.TotalAmount),
		}
		if err := uc.repo.CompleteWithAward(ctx, ap, award); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
