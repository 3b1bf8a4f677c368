package appointment

import (
	"context"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/httperr"
)

// Delete hard-removes an appointment and its service lines. Meant for
// erroneous-entry cleanup only; normal flows cancel instead.
type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.AppointmentByID(ctx, id); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
