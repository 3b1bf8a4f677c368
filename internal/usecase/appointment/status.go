package appointment

import (
	"context"
	"time"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

// ======================================================
// CANCEL / NO-SHOW / START
// ======================================================

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(repo domain.Repository, audit *audit.Dispatcher) *UpdateStatus {
	return &UpdateStatus{repo: repo, audit: audit}
}

func (uc *UpdateStatus) Cancel(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.AppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveStatus(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *UpdateStatus) MarkNoShow(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.AppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.MarkNoShow(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveStatus(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_no_show",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *UpdateStatus) Start(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.AppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Start(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveStatus(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_started",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
