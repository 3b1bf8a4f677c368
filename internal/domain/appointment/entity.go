package appointment

import (
	"time"

	"github.com/salonops/salon-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Start(ap *models.Appointment) error {
	if err := CanStart(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusInProgress)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusNoShow)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Blocking reports whether the appointment occupies its slot for conflict
// purposes. Only cancellation frees the interval; a no-show still records
// that the slot was held.
func Blocking(status Status) bool {
	return status != StatusCancelled
}
