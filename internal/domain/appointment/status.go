package appointment

import "github.com/salonops/salon-manager/internal/httperr"

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no-show"
)

const CodeInvalidState = "invalid_state"

func InitialStatus() Status {
	return StatusConfirmed
}

// CanStart gates the optional confirmed -> in-progress transition.
func CanStart(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed && current != StatusInProgress {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusConfirmed && current != StatusInProgress {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	return nil
}

// CanReschedule rejects edits once an appointment reached a terminal state.
func CanReschedule(current Status) error {
	if current != StatusConfirmed && current != StatusInProgress {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	return nil
}
