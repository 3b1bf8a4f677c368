package appointment

import (
	"context"
	"testing"

	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/httperr"
)

func TestRescheduleExcludesOwnSlot(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreate(repo, testDispatcher())
	reschedule := NewReschedule(repo, testDispatcher())

	ap, err := create.Execute(context.Background(), CreateInput{
		ClientID:   1,
		StaffID:    uintPtr(2),
		ServiceIDs: []uint{10},
		Date:       "2026-09-07",
		StartTime:  "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// shifting within its own old interval must not conflict with itself
	moved, err := reschedule.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		StaffID:       uintPtr(2),
		ServiceIDs:    []uint{10},
		Date:          "2026-09-07",
		StartTime:     "10:15",
	})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if moved.StartTime != "10:15" || moved.EndTime != "11:00" {
		t.Fatalf("interval = %s-%s, want 10:15-11:00", moved.StartTime, moved.EndTime)
	}
}

func TestRescheduleRejectsOtherBooking(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreate(repo, testDispatcher())
	reschedule := NewReschedule(repo, testDispatcher())

	first, err := create.Execute(context.Background(), CreateInput{
		ClientID:   1,
		StaffID:    uintPtr(2),
		ServiceIDs: []uint{10},
		Date:       "2026-09-07",
		StartTime:  "10:00",
	})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	second, err := create.Execute(context.Background(), CreateInput{
		ClientID:   1,
		StaffID:    uintPtr(2),
		ServiceIDs: []uint{10},
		Date:       "2026-09-07",
		StartTime:  "14:00",
	})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	_, err = reschedule.Execute(context.Background(), RescheduleInput{
		AppointmentID: second.ID,
		StaffID:       uintPtr(2),
		ServiceIDs:    []uint{10},
		Date:          first.Date,
		StartTime:     "10:30",
	})
	if httperr.BusinessCode(err) != domain.CodeSlotConflict {
		t.Fatalf("error = %v, want slot_conflict", err)
	}
}

func TestRescheduleRejectsTerminal(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreate(repo, testDispatcher())
	reschedule := NewReschedule(repo, testDispatcher())

	ap, err := create.Execute(context.Background(), CreateInput{
		ClientID:   1,
		StaffID:    uintPtr(2),
		ServiceIDs: []uint{10},
		Date:       "2026-09-07",
		StartTime:  "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ap.Status = string(domain.StatusCompleted)

	_, err = reschedule.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		ServiceIDs:    []uint{10},
		Date:          "2026-09-08",
		StartTime:     "11:00",
	})
	if httperr.BusinessCode(err) != domain.CodeInvalidState {
		t.Fatalf("error = %v, want invalid_state", err)
	}
}
