package appointment

import "testing"

func TestTransitions(t *testing.T) {
	all := []Status{StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow}

	allowed := map[string]map[Status]bool{
		"start":      {StatusConfirmed: true},
		"complete":   {StatusConfirmed: true, StatusInProgress: true},
		"cancel":     {StatusConfirmed: true, StatusInProgress: true},
		"no-show":    {StatusConfirmed: true},
		"reschedule": {StatusConfirmed: true, StatusInProgress: true},
	}

	checks := map[string]func(Status) error{
		"start":      CanStart,
		"complete":   CanComplete,
		"cancel":     CanCancel,
		"no-show":    CanMarkNoShow,
		"reschedule": CanReschedule,
	}

	for name, check := range checks {
		for _, from := range all {
			err := check(from)
			if allowed[name][from] && err != nil {
				t.Errorf("%s from %s: unexpected error %v", name, from, err)
			}
			if !allowed[name][from] && err == nil {
				t.Errorf("%s from %s: expected invalid_state", name, from)
			}
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusConfirmed {
		t.Fatalf("InitialStatus = %s, want confirmed", InitialStatus())
	}
}
