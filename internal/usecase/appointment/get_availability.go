package appointment

import (
	"context"

	domain "github.com/salonops/salon-manager/internal/domain/appointment"
)

type AvailabilityInput struct {
	StaffID     uint
	Date        string
	DurationMin int
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the bookable slot start times for a staff member on a
// date: the 30-minute grid of the day's opening window, minus slots whose
// interval would overlap a blocking appointment or run past closing.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	week, err := uc.repo.WeekSchedule(ctx)
	if err != nil {
		return nil, err
	}

	wd, err := domain.Weekday(in.Date)
	if err != nil {
		return nil, err
	}

	day := week[int(wd)]
	if !day.IsOpen {
		return []string{}, nil
	}

	booked, err := uc.repo.ListForDay(ctx, in.StaffID, in.Date)
	if err != nil {
		return nil, err
	}

	free := []string{}
	for _, start := range domain.Slots(day.Open, day.Close) {
		end, err := domain.AddMinutes(start, in.DurationMin)
		if err != nil {
			return nil, err
		}
		if end > day.Close {
			continue
		}

		conflict := false
		for _, ap := range booked {
			if !domain.Blocking(domain.Status(ap.Status)) {
				continue
			}
			if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			free = append(free, start)
		}
	}

	return free, nil
}
