package appointment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

// fakeRepo is an in-memory domain.Repository. CreateBooked runs the same
// overlap rule as the store so conflict paths are exercised end to end.
type fakeRepo struct {
	week         domain.WeekSchedule
	clients      map[uint]*models.Client
	staff        map[uint]*models.Staff
	services     map[uint]models.Service
	appointments map[uint]*models.Appointment
	nextID       uint

	completedAward *domain.Award
	savedStatus    string
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	var week domain.WeekSchedule
	for i := range week {
		week[i] = domain.DayHours{Open: "09:00", Close: "19:00", IsOpen: true}
	}
	week[0].IsOpen = false

	return &fakeRepo{
		week:         week,
		clients:      map[uint]*models.Client{1: {ID: 1, FirstName: "Amina"}},
		staff:        map[uint]*models.Staff{2: {ID: 2, FirstName: "Karim", IsActive: true}},
		services:     map[uint]models.Service{10: {ID: 10, Price: decimal.NewFromInt(1500), DurationMin: 45}},
		appointments: map[uint]*models.Appointment{},
		nextID:       100,
	}
}

func (f *fakeRepo) WeekSchedule(ctx context.Context) (domain.WeekSchedule, error) {
	return f.week, nil
}

func (f *fakeRepo) ClientByID(ctx context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return c, nil
}

func (f *fakeRepo) StaffByID(ctx context.Context, id uint) (*models.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, httperr.ErrBusiness("staff_not_found")
	}
	return s, nil
}

func (f *fakeRepo) ServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if svc, ok := f.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeRepo) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (f *fakeRepo) ListForDay(ctx context.Context, staffID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date == date && ap.StaffID != nil && *ap.StaffID == staffID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForPeriod(ctx context.Context, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date >= from && ap.Date <= to {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) conflicts(ap *models.Appointment, excludeID uint) bool {
	if ap.StaffID == nil {
		return false
	}
	for _, other := range f.appointments {
		if other.ID == excludeID ||
			other.StaffID == nil || *other.StaffID != *ap.StaffID ||
			other.Date != ap.Date ||
			!domain.Blocking(domain.Status(other.Status)) {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, other.StartTime, other.EndTime) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateBooked(ctx context.Context, ap *models.Appointment, lines []models.AppointmentService) error {
	if f.conflicts(ap, 0) {
		return httperr.ErrBusiness(domain.CodeSlotConflict)
	}
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) Reschedule(ctx context.Context, ap *models.Appointment, lines []models.AppointmentService) error {
	if f.conflicts(ap, ap.ID) {
		return httperr.ErrBusiness(domain.CodeSlotConflict)
	}
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) SaveStatus(ctx context.Context, ap *models.Appointment) error {
	f.savedStatus = ap.Status
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) CompleteWithAward(ctx context.Context, ap *models.Appointment, award domain.Award) error {
	f.completedAward = &award
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uint) error {
	delete(f.appointments, id)
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func uintPtr(v uint) *uint { return &v }

// ------------------------------------------------------

func TestCreateBooksSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreate(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), CreateInput{
		ClientID:   1,
		StaffID:    uintPtr(2),
		ServiceIDs: []uint{10},
		Date:       "2026-09-07",
		StartTime:  "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.EndTime != "10:45" {
		t.Errorf("end time = %s, want 10:45", ap.EndTime)
	}
	if ap.Status != string(domain.StatusConfirmed) {
		t.Errorf("status = %s, want confirmed", ap.Status)
	}
	if !ap.TotalAmount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("total = %s, want 1500", ap.TotalAmount)
	}
}

func TestCreateRejectsConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreate(repo, testDispatcher())

	in := CreateInput{
		ClientID:   1,
		StaffID:    uintPtr(2),
		ServiceIDs: []uint{10},
		Date:       "2026-09-07",
		StartTime:  "10:00",
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// overlapping interval for the same staff member
	in.StartTime = "10:30"
	_, err := uc.Execute(context.Background(), in)
	if httperr.BusinessCode(err) != domain.CodeSlotConflict {
		t.Fatalf("error = %v, want slot_conflict", err)
	}

	// back-to-back is fine
	in.StartTime = "10:45"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("back-to-back booking: %v", err)
	}
}

func TestCreateRejectsClosedDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreate(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateInput{
		ClientID:   1,
		ServiceIDs: []uint{10},
		Date:       "2026-09-06", // sunday
		StartTime:  "10:00",
	})
	if httperr.BusinessCode(err) != domain.CodeClosedDay {
		t.Fatalf("error = %v, want closed_day", err)
	}
}

func TestCreateRejectsUnknownService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreate(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateInput{
		ClientID:   1,
		ServiceIDs: []uint{10, 999},
		Date:       "2026-09-07",
		StartTime:  "10:00",
	})
	if httperr.BusinessCode(err) != "service_not_found" {
		t.Fatalf("error = %v, want service_not_found", err)
	}
}

func TestCreateRejectsInactiveStaff(t *testing.T) {
	repo := newFakeRepo()
	repo.staff[3] = &models.Staff{ID: 3, IsActive: false}
	uc := NewCreate(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateInput{
		ClientID:   1,
		StaffID:    uintPtr(3),
		ServiceIDs: []uint{10},
		Date:       "2026-09-07",
		StartTime:  "10:00",
	})
	if httperr.BusinessCode(err) != "staff_inactive" {
		t.Fatalf("error = %v, want staff_inactive", err)
	}
}

func TestCompleteAwardsVisitPoints(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[50] = &models.Appointment{
		ID:          50,
		ClientID:    1,
		Status:      string(domain.StatusConfirmed),
		TotalAmount: decimal.NewFromInt(2300),
	}

	uc := NewComplete(repo, testDispatcher())
	ap, err := uc.Execute(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(domain.StatusCompleted) {
		t.Errorf("status = %s, want completed", ap.Status)
	}
	if repo.completedAward == nil {
		t.Fatal("expected an award")
	}
	if repo.completedAward.Points != 23 {
		t.Errorf("points = %d, want 23", repo.completedAward.Points)
	}
	if !repo.completedAward.Spend.Equal(decimal.NewFromInt(2300)) {
		t.Errorf("spend = %s, want 2300", repo.completedAward.Spend)
	}
}

func TestCompleteSkipsAwardWhenSettled(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[51] = &models.Appointment{
		ID:                   51,
		ClientID:             1,
		Status:               string(domain.StatusConfirmed),
		TotalAmount:          decimal.NewFromInt(2300),
		SettledTransactionID: uintPtr(700),
	}

	uc := NewComplete(repo, testDispatcher())
	if _, err := uc.Execute(context.Background(), 51); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.completedAward != nil {
		t.Fatal("settled visit must not award again")
	}
	if repo.savedStatus != string(domain.StatusCompleted) {
		t.Errorf("saved status = %s, want completed", repo.savedStatus)
	}
}

func TestCompleteRejectsTerminal(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[52] = &models.Appointment{
		ID:     52,
		Status: string(domain.StatusCancelled),
	}

	uc := NewComplete(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), 52)
	if httperr.BusinessCode(err) != domain.CodeInvalidState {
		t.Fatalf("error = %v, want invalid_state", err)
	}
}

func TestAvailabilitySkipsBookedSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[60] = &models.Appointment{
		ID:        60,
		StaffID:   uintPtr(2),
		Date:      "2026-09-07",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    string(domain.StatusConfirmed),
	}
	repo.appointments[61] = &models.Appointment{
		ID:        61,
		StaffID:   uintPtr(2),
		Date:      "2026-09-07",
		StartTime: "14:00",
		EndTime:   "15:00",
		Status:    string(domain.StatusCancelled), // freed slot
	}

	uc := NewGetAvailability(repo)
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		StaffID:     2,
		Date:        "2026-09-07",
		DurationMin: 60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range slots {
		// a 60-minute visit starting here must not touch 10:00-11:00
		if s == "09:30" || s == "10:00" || s == "10:30" {
			t.Errorf("slot %s overlaps a confirmed booking", s)
		}
	}

	has := func(want string) bool {
		for _, s := range slots {
			if s == want {
				return true
			}
		}
		return false
	}
	if !has("09:00") || !has("11:00") {
		t.Errorf("expected 09:00 and 11:00 free, got %v", slots)
	}
	if !has("14:00") {
		t.Errorf("cancelled booking should free 14:00, got %v", slots)
	}
	if has("18:30") {
		t.Errorf("18:30 + 60min runs past closing, got %v", slots)
	}
}

func TestAvailabilityClosedDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		StaffID:     2,
		Date:        "2026-09-06",
		DurationMin: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("closed day slots = %v, want none", slots)
	}
}
