package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salonops/salon-manager/internal/cache"
	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

type AppointmentGormRepository struct {
	db    *gorm.DB
	cache *cache.ScheduleCache
}

func NewAppointmentGormRepository(db *gorm.DB, c *cache.ScheduleCache) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, cache: c}
}

// --------------------------------------------------
// Configuration snapshot
// --------------------------------------------------

func (r *AppointmentGormRepository) WeekSchedule(
	ctx context.Context,
) (domain.WeekSchedule, error) {

	if week, ok := r.cache.Get(ctx); ok {
		return week, nil
	}

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return domain.WeekSchedule{}, err
	}

	var week domain.WeekSchedule
	for _, row := range rows {
		if row.Weekday < 0 || row.Weekday > 6 {
			continue
		}
		week[row.Weekday] = domain.DayHours{
			Open:   row.Open,
			Close:  row.Close,
			IsOpen: row.IsOpen,
		}
	}

	r.cache.Set(ctx, week)
	return week, nil
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) ClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) StaffByID(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *AppointmentGormRepository) ServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = true", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *AppointmentGormRepository) AppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	staffID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where("staff_id = ? AND date = ?", staffID, date).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Staff").
		Preload("Services").
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// assertSlotFree runs the overlap scan under a row lock. Only cancelled
// rows free their interval; the half-open comparison lets back-to-back
// bookings through.
func assertSlotFree(
	tx *gorm.DB,
	staffID uint,
	date string,
	start string,
	end string,
	excludeID uint,
) error {

	q := tx.Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"staff_id = ? AND date = ? AND status <> ? AND start_time < ? AND end_time > ?",
			staffID, date, string(domain.StatusCancelled), end, start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness(domain.CodeSlotConflict)
	}
	return nil
}

func (r *AppointmentGormRepository) CreateBooked(
	ctx context.Context,
	ap *models.Appointment,
	lines []models.AppointmentService,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ap.StaffID != nil {
			if err := assertSlotFree(tx, *ap.StaffID, ap.Date, ap.StartTime, ap.EndTime, 0); err != nil {
				return err
			}
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].AppointmentID = ap.ID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})

	// The exclusion constraint backstops the scan against writers that
	// slipped in on another connection.
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(domain.CodeSlotConflict)
	}
	return err
}

func (r *AppointmentGormRepository) Reschedule(
	ctx context.Context,
	ap *models.Appointment,
	lines []models.AppointmentService,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ap.StaffID != nil {
			if err := assertSlotFree(tx, *ap.StaffID, ap.Date, ap.StartTime, ap.EndTime, ap.ID); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"staff_id":     ap.StaffID,
				"date":         ap.Date,
				"start_time":   ap.StartTime,
				"end_time":     ap.EndTime,
				"notes":        ap.Notes,
				"total_amount": ap.TotalAmount,
			}).Error; err != nil {
			return err
		}

		if err := tx.Where("appointment_id = ?", ap.ID).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(domain.CodeSlotConflict)
	}
	return err
}

// --------------------------------------------------
// State changes
// --------------------------------------------------

func (r *AppointmentGormRepository) SaveStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status":                 ap.Status,
			"cancelled_at":           ap.CancelledAt,
			"completed_at":           ap.CompletedAt,
			"settled_transaction_id": ap.SettledTransactionID,
		}).Error
}

func (r *AppointmentGormRepository) CompleteWithAward(
	ctx context.Context,
	ap *models.Appointment,
	award domain.Award,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"status":       ap.Status,
				"completed_at": ap.CompletedAt,
			}).Error; err != nil {
			return err
		}

		return applyClientAward(tx, ap.ClientID, award.Spend, award.Points)
	})
}

// --------------------------------------------------
// Hard delete
// --------------------------------------------------

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appointment_id = ?", id).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, id).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
