package webhook

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/models"
)

// ReminderJob posts next-day appointment reminders to the automation
// endpoint every evening and logs a low-stock digest.
type ReminderJob struct {
	db       *gorm.DB
	notifier *Notifier
	cron     *cron.Cron
}

func NewReminderJob(db *gorm.DB, notifier *Notifier) *ReminderJob {
	return &ReminderJob{
		db:       db,
		notifier: notifier,
		cron:     cron.New(),
	}
}

func (j *ReminderJob) Start() {
	j.cron.AddFunc("0 18 * * *", j.run)
	j.cron.Start()
}

func (j *ReminderJob) Stop() {
	j.cron.Stop()
}

func (j *ReminderJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var aps []models.Appointment
	if err := j.db.WithContext(ctx).
		Preload("Client").
		Preload("Services").
		Where("date = ? AND status = ?", tomorrow, "confirmed").
		Find(&aps).Error; err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}

	for _, ap := range aps {
		j.notifier.NotifyBooking(BookingNotification{
			Phone: ap.Client.Phone,
			Name:  ap.Client.FirstName + " " + ap.Client.LastName,
			Date:  ap.Date,
			Time:  ap.StartTime,
		})
	}

	var lowStock int64
	j.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = true AND stock <= min_stock").
		Count(&lowStock)
	if lowStock > 0 {
		log.Printf("low stock: %d product(s) at or below reorder threshold", lowStock)
	}
}
