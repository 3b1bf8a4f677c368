package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/cache"
	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/httpresp"
	"github.com/salonops/salon-manager/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	cache *cache.ScheduleCache
}

func NewWorkingHoursHandler(db *gorm.DB, sc *cache.ScheduleCache) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, cache: sc}
}

type WeekdayHoursRequest struct {
	Weekday int    `json:"weekday"`
	Open    string `json:"open"`
	Close   string `json:"close"`
	IsOpen  bool   `json:"is_open"`
}

type ReplaceWeekRequest struct {
	Days []WeekdayHoursRequest `json:"days" binding:"required"`
}

// Get returns the seven weekday rows, Sunday first.
func (h *WorkingHoursHandler) Get(c *gin.Context) {
	var rows []models.WorkingHours
	if err := h.db.Order("weekday ASC").Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_load_hours", "Could not load working hours.")
		return
	}

	httpresp.List(c, rows)
}

// Replace rewrites the whole week in one transaction and drops the cached
// snapshot so the next availability request re-reads the table.
func (h *WorkingHoursHandler) Replace(c *gin.Context) {
	var req ReplaceWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if len(req.Days) != 7 {
		httperr.BadRequest(c, "invalid_week", "Exactly seven weekday rows are required.")
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		if d.Weekday < 0 || d.Weekday > 6 || seen[d.Weekday] {
			httperr.BadRequest(c, "invalid_week", "Weekdays must be 0..6, each exactly once.")
			return
		}
		seen[d.Weekday] = true

		if !d.IsOpen {
			continue
		}
		open, err := domain.MinutesOf(d.Open)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}
		closeAt, err := domain.MinutesOf(d.Close)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}
		if open >= closeAt {
			httperr.BadRequest(c, "invalid_hours", "Opening must be before closing.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, d := range req.Days {
			row := models.WorkingHours{
				Weekday: d.Weekday,
				Open:    d.Open,
				Close:   d.Close,
				IsOpen:  d.IsOpen,
			}
			res := tx.Model(&models.WorkingHours{}).
				Where("weekday = ?", d.Weekday).
				Updates(map[string]interface{}{
					"open":    d.Open,
					"close":   d.Close,
					"is_open": d.IsOpen,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_hours", "Could not save working hours.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	var rows []models.WorkingHours
	if err := h.db.Order("weekday ASC").Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_load_hours", "Could not reload working hours.")
		return
	}

	httpresp.List(c, rows)
}
