package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
	ucappointment "github.com/salonops/salon-manager/internal/usecase/appointment"
	"github.com/salonops/salon-manager/internal/webhook"
)

// ======================================================
// PUBLIC BOOKING
//
// Unauthenticated self-service endpoints. Bookings go through the exact
// same use case as the back office, so the overlap rules cannot drift.
// ======================================================

type PublicHandler struct {
	db           *gorm.DB
	availability *ucappointment.GetAvailability
	create       *ucappointment.Create
	notifier     *webhook.Notifier
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucappointment.GetAvailability,
	create *ucappointment.Create,
	notifier *webhook.Notifier,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
		notifier:     notifier,
	}
}

type PublicBookingRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	StaffID    *uint  `json:"staff_id"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
}

// Services exposes the active catalog for the booking page.
func (h *PublicHandler) Services(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("is_active = ?", true).
		Order("category ASC, name_fr ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

// Staff exposes the active staff list for the booking page.
func (h *PublicHandler) Staff(c *gin.Context) {
	var staff []models.Staff
	if err := h.db.
		Select("id", "first_name", "last_name", "specialties").
		Where("is_active = ?", true).
		Order("first_name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// Availability returns free slot start times for a staff member and date.
func (h *PublicHandler) Availability(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Query("staff_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "staff_id must be a positive integer.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration_min", "30"))
	if err != nil || duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "duration_min must be positive.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucappointment.AvailabilityInput{
		StaffID:     uint(staffID),
		Date:        c.Query("date"),
		DurationMin: duration,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_compute_availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// Book finds-or-creates the client by phone and books through the shared
// use case, then fires the best-effort confirmation webhook.
func (h *PublicHandler) Book(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		httperr.BadRequest(c, "invalid_phone", "Phone is required.")
		return
	}

	var client models.Client
	err := h.db.Where("phone = ?", phone).First(&client).Error
	if err == gorm.ErrRecordNotFound {
		client = models.Client{
			FirstName: strings.TrimSpace(req.FirstName),
			Phone:     phone,
			Tier:      "bronze",
		}
		err = h.db.Create(&client).Error
	}
	if err != nil {
		httperr.Internal(c, "failed_to_resolve_client", "Could not resolve client.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateInput{
		ClientID:   client.ID,
		StaffID:    req.StaffID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Notes:      "online booking",
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_booking")
		return
	}

	serviceName := ""
	var svc models.Service
	if len(req.ServiceIDs) > 0 {
		if h.db.First(&svc, req.ServiceIDs[0]).Error == nil {
			serviceName = svc.NameFr
		}
	}

	h.notifier.NotifyBooking(webhook.BookingNotification{
		Phone:   phone,
		Name:    client.FirstName,
		Service: serviceName,
		Date:    ap.Date,
		Time:    ap.StartTime,
	})

	c.JSON(http.StatusCreated, gin.H{
		"appointment_id": ap.ID,
		"date":           ap.Date,
		"start_time":     ap.StartTime,
		"end_time":       ap.EndTime,
	})
}
