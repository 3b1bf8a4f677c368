package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonops/salon-manager/internal/httperr"
	ucappointment "github.com/salonops/salon-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucappointment.Create
	reschedule   *ucappointment.Reschedule
	complete     *ucappointment.Complete
	updateStatus *ucappointment.UpdateStatus
	remove       *ucappointment.Delete
	list         *ucappointment.List
	availability *ucappointment.GetAvailability
}

func NewAppointmentHandler(
	create *ucappointment.Create,
	reschedule *ucappointment.Reschedule,
	complete *ucappointment.Complete,
	updateStatus *ucappointment.UpdateStatus,
	remove *ucappointment.Delete,
	list *ucappointment.List,
	availability *ucappointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		reschedule:   reschedule,
		complete:     complete,
		updateStatus: updateStatus,
		remove:       remove,
		list:         list,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID   uint   `json:"client_id" binding:"required"`
	StaffID    *uint  `json:"staff_id"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	Notes      string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	StaffID    *uint  `json:"staff_id"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	Notes      string `json:"notes"`
}

// writeBusinessError maps domain error codes onto HTTP responses so every
// validation failure reaches the caller with a stable code.
func writeBusinessError(c *gin.Context, err error, fallbackCode string) {
	if code := httperr.BusinessCode(err); code != "" {
		switch code {
		case "slot_conflict":
			httperr.Conflict(c, code, "The requested slot is already booked.")
		case "insufficient_stock":
			httperr.Conflict(c, code, "Not enough stock to complete the sale.")
		case "appointment_not_found", "client_not_found", "staff_not_found",
			"service_not_found", "supplier_not_found", "product_not_found":
			httperr.NotFound(c, code, "Not found.")
		default:
			httperr.BadRequest(c, code, "Request rejected.")
		}
		return
	}
	httperr.Internal(c, fallbackCode, "An unexpected error occurred.")
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateInput{
		ClientID:   req.ClientID,
		StaffID:    req.StaffID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Notes:      req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_appointment")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	aps, err := h.list.ByDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	c.JSON(http.StatusOK, aps)
}

func (h *AppointmentHandler) ListByRange(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		httperr.BadRequest(c, "missing_range", "From and to dates are required.")
		return
	}

	aps, err := h.list.ByRange(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	c.JSON(http.StatusOK, aps)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Query("staff_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if err != nil || duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Invalid duration.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucappointment.AvailabilityInput{
		StaffID:     uint(staffID),
		Date:        date,
		DurationMin: duration,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_get_availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// ======================================================
// RESCHEDULE / STATUS / DELETE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucappointment.RescheduleInput{
		AppointmentID: id,
		StaffID:       req.StaffID,
		ServiceIDs:    req.ServiceIDs,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_reschedule_appointment")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.updateStatus.Cancel(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err, "failed_to_cancel_appointment")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) MarkNoShow(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.updateStatus.MarkNoShow(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err, "failed_to_mark_no_show")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.updateStatus.Start(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err, "failed_to_start_appointment")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err, "failed_to_complete_appointment")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		writeBusinessError(c, err, "failed_to_delete_appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// paramID parses the :id path parameter.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
