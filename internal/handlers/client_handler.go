package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/httpresp"
	"github.com/salonops/salon-manager/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Notes     string `json:"notes"`
}

type UpdateClientRequest struct {
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty"`
	BirthDate        *string `json:"birth_date,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	PreferredStaffID *uint   `json:"preferred_staff_id,omitempty"`
}

type RecordClientPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	client := models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
		Tier:      "bronze",
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Could not create client.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.BirthDate != nil {
		client.BirthDate = *req.BirthDate
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.PreferredStaffID != nil {
		client.PreferredStaffID = req.PreferredStaffID
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not update client.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// Ledger returns the client's payment history.
func (h *ClientHandler) Ledger(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var entries []models.ClientPayment
	if err := h.db.
		Where("client_id = ?", id).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_client_payments", "Could not list payments.")
		return
	}

	httpresp.List(c, entries)
}

// RecordPayment settles part of a client's credit balance: a "payment"
// ledger entry plus an atomic balance decrement, in one transaction.
func (h *ClientHandler) RecordPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RecordClientPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		httperr.BadRequest(c, "invalid_amount", "Amount must be positive.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	entry := models.ClientPayment{
		ClientID:    client.ID,
		Type:        models.ClientPaymentPayment,
		Amount:      req.Amount,
		Description: req.Description,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.Client{}).
			Where("id = ?", client.ID).
			Update("credit_balance", gorm.Expr("credit_balance - ?", req.Amount)).
			Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_record_payment", "Could not record payment.")
		return
	}

	c.JSON(http.StatusCreated, entry)
}
