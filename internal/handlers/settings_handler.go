package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/httpresp"
	"github.com/salonops/salon-manager/internal/models"
)

// SettingsHandler manages free-form key/value preferences: salon name,
// currency, receipt footer and the like. Structured configuration such as
// working hours has its own endpoints.
type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type UpsertSettingRequest struct {
	Value string `json:"value"`
}

func (h *SettingsHandler) List(c *gin.Context) {
	var settings []models.AppSetting
	if err := h.db.Order("key ASC").Find(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_settings", "Could not list settings.")
		return
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	httpresp.OK(c, out)
}

func (h *SettingsHandler) Upsert(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		httperr.BadRequest(c, "missing_key", "Setting key is required.")
		return
	}

	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	res := h.db.Model(&models.AppSetting{}).
		Where("key = ?", key).
		Update("value", req.Value)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_save_setting", "Could not save setting.")
		return
	}
	if res.RowsAffected == 0 {
		if err := h.db.Create(&models.AppSetting{Key: key, Value: req.Value}).Error; err != nil {
			httperr.Internal(c, "failed_to_save_setting", "Could not save setting.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}
