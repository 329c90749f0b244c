package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/globalreach-edu/consultancy-api/internal/httperr"
	"github.com/globalreach-edu/consultancy-api/internal/httpresp"
	"github.com/globalreach-edu/consultancy-api/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// Get returns all settings as a flat key/value map for the public site.
func (h *SettingsHandler) Get(c *gin.Context) {
	var settings []models.Setting
	if err := h.db.Find(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_settings", "Error fetching settings.")
		return
	}

	kv := make(map[string]string, len(settings))
	for _, s := range settings {
		kv[s.Key] = s.Value
	}

	httpresp.OK(c, kv)
}

// Update upserts the supplied keys, leaving all others untouched.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil || len(req) == 0 {
		httperr.BadRequest(c, "invalid_request", "Invalid settings payload.")
		return
	}

	for key, value := range req {
		setting := models.Setting{Key: key, Value: value}
		if err := h.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&setting).Error; err != nil {
			httperr.Internal(c, "failed_to_update_settings", "Error updating settings.")
			return
		}
	}

	httpresp.Message(c, "Settings updated successfully.")
}
