package settings

import (
	"errors"
	"net/http"
	"time"

	"scriptpilot/database"
	domain "scriptpilot/internal/domain/settings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func mustOwnerID(c *gin.Context) (string, bool) {
	ownerID := c.GetString("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return ownerID, true
}

func defaultSettings(ownerID string) domain.UserSettings {
	return domain.UserSettings{
		OwnerID:               ownerID,
		DefaultWordsPerMinute: 150,
		MaxConcurrentDrafts:   5,
	}
}

// ------------------------------
// GET /settings
// ------------------------------
// Owners without a stored row get the defaults back; the row is only
// materialized on first write.
func GetSettings(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var settings domain.UserSettings
	err := database.DB.Where("owner_id = ?", ownerID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, defaultSettings(ownerID))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ------------------------------
// PUT /settings
// ------------------------------
func UpdateSettings(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := defaultSettings(ownerID)
	assignments := map[string]interface{}{"updated_at": time.Now()}
	if req.DefaultWordsPerMinute != nil {
		settings.DefaultWordsPerMinute = *req.DefaultWordsPerMinute
		assignments["default_words_per_minute"] = *req.DefaultWordsPerMinute
	}
	if req.MaxConcurrentDrafts != nil {
		settings.MaxConcurrentDrafts = *req.MaxConcurrentDrafts
		assignments["max_concurrent_drafts"] = *req.MaxConcurrentDrafts
	}
	if req.RequireScheduleBeforeDraft != nil {
		settings.RequireScheduleBeforeDraft = *req.RequireScheduleBeforeDraft
		assignments["require_schedule_before_draft"] = *req.RequireScheduleBeforeDraft
	}
	if req.ChannelBaselineViews != nil {
		settings.ChannelBaselineViews = *req.ChannelBaselineViews
		assignments["channel_baseline_views"] = *req.ChannelBaselineViews
	}
	if req.ChannelBaselineRetention != nil {
		settings.ChannelBaselineRetention = *req.ChannelBaselineRetention
		assignments["channel_baseline_retention"] = *req.ChannelBaselineRetention
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&settings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	var out domain.UserSettings
	if err := database.DB.Where("owner_id = ?", ownerID).First(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, out)
}
