package ideas

import (
	"errors"
	"net/http"
	"time"

	"scriptpilot/database"
	domain "scriptpilot/internal/domain/ideas"
	scriptsdomain "scriptpilot/internal/domain/scripts"

	scriptsapi "scriptpilot/internal/api/scripts"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustOwnerID(c *gin.Context) (string, bool) {
	ownerID := c.GetString("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return ownerID, true
}

func findIdea(db *gorm.DB, ownerID, ideaID string) (*domain.Idea, bool, error) {
	var idea domain.Idea
	err := db.Where("id = ? AND owner_id = ?", ideaID, ownerID).First(&idea).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &idea, true, nil
}

// ------------------------------
// GET /ideas
// ------------------------------
func ListIdeas(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var out []domain.Idea
	if err := database.DB.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ideas"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetIdea(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	idea, found, err := findIdea(database.DB, ownerID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}
	c.JSON(http.StatusOK, idea)
}

// ------------------------------
// POST /ideas
// ------------------------------
func CreateIdea(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea := domain.Idea{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Topic:       req.Topic,
		Format:      req.Format,
		HookType:    req.HookType,
		Priority:    req.Priority,
		Status:      domain.StatusCaptured,
	}
	if err := database.DB.Create(&idea).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create idea"})
		return
	}
	c.JSON(http.StatusCreated, idea)
}

// ------------------------------
// PUT /ideas/:id
// ------------------------------
func UpdateIdea(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea, found, err := findIdea(database.DB, ownerID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Topic != nil {
		updates["topic"] = *req.Topic
	}
	if req.Format != nil {
		updates["format"] = *req.Format
	}
	if req.HookType != nil {
		updates["hook_type"] = *req.HookType
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, idea)
		return
	}
	updates["updated_at"] = time.Now()

	if err := database.DB.Model(&domain.Idea{}).
		Where("id = ? AND owner_id = ?", idea.ID, ownerID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update idea"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /ideas/:id
// ------------------------------
func DeleteIdea(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND owner_id = ?", c.Param("id"), ownerID).Delete(&domain.Idea{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete idea"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /ideas/:id/promote
// ------------------------------
// PromoteIdea creates a script from the idea and marks the idea promoted,
// linking it to its script. One transaction: either both land or neither.
func PromoteIdea(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req scriptsapi.CreateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea, found, err := findIdea(database.DB, ownerID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	var script *scriptsdomain.Script
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		script = scriptsapi.NewScriptFromRequest(ownerID, req)
		script.IdeaID = &idea.ID
		if err := tx.Create(script).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Idea{}).
			Where("id = ? AND owner_id = ?", idea.ID, ownerID).
			Updates(map[string]interface{}{
				"status":                domain.StatusPromoted,
				"promoted_to_script_id": script.ID,
				"updated_at":            time.Now(),
			}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote idea"})
		return
	}

	c.JSON(http.StatusCreated, script)
}
