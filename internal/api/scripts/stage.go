package scripts

import (
	"net/http"
	"time"

	"scriptpilot/database"
	"scriptpilot/internal/domain/pipeline"
	domain "scriptpilot/internal/domain/scripts"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// PUT /scripts/:id/stage
// ------------------------------
// Readiness rejection is a user-facing condition, not a fault: the 422 body
// carries every remediation issue at once plus the script id.
func UpdateScriptStage(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req StageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	script, found, err := findScript(database.DB, ownerID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load script"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Script not found"})
		return
	}

	target := domain.Stage(req.Stage)
	decision := pipeline.Decide(script, target)

	switch decision.Outcome {
	case pipeline.NoOp:
		c.JSON(http.StatusOK, gin.H{"status": "unchanged", "stage": script.Stage})

	case pipeline.Blocked:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     "Cannot move to Ready",
			"issues":    decision.Issues,
			"script_id": script.ID,
		})

	case pipeline.Proceed:
		if err := applyTransition(database.DB, ownerID, script.ID, target); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stage"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "stage": target})
	}
}

// applyTransition persists the stage move: exactly one write, with
// last_edited refreshed.
func applyTransition(db *gorm.DB, ownerID, scriptID string, target domain.Stage) error {
	return db.Model(&domain.Script{}).
		Where("id = ? AND owner_id = ?", scriptID, ownerID).
		Updates(map[string]interface{}{
			"stage":       target,
			"last_edited": time.Now(),
		}).Error
}
