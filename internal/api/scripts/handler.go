package scripts

import (
	"net/http"
	"time"

	"scriptpilot/database"
	domain "scriptpilot/internal/domain/scripts"

	"github.com/gin-gonic/gin"
)

func mustOwnerID(c *gin.Context) (string, bool) {
	ownerID := c.GetString("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return ownerID, true
}

// ------------------------------
// GET /scripts
// ------------------------------
func ListScripts(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var out []domain.Script
	if err := ownerScriptsQuery(database.DB, ownerID).Order("last_edited DESC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scripts"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetScript(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
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
	c.JSON(http.StatusOK, script)
}

// ------------------------------
// POST /scripts
// ------------------------------
func CreateScript(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req CreateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	script := NewScriptFromRequest(ownerID, req)
	if err := database.DB.Create(script).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create script"})
		return
	}
	c.JSON(http.StatusCreated, script)
}

// NewScriptFromRequest builds a Script owned by ownerID. Stage defaults to
// idea, words-per-minute to 150, per constructor input otherwise.
func NewScriptFromRequest(ownerID string, req CreateScriptRequest) *domain.Script {
	stage := domain.Stage(req.Stage)
	if req.Stage == "" {
		stage = domain.StageIdea
	}
	wpm := req.WordsPerMinute
	if wpm == 0 {
		wpm = 150
	}
	return &domain.Script{
		OwnerID:             ownerID,
		Title:               req.Title,
		Stage:               stage,
		Topic:               req.Topic,
		Format:              req.Format,
		HookType:            req.HookType,
		TargetLengthMinutes: req.TargetLengthMinutes,
		WordsPerMinute:      wpm,
		HookContent:         req.HookContent,
		OutlineContent:      req.OutlineContent,
		ScriptContent:       req.ScriptContent,
		NotesContent:        req.NotesContent,
		ScheduledDate:       req.ScheduledDate,
		LastEdited:          time.Now(),
	}
}

// ------------------------------
// PUT /scripts/:id
// ------------------------------
func UpdateScript(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req UpdateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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

	updates := updatesFromRequest(req)
	if len(updates) == 0 {
		c.JSON(http.StatusOK, script)
		return
	}
	updates["last_edited"] = time.Now()

	if err := database.DB.Model(&domain.Script{}).
		Where("id = ? AND owner_id = ?", script.ID, ownerID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update script"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func updatesFromRequest(req UpdateScriptRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
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
	if req.TargetLengthMinutes != nil {
		updates["target_length_minutes"] = *req.TargetLengthMinutes
	}
	if req.WordsPerMinute != nil {
		updates["words_per_minute"] = *req.WordsPerMinute
	}
	if req.HookContent != nil {
		updates["hook_content"] = *req.HookContent
	}
	if req.OutlineContent != nil {
		updates["outline_content"] = *req.OutlineContent
	}
	if req.NotesContent != nil {
		updates["notes_content"] = *req.NotesContent
	}
	if req.ScriptContent != nil {
		updates["script_content"] = *req.ScriptContent
	}
	if req.ChecklistIntro != nil {
		updates["checklist_intro"] = *req.ChecklistIntro
	}
	if req.ChecklistBody != nil {
		updates["checklist_body"] = *req.ChecklistBody
	}
	if req.ChecklistCTA != nil {
		updates["checklist_cta"] = *req.ChecklistCTA
	}
	if req.ScheduledDate != nil {
		updates["scheduled_date"] = *req.ScheduledDate
	}
	return updates
}

// ------------------------------
// DELETE /scripts/:id
// ------------------------------
func DeleteScript(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND owner_id = ?", c.Param("id"), ownerID).Delete(&domain.Script{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete script"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Script not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /scripts/:id/attachments
// ------------------------------
func AddAttachment(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req AttachmentRequest
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

	script.Attachments = append(script.Attachments, domain.Attachment{
		Name:     req.Name,
		URL:      req.URL,
		Category: req.Category,
	})
	script.LastEdited = time.Now()
	if err := database.DB.Save(script).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attachment"})
		return
	}
	c.JSON(http.StatusOK, script.Attachments)
}

// ------------------------------
// POST /scripts/:id/versions
// ------------------------------
func SnapshotVersion(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req SnapshotRequest
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

	v := script.Snapshot(req.Label)
	if err := database.DB.Save(script).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save version"})
		return
	}
	c.JSON(http.StatusCreated, v)
}

// ------------------------------
// POST /scripts/:id/versions/restore
// ------------------------------
func RestoreVersion(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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

	if req.Index < 0 || req.Index >= len(script.Versions) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown version"})
		return
	}

	script.Restore(script.Versions[req.Index])
	if err := database.DB.Model(script).
		Updates(map[string]interface{}{
			"hook_content":    script.HookContent,
			"outline_content": script.OutlineContent,
			"script_content":  script.ScriptContent,
			"notes_content":   script.NotesContent,
			"last_edited":     time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore version"})
		return
	}
	c.JSON(http.StatusOK, script)
}
