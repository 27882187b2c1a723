package reviews

import (
	"errors"
	"net/http"

	"scriptpilot/database"
	domain "scriptpilot/internal/domain/reviews"

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

// ------------------------------
// GET /reviews
// ------------------------------
func ListReviews(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var out []domain.Review
	if err := database.DB.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /scripts/:id/review
// ------------------------------
func GetScriptReview(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var review domain.Review
	err := database.DB.Where("script_id = ? AND owner_id = ?", c.Param("id"), ownerID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
		return
	}
	c.JSON(http.StatusOK, review)
}

// ------------------------------
// POST /reviews
// ------------------------------
func SubmitReview(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := submitReview(database.DB, ownerID, req)
	if errors.Is(err, errScriptNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Script not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}
