package settings

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSettings is a per-owner configuration singleton. Rolling channel
// baselines are folded in incrementally on each review submission.
type UserSettings struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"not null;uniqueIndex:idx_user_settings_owner_id" json:"-"`

	DefaultWordsPerMinute      float64 `gorm:"not null;default:150" json:"default_words_per_minute"`
	MaxConcurrentDrafts        int     `gorm:"not null;default:5" json:"max_concurrent_drafts"`
	RequireScheduleBeforeDraft bool    `gorm:"not null;default:false" json:"require_schedule_before_draft"`

	ChannelBaselineViews     float64 `gorm:"not null;default:0" json:"channel_baseline_views"`
	ChannelBaselineRetention float64 `gorm:"not null;default:0" json:"channel_baseline_retention"`

	HasPendingReview      bool    `gorm:"not null;default:false" json:"has_pending_review"`
	PendingReviewScriptID *string `gorm:"type:uuid" json:"pending_review_script_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
