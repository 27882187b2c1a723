package ideas

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusCaptured  = "captured"
	StatusValidated = "validated"
	StatusPromoted  = "promoted"
	StatusArchived  = "archived"
)

type Idea struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"not null;index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`

	Topic    string `json:"topic,omitempty"`
	Format   string `json:"format,omitempty"`
	HookType string `json:"hook_type,omitempty"`
	Priority string `json:"priority,omitempty"`

	Status string `gorm:"type:text;not null;default:'captured'" json:"status"`

	PromotedToScriptID *string `gorm:"type:uuid" json:"promoted_to_script_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Idea) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
