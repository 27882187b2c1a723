package reviews

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Review is a post-publish performance record, one per published script by
// convention.
type Review struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID  string `gorm:"not null;index" json:"-"`
	ScriptID string `gorm:"type:uuid;not null;index" json:"script_id"`

	Views               float64         `gorm:"not null;default:0" json:"views"`
	RetentionPercentage float64         `gorm:"not null;default:0" json:"retention_percentage"`
	Revenue             decimal.Decimal `gorm:"type:numeric" json:"revenue"`

	WhatWorked         string `json:"what_worked"`
	WhatDidntWork      string `json:"what_didnt_work"`
	ChangesForNextTime string `json:"changes_for_next_time"`

	// Computed at submission time against the owner's historical averages.
	IsAboveAverage bool `gorm:"not null;default:false" json:"is_above_average"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
