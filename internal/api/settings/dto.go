package settings

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type UpdateSettingsRequest struct {
	DefaultWordsPerMinute      *float64 `json:"default_words_per_minute"`
	MaxConcurrentDrafts        *int     `json:"max_concurrent_drafts"`
	RequireScheduleBeforeDraft *bool    `json:"require_schedule_before_draft"`
	ChannelBaselineViews       *float64 `json:"channel_baseline_views"`
	ChannelBaselineRetention   *float64 `json:"channel_baseline_retention"`
}

func (r UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DefaultWordsPerMinute, validation.Min(1.0)),
		validation.Field(&r.MaxConcurrentDrafts, validation.Min(1)),
		validation.Field(&r.ChannelBaselineViews, validation.Min(0.0)),
		validation.Field(&r.ChannelBaselineRetention, validation.Min(0.0), validation.Max(100.0)),
	)
}
