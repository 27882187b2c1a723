package reviews

import (
	"errors"
	"time"

	domain "scriptpilot/internal/domain/reviews"
	scriptsdomain "scriptpilot/internal/domain/scripts"
	settingsdomain "scriptpilot/internal/domain/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errScriptNotFound = errors.New("script not found")

type ownerAverages struct {
	Count        int64
	AvgViews     float64
	AvgRetention float64
}

// submitReview records a performance review and applies its side effects in
// one transaction: the reviewed script is stamped as published, the owner's
// pending-review flag is cleared and the new datapoint is folded into the
// channel baselines.
func submitReview(db *gorm.DB, ownerID string, req SubmitReviewRequest) (*domain.Review, error) {
	var script scriptsdomain.Script
	err := db.Where("id = ? AND owner_id = ?", req.ScriptID, ownerID).First(&script).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errScriptNotFound
	}
	if err != nil {
		return nil, err
	}

	// Averages over reviews that exist before this submission. The first
	// review on a channel is above average by convention.
	var avg ownerAverages
	err = db.Model(&domain.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(views), 0) AS avg_views, COALESCE(AVG(retention_percentage), 0) AS avg_retention").
		Where("owner_id = ?", ownerID).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		OwnerID:             ownerID,
		ScriptID:            script.ID,
		Views:               req.Views,
		RetentionPercentage: req.RetentionPercentage,
		Revenue:             req.Revenue,
		WhatWorked:          req.WhatWorked,
		WhatDidntWork:       req.WhatDidntWork,
		ChangesForNextTime:  req.ChangesForNextTime,
		IsAboveAverage:      avg.Count == 0 || req.Views > avg.AvgViews || req.RetentionPercentage > avg.AvgRetention,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		now := time.Now()
		err := tx.Model(&scriptsdomain.Script{}).
			Where("id = ? AND owner_id = ?", script.ID, ownerID).
			Updates(map[string]interface{}{
				"stage":          scriptsdomain.StagePublished,
				"published_date": now,
				"last_edited":    now,
			}).Error
		if err != nil {
			return err
		}

		n := float64(avg.Count)
		settings := settingsdomain.UserSettings{
			OwnerID:                  ownerID,
			DefaultWordsPerMinute:    150,
			MaxConcurrentDrafts:      5,
			ChannelBaselineViews:     (avg.AvgViews*n + req.Views) / (n + 1),
			ChannelBaselineRetention: (avg.AvgRetention*n + req.RetentionPercentage) / (n + 1),
			HasPendingReview:         false,
			PendingReviewScriptID:    nil,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"channel_baseline_views":     settings.ChannelBaselineViews,
				"channel_baseline_retention": settings.ChannelBaselineRetention,
				"has_pending_review":         false,
				"pending_review_script_id":   nil,
				"updated_at":                 now,
			}),
		}).Create(&settings).Error
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}
