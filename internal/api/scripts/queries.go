package scripts

import (
	"errors"

	domain "scriptpilot/internal/domain/scripts"

	"gorm.io/gorm"
)

func ownerScriptsQuery(db *gorm.DB, ownerID string) *gorm.DB {
	return db.Model(&domain.Script{}).Where("owner_id = ?", ownerID)
}

// findScript loads one script scoped to its owner. The ok flag distinguishes
// not-found from a store failure.
func findScript(db *gorm.DB, ownerID, scriptID string) (*domain.Script, bool, error) {
	var script domain.Script
	err := db.Where("id = ? AND owner_id = ?", scriptID, ownerID).First(&script).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &script, true, nil
}
