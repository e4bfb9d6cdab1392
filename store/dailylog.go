package store

import (
	"context"
	"time"

	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/utils"
	"gorm.io/gorm"
)

// SaveDailyLog replaces the entries for each (location, date, shift) present
// in the batch. Entries with an unknown area or negative money fail
// validation before anything is written.
func SaveDailyLog(ctx context.Context, entries []models.DailyLogEntry) error {
	for i := range entries {
		if err := utils.ValidateStruct(&entries[i]); err != nil {
			return err
		}
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		type key struct {
			location string
			date     time.Time
			shift    models.Shift
		}
		seen := map[key]struct{}{}
		for _, e := range entries {
			k := key{e.Location, e.BusinessDate, e.Shift}
			if _, done := seen[k]; done {
				continue
			}
			seen[k] = struct{}{}
			if err := tx.Where("location = ? AND business_date = ? AND shift = ?",
				e.Location, e.BusinessDate, e.Shift).
				Delete(&models.DailyLogEntry{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		config.LogError(config.GetLogger(), "store", "SaveDailyLog", "replace-save failed", len(entries), err)
	}
	return err
}

// DailyLogRange returns the entries for a closed date interval, ordered for
// the report artifact.
func DailyLogRange(ctx context.Context, location string, from, to time.Time) ([]models.DailyLogEntry, error) {
	db := config.GetDB()
	var entries []models.DailyLogEntry
	err := db.WithContext(ctx).
		Where("location = ? AND business_date >= ? AND business_date <= ?", location, from, to).
		Order("business_date, shift, employee_name").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, utils.ErrorRecordNotFound
	}
	return entries, nil
}
