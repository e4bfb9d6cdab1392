package store

import (
	"context"
	"time"

	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/utils"
	"gorm.io/gorm"
)

// SaveSnapshot replaces the snapshot row-set for (location, asOfDate).
func SaveSnapshot(ctx context.Context, location string, asOfDate time.Time, rows []models.InventorySnapshot) error {
	for i := range rows {
		rows[i].Location = location
		rows[i].AsOfDate = asOfDate
		if err := utils.ValidateStruct(&rows[i]); err != nil {
			return err
		}
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("location = ? AND as_of_date = ?", location, asOfDate).
			Delete(&models.InventorySnapshot{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		config.LogError(config.GetLogger(), "store", "SaveSnapshot", "replace-save failed", len(rows), err)
	}
	return err
}

// SnapshotsThrough loads every snapshot row for the location dated at or
// before the bound, newest last. The reconciler picks its boundary sets from
// this superset.
func SnapshotsThrough(ctx context.Context, location string, through time.Time) ([]models.InventorySnapshot, error) {
	db := config.GetDB()
	var rows []models.InventorySnapshot
	err := db.WithContext(ctx).
		Where("location = ? AND as_of_date <= ?", location, through).
		Order("as_of_date, item_number").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
