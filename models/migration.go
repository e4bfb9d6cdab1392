package models

import (
	"log"

	"github.com/bighouseburgers/ops_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&DailyLogEntry{},
		&InventorySnapshot{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
