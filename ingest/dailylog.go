package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/utils"
)

// DailyLogEntries converts one shift-close export into entries. The area
// column is a closed set; an unknown area rejects the whole ingestion
// rather than passing a malformed entry downstream.
func DailyLogEntries(t loader.Table, location string, businessDate time.Time, shift models.Shift, report *models.ValidationReport) ([]models.DailyLogEntry, error) {
	var entries []models.DailyLogEntry
	for i := range t.Rows {
		name := strings.TrimSpace(t.Get(i, "Name"))
		if name == "" {
			continue
		}
		entry := models.DailyLogEntry{
			Location:     location,
			BusinessDate: businessDate,
			Shift:        shift,
			EmployeeName: name,
			Area:         models.Area(strings.TrimSpace(t.Get(i, "Area"))),
			Cash:         t.DecimalCell(i, "Cash", report),
			CreditTotal:  t.DecimalCell(i, "Credit Total", report),
			CCReceived:   t.DecimalCell(i, "CC Received", report),
			Voids:        t.DecimalCell(i, "Voids", report),
			Beer:         t.DecimalCell(i, "Beer", report),
			Liquor:       t.DecimalCell(i, "Liquor", report),
			Wine:         t.DecimalCell(i, "Wine", report),
			Food:         t.DecimalCell(i, "Food", report),
		}
		if err := utils.ValidateStruct(&entry); err != nil {
			return nil, fmt.Errorf("row %d (%s): %v", i+1, name, utils.ProcessValidationErrors(err))
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, utils.ErrorEmptyTable
	}
	return entries, nil
}
