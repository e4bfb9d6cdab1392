package artifact

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/sirupsen/logrus"
)

// Writer persists run results under the configured output directory. Every
// write is write-then-rename, so a reader never observes a half-written
// artifact, and existing targets are backed up before being replaced.
type Writer struct {
	cfg    config.RunConfig
	logger *logrus.Logger
}

func NewWriter(cfg config.RunConfig) *Writer {
	return &Writer{cfg: cfg, logger: config.GetLogger()}
}

func (w *Writer) OutputDir() string {
	return w.cfg.OutputDir
}

// WriteCSV writes a UTF-8 CSV artifact atomically and returns its path.
func (w *Writer) WriteCSV(name string, header []string, rows [][]string) (string, error) {
	target := filepath.Join(w.cfg.OutputDir, name)
	if err := w.backupExisting(target); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(w.cfg.OutputDir, "."+name+".*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	cw := csv.NewWriter(tmp)
	if err := cw.Write(header); err != nil {
		tmp.Close()
		return "", err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			tmp.Close()
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", err
	}

	w.logger.WithFields(logrus.Fields{
		"module":   "artifact",
		"artifact": target,
		"rows":     len(rows),
	}).Info("artifact written")
	return target, nil
}

// WriteRawCSV is WriteCSV without a separate header row, for artifacts whose
// trailing summary blocks make the row set irregular.
func (w *Writer) WriteRawCSV(name string, records [][]string) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	return w.WriteCSV(name, records[0], records[1:])
}

// WriteValidationReport writes the companion issue listing for a run. An
// empty report writes nothing and returns "".
func (w *Writer) WriteValidationReport(name string, report *models.ValidationReport) (string, error) {
	if report == nil || !report.HasIssues() {
		return "", nil
	}
	header := []string{"Kind", "Source", "Row", "Column", "Value", "Message"}
	rows := make([][]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		rows = append(rows, []string{
			string(issue.Kind),
			issue.Source,
			strconv.Itoa(issue.Row),
			issue.Column,
			issue.Value,
			issue.Message,
		})
	}
	return w.WriteCSV(name, header, rows)
}
