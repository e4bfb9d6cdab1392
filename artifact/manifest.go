package artifact

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const manifestName = "process_complete.csv"

var manifestHeader = []string{"completed_at", "run_id", "row_count", "column_count", "artifacts"}

// AppendManifest records a completed run. The manifest accumulates across
// runs, one row each, so it is appended rather than replaced.
func (w *Writer) AppendManifest(rowCount, columnCount int, artifactPaths []string) error {
	path := filepath.Join(w.cfg.OutputDir, manifestName)

	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if writeHeader {
		if err := cw.Write(manifestHeader); err != nil {
			return err
		}
	}
	record := []string{
		time.Now().Format(time.RFC3339),
		uuid.NewString(),
		strconv.Itoa(rowCount),
		strconv.Itoa(columnCount),
		strings.Join(artifactPaths, ";"),
	}
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
