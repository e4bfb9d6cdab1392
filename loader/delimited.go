package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"github.com/bighouseburgers/ops_backend/models"
	"golang.org/x/text/encoding/charmap"
)

// fallbackEncodings is tried in order when the caller does not declare one.
var fallbackEncodings = []string{"UTF-8", "Latin-1", "Windows-1252"}

// LoadDelimited reads a CSV export whose first row is the header.
// declaredEncoding may be empty, in which case UTF-8, Latin-1 and
// Windows-1252 are tried in order; the first that decodes the whole file
// wins.
func LoadDelimited(path string, declaredEncoding string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Table{}, &models.SourceNotFoundError{Path: path}
		}
		return Table{}, err
	}

	encodings := fallbackEncodings
	if declaredEncoding != "" {
		encodings = []string{declaredEncoding}
	}

	var attempted []string
	for _, enc := range encodings {
		attempted = append(attempted, enc)
		text, ok := decodeAs(raw, enc)
		if !ok {
			continue
		}
		records, err := readAllCSV(text)
		if err != nil {
			continue
		}
		return rowsFromRecords(path, records), nil
	}
	return Table{}, &models.EncodingFailureError{Path: path, Attempted: attempted}
}

func decodeAs(raw []byte, encoding string) (string, bool) {
	switch encoding {
	case "UTF-8":
		if !utf8.Valid(raw) {
			return "", false
		}
		return string(raw), true
	case "Latin-1":
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(out), true
	case "Windows-1252":
		out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(out), true
	default:
		return "", false
	}
}

func readAllCSV(text string) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader([]byte(text)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
