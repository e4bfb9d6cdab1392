package loader

// Row is one record keyed by header name.
type Row map[string]string

// Table is a finite, ordered row stream with its detected header.
type Table struct {
	Source string
	Header []string
	Rows   []Row
}

func (t *Table) Get(i int, column string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][column]
}

// HasColumn reports an exact header match.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

func rowsFromRecords(source string, records [][]string) Table {
	t := Table{Source: source}
	if len(records) == 0 {
		return t
	}
	t.Header = records[0]
	for _, rec := range records[1:] {
		row := make(Row, len(t.Header))
		for i, h := range t.Header {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
