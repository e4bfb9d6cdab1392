package models

import (
	"fmt"
	"time"
)

// Structural errors fail a run early. Value-level issues never become
// errors; they accumulate in a ValidationReport instead.

type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source not found: %s", e.Path)
}

type EncodingFailureError struct {
	Path      string
	Attempted []string
}

func (e *EncodingFailureError) Error() string {
	return fmt.Sprintf("unable to decode %s, attempted encodings: %v", e.Path, e.Attempted)
}

type HeaderNotFoundError struct {
	Path         string
	RowsExamined int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("no header row found in %s within the first %d rows", e.Path, e.RowsExamined)
}

type UnknownProductError struct {
	ItemNumber string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product: %s", e.ItemNumber)
}

type MissingSnapshotError struct {
	Location string
	Begin    time.Time
	End      time.Time
	Bound    string // "begin" or "end"
}

func (e *MissingSnapshotError) Error() string {
	return fmt.Sprintf("no inventory snapshot at or before the %s bound for %s (%s to %s)",
		e.Bound, e.Location, e.Begin.Format("2006-01-02"), e.End.Format("2006-01-02"))
}

type OverwriteBlockedError struct {
	Target     string
	BackupPath string
	Err        error
}

func (e *OverwriteBlockedError) Error() string {
	return fmt.Sprintf("refusing to overwrite %s: backup to %s failed: %v", e.Target, e.BackupPath, e.Err)
}

func (e *OverwriteBlockedError) Unwrap() error {
	return e.Err
}
