package models

import "time"

// ChangeRecord is one tracked-field difference between two successive runs.
// The history these are appended to is never rewritten, only cleared.
type ChangeRecord struct {
	ID          int       `json:"id" db:"id"`
	RunTS       time.Time `json:"run_ts" db:"run_ts"`
	POLine      string    `json:"po_line" db:"po_line"`
	Field       string    `json:"field" db:"field"`
	Old         string    `json:"old" db:"old_value"`
	New         string    `json:"new" db:"new_value"`
	Description string    `json:"description" db:"description"`
}
