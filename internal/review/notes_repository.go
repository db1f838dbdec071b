package review

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/Robindeep5394188/Material-Review/internal/repository"
)

// NotesRepository stores the planners' free-text notes per PO line. The
// pipeline only reads notes; writes come from the review screen.
type NotesRepository struct {
	repository *repository.Repository
}

func NewNotesRepository(r *repository.Repository) *NotesRepository {
	return &NotesRepository{repository: r}
}

// All returns every note keyed by PO line.
func (r *NotesRepository) All() (map[string]string, error) {
	query := r.repository.GoquDBWrapper.
		From("planner_notes").
		Select(goqu.I("po_line"), goqu.I("note"))

	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query planner notes: %w", err)
	}
	defer rows.Close()

	notes := make(map[string]string)
	for rows.Next() {
		var poLine, note string
		if err := rows.Scan(&poLine, &note); err != nil {
			return nil, fmt.Errorf("failed to scan planner note: %w", err)
		}
		notes[poLine] = note
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read planner notes: %w", err)
	}
	return notes, nil
}

// Get returns the note for one PO line, empty when none exists.
func (r *NotesRepository) Get(poLine string) (string, error) {
	var note string
	query := r.repository.GoquDBWrapper.
		From("planner_notes").
		Select(goqu.I("note")).
		Where(goqu.Ex{"po_line": poLine})

	if _, err := query.Executor().ScanVal(&note); err != nil {
		return "", fmt.Errorf("failed to query planner note: %w", err)
	}
	return note, nil
}

// Set upserts the note for one PO line; an empty note deletes the row.
func (r *NotesRepository) Set(poLine, note string) error {
	if note == "" {
		query := r.repository.GoquDBWrapper.Delete("planner_notes").Where(goqu.Ex{"po_line": poLine})
		if _, err := query.Executor().Exec(); err != nil {
			return fmt.Errorf("failed to delete planner note: %w", err)
		}
		return nil
	}

	query := r.repository.GoquDBWrapper.Insert("planner_notes").
		Rows(goqu.Record{"po_line": poLine, "note": note}).
		OnConflict(goqu.DoUpdate("po_line", goqu.Record{"note": note}))

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to upsert planner note: %w", err)
	}
	return nil
}
