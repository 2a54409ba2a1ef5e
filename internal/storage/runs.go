package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

// ErrRunNotFound is returned when no run matches an ID.
var ErrRunNotFound = errors.New("storage: run not found")

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run represents a stored solver run.
type Run struct {
	RunID         string
	CreatedAt     time.Time
	ScrambleText  *string
	StartFacelets string
	EndFacelets   string
	Stage         string
	FinalPhase    string
	MoveCount     int
	Notes         *string
}

// NewRun holds the fields of a run about to be stored.
type NewRun struct {
	Scramble   string
	Start      *gocube.Cube
	End        *gocube.Cube
	Stage      string
	FinalPhase gocube.Phase
	Notes      string
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Save stores a run together with its moves in one transaction and returns
// the new run ID.
func (r *RunRepository) Save(run NewRun, moves []gocube.Move) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO runs (run_id, created_at, scramble_text, start_facelets, end_facelets, stage, final_phase, move_count, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(timeLayout), nullable(run.Scramble),
			run.Start.Facelets(), run.End.Facelets(), run.Stage,
			run.FinalPhase.String(), len(moves), nullable(run.Notes))
		if err != nil {
			return fmt.Errorf("failed to create run: %w", err)
		}

		return insertMoves(tx, id, moves)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves a run by ID. It returns ErrRunNotFound if there is none.
func (r *RunRepository) Get(runID string) (*Run, error) {
	row := r.db.QueryRow(`
		SELECT run_id, created_at, scramble_text, start_facelets, end_facelets, stage, final_phase, move_count, notes
		FROM runs
		WHERE run_id = ?
	`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// GetLast retrieves the most recent run.
func (r *RunRepository) GetLast() (*Run, error) {
	var runID string
	err := r.db.QueryRow(`
		SELECT run_id FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&runID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last run: %w", err)
	}

	return r.Get(runID)
}

// List retrieves recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, created_at, scramble_text, start_facelets, end_facelets, stage, final_phase, move_count, notes
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

// Delete deletes a run and its moves (cascading).
func (r *RunRepository) Delete(runID string) error {
	result, err := r.db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

// StartCube parses the stored starting cube.
func (r *Run) StartCube() (*gocube.Cube, error) {
	c, err := gocube.ParseFacelets(r.StartFacelets)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start facelets: %w", err)
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var createdAt string

	err := row.Scan(
		&run.RunID, &createdAt, &run.ScrambleText,
		&run.StartFacelets, &run.EndFacelets, &run.Stage,
		&run.FinalPhase, &run.MoveCount, &run.Notes,
	)
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &run, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
