package storage

import (
	"database/sql"
	"fmt"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	RunID     string
	MoveIndex int
	Face      string
	Clockwise bool
	Notation  string
}

// MoveRepository provides read access to stored moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

func insertMoves(tx *sql.Tx, runID string, moves []gocube.Move) error {
	stmt, err := tx.Prepare(`
		INSERT INTO moves (run_id, move_index, face, clockwise, notation)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare move insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range moves {
		face := gocube.MoveFor(m.Face(), true).Notation()
		if _, err := stmt.Exec(runID, i, face, m.Clockwise(), m.Notation()); err != nil {
			return fmt.Errorf("failed to create move %d: %w", i, err)
		}
	}
	return nil
}

// GetByRun retrieves all moves for a run in order.
func (r *MoveRepository) GetByRun(runID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, run_id, move_index, face, clockwise, notation
		FROM moves
		WHERE run_id = ?
		ORDER BY move_index
	`, runID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.RunID, &m.MoveIndex, &m.Face, &m.Clockwise, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	return moves, nil
}

// Count returns the number of moves for a run.
func (r *MoveRepository) Count(runID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE run_id = ?", runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// AllByRun retrieves the moves of every stored run keyed by run ID.
func (r *MoveRepository) AllByRun() (map[string][]gocube.Move, error) {
	rows, err := r.db.Query(`
		SELECT run_id, notation
		FROM moves
		ORDER BY run_id, move_index
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	runs := make(map[string][]gocube.Move)
	for rows.Next() {
		var runID, notation string
		if err := rows.Scan(&runID, &notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m, err := gocube.ParseMove(notation)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored move %q: %w", notation, err)
		}
		runs[runID] = append(runs[runID], m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	return runs, nil
}

// ToMoves converts MoveRecords to a gocube.Move slice.
func ToMoves(records []MoveRecord) ([]gocube.Move, error) {
	moves := make([]gocube.Move, len(records))
	for i, r := range records {
		m, err := gocube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}
