package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zjrosen/signup/internal/registration"
)

// DefaultListLimit bounds List when the caller passes a non-positive limit.
const DefaultListLimit = 20

const attemptColumns = `id, email, full_name, status, status_code, detail, started_at, finished_at`

// AttemptRepository stores registration attempts.
type AttemptRepository struct {
	db *sql.DB
}

func newAttemptRepository(db *sql.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

var _ registration.Journal = (*AttemptRepository)(nil)

func scanAttempt(scanner interface{ Scan(...any) error }) (AttemptModel, error) {
	var m AttemptModel
	err := scanner.Scan(&m.ID, &m.Email, &m.FullName, &m.Status, &m.StatusCode,
		&m.Detail, &m.StartedAt, &m.FinishedAt)
	return m, err
}

// Record inserts an attempt. Re-recording the same id replaces the row.
func (r *AttemptRepository) Record(ctx context.Context, a registration.Attempt) error {
	if a.ID == "" {
		return errors.New("attempt id is required")
	}
	m := toAttemptModel(a)
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO attempts (`+attemptColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Email, m.FullName, m.Status, m.StatusCode, m.Detail, m.StartedAt, m.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attempt: %w", err)
	}
	return nil
}

// FindByID returns the attempt with the given id.
func (r *AttemptRepository) FindByID(ctx context.Context, id string) (registration.Attempt, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+attemptColumns+` FROM attempts WHERE id = ?`, id)
	m, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return registration.Attempt{}, fmt.Errorf("attempt %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return registration.Attempt{}, fmt.Errorf("failed to find attempt: %w", err)
	}
	return m.toAttempt(), nil
}

// List returns up to limit attempts, most recent first.
func (r *AttemptRepository) List(ctx context.Context, limit int) ([]registration.Attempt, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+attemptColumns+` FROM attempts ORDER BY finished_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []registration.Attempt
	for rows.Next() {
		m, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		out = append(out, m.toAttempt())
	}
	return out, rows.Err()
}

// CountByStatus returns how many attempts ended with each status.
func (r *AttemptRepository) CountByStatus(ctx context.Context) (map[registration.AttemptStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM attempts GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[registration.AttemptStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[registration.AttemptStatus(status)] = n
	}
	return counts, rows.Err()
}

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")
