// Package tasks provides the PostgreSQL-backed task repository.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/planitapp/planit/internal/common"
	"github.com/planitapp/planit/internal/dbx"
	"github.com/planitapp/planit/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns all of the owner's tasks ordered by (day, position),
// the order the week board renders them in.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, day, position, created_at FROM tasks
		WHERE user_id = $1
		ORDER BY day, position
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Description,
			&item.Day, &item.Position, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountBucket returns how many tasks the owner has on the given day.
func (r *PostgresRepository) CountBucket(ctx context.Context, ownerID string, day int) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND day = $2`

	var n int
	if err := r.db.QueryRowContext(ctx, query, ownerID, day).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Create inserts a new task row.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, description, day, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.Day, task.Position, task.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the owner's task with the given id, or common.ErrorNotFound.
// A foreign task id also yields common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, day, position, created_at FROM tasks
		WHERE id = $1 AND user_id = $2
	`
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Day, &task.Position, &task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

// Update overwrites the mutable fields of a task, keyed by (id, owner).
func (r *PostgresRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks SET title = $1, description = $2, day = $3, position = $4
		WHERE id = $5 AND user_id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Day, task.Position, task.ID, task.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes the owner's task. Positions of the surviving bucket
// neighbors are left untouched.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// UpdatePlacement writes a new (day, position) pair for one task. The false
// return (no error) means the id did not resolve to a task of this owner.
func (r *PostgresRepository) UpdatePlacement(ctx context.Context, ownerID, id string, day, position int) (bool, error) {
	query := `
		UPDATE tasks SET day = $1, position = $2
		WHERE id = $3 AND user_id = $4
	`
	res, err := r.db.ExecContext(ctx, query, day, position, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}
