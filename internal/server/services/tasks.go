// This file implements TaskService: owner-scoped task CRUD plus the reorder
// batch that backs drag-and-drop on the week board.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/planitapp/planit/internal/common"
	"github.com/planitapp/planit/internal/dbx"
	"github.com/planitapp/planit/internal/server/models"
	"github.com/planitapp/planit/internal/server/repositories/repomanager"
)

// TaskUpdate carries the optional fields of a partial task edit. Nil fields
// are left untouched; out-of-range day or position values are ignored rather
// than rejected, matching what the web client has always relied on.
type TaskUpdate struct {
	Title       *string
	Description *string
	Day         *int
	Position    *int
}

// ReorderUpdate is one entry of a reorder batch: the task to move and its new
// bucket placement. Nil fields keep the task's current value.
type ReorderUpdate struct {
	ID       string
	Day      *int
	Position *int
}

// TaskService provides owner-scoped task operations. Positions inside a
// (owner, day) bucket are assigned on create and overwritten by reorder
// batches; the service never renumbers a bucket on its own, so the client is
// expected to submit complete, already-normalized batches after every drag.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService using repositories.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// List returns every task of the owner, ordered by (day, position).
func (s *TaskService) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	result, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return result, nil
}

// Create appends a new task at the end of the (owner, day) bucket. The count
// and insert run in one transaction so two rapid creates cannot claim the
// same position.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string, day int) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.ErrorTitleRequired
	}
	if !validDay(day) {
		return nil, common.ErrorInvalidDay
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Day:         day,
		CreatedAt:   time.Now().UTC(),
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		count, err := repo.CountBucket(ctx, ownerID, day)
		if err != nil {
			return err
		}
		task.Position = count

		return repo.Create(ctx, task)
	}); err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// Update applies a partial edit to the owner's task and returns the updated
// row. Neighboring positions are not renumbered here: simple field edits
// bypass ordering entirely, and placement repairs arrive as reorder batches.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, upd TaskUpdate) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Get(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if upd.Title != nil {
		if title := strings.TrimSpace(*upd.Title); title != "" {
			task.Title = title
		}
	}
	if upd.Description != nil {
		task.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Day != nil && validDay(*upd.Day) {
		task.Day = *upd.Day
	}
	if upd.Position != nil && *upd.Position >= 0 {
		task.Position = *upd.Position
	}

	if err := repo.Update(ctx, task); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Delete removes the owner's task. The bucket is left with a position gap
// until the client's next reorder batch closes it.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	repo := s.repomanager.Tasks(s.db)

	if err := repo.Delete(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

// Reorder applies a placement batch atomically. Each update is best-effort:
// ids that do not resolve to a task of this owner are skipped, and day or
// position values failing the range checks leave the current value in place.
// The server persists whatever placements survive validation; it does not
// verify that the batch leaves every bucket gap-free.
func (s *TaskService) Reorder(ctx context.Context, ownerID string, updates []ReorderUpdate) error {
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		for _, upd := range updates {
			task, err := repo.Get(ctx, ownerID, upd.ID)
			if err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					continue
				}
				return err
			}

			day := task.Day
			if upd.Day != nil && validDay(*upd.Day) {
				day = *upd.Day
			}
			position := task.Position
			if upd.Position != nil && *upd.Position >= 0 {
				position = *upd.Position
			}

			if _, err := repo.UpdatePlacement(ctx, ownerID, upd.ID, day, position); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("error applying reorder batch: %w", err)
	}
	return nil
}

func validDay(day int) bool {
	return day >= 0 && day <= 6
}
