package tasks

import (
	"context"

	"github.com/planitapp/planit/internal/server/models"
)

// Repository is the per-owner task store. Every method is scoped by the
// owner's user id; a task belonging to someone else behaves as absent.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error)
	CountBucket(ctx context.Context, ownerID string, day int) (int, error)
	Create(ctx context.Context, task *models.Task) error
	Get(ctx context.Context, ownerID, id string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, ownerID, id string) error
	// UpdatePlacement moves one task to (day, position). It reports whether a
	// row was touched, so reorder batches can skip unknown or foreign ids.
	UpdatePlacement(ctx context.Context, ownerID, id string, day, position int) (bool, error)
}
