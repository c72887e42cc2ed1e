package services

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/planitapp/planit/internal/common"
	"github.com/planitapp/planit/internal/dbx"
	"github.com/planitapp/planit/internal/server/models"
	tasksrepo "github.com/planitapp/planit/internal/server/repositories/tasks"
	usersrepo "github.com/planitapp/planit/internal/server/repositories/users"
)

// --- shared test doubles ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// fakeUsersRepo keeps accounts in a map, enforcing the unique-email rule the
// real table's index provides.
type fakeUsersRepo struct {
	byID map[string]*models.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: make(map[string]*models.User)}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) error {
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return common.ErrorEmailExists
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

// fakeTasksRepo mirrors the SQL repository's contract over a slice.
type fakeTasksRepo struct {
	items []*models.Task

	getErr       error  // forced error for Get
	placementErr error  // forced error for UpdatePlacement
	failOnID     string // limit forced errors to one task id
}

func (f *fakeTasksRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	out := make([]*models.Task, 0)
	for _, item := range f.items {
		if item.UserID == ownerID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Position < out[j].Position
	})
	return out, nil
}

func (f *fakeTasksRepo) CountBucket(ctx context.Context, ownerID string, day int) (int, error) {
	n := 0
	for _, item := range f.items {
		if item.UserID == ownerID && item.Day == day {
			n++
		}
	}
	return n, nil
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) error {
	cp := *task
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeTasksRepo) Get(ctx context.Context, ownerID, id string) (*models.Task, error) {
	if f.getErr != nil && (f.failOnID == "" || f.failOnID == id) {
		return nil, f.getErr
	}
	for _, item := range f.items {
		if item.ID == id && item.UserID == ownerID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeTasksRepo) Update(ctx context.Context, task *models.Task) error {
	for _, item := range f.items {
		if item.ID == task.ID && item.UserID == task.UserID {
			item.Title = task.Title
			item.Description = task.Description
			item.Day = task.Day
			item.Position = task.Position
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeTasksRepo) Delete(ctx context.Context, ownerID, id string) error {
	for i, item := range f.items {
		if item.ID == id && item.UserID == ownerID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeTasksRepo) UpdatePlacement(ctx context.Context, ownerID, id string, day, position int) (bool, error) {
	if f.placementErr != nil && (f.failOnID == "" || f.failOnID == id) {
		return false, f.placementErr
	}
	for _, item := range f.items {
		if item.ID == id && item.UserID == ownerID {
			item.Day = day
			item.Position = position
			return true, nil
		}
	}
	return false, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTasksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository      { return m.t }
