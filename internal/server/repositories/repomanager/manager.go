package repomanager

import (
	"context"
	"database/sql"

	"github.com/planitapp/planit/internal/dbx"
	"github.com/planitapp/planit/internal/server/repositories/tasks"
	"github.com/planitapp/planit/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
