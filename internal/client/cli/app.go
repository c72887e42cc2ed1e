// Package cli implements the interactive planner client: a small REPL over
// the server's REST API for managing the week board from a terminal.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/planitapp/planit/internal/client/api"
	"github.com/planitapp/planit/internal/client/config"
)

// plannerAPI is the slice of the API client the CLI depends on.
type plannerAPI interface {
	SetToken(token string)
	Register(ctx context.Context, email, password, name string) (*api.Session, error)
	Login(ctx context.Context, email, password string) (*api.Session, error)
	Me(ctx context.Context) (*api.User, error)
	ListTasks(ctx context.Context) ([]api.Task, error)
	CreateTask(ctx context.Context, title, description string, day int) (*api.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ReorderTasks(ctx context.Context, items []api.ReorderItem) error
}

type App struct {
	config *config.Config
	client plannerAPI
	user   *api.User
	// board caches the last listed tasks so "del <n>" and "move <n> ..."
	// can refer to tasks by their printed number
	board  []api.Task
	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerURL),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	printlnFn("PlanIt CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) status() string {
	if a.user == nil {
		return "not logged in"
	}
	return a.user.Email
}
