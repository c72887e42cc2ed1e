// Package httpapi exposes the planner over a JSON REST API and serves the
// bundled web client for every non-API path.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/planitapp/planit/internal/common"
	"github.com/planitapp/planit/internal/logging"
	"github.com/planitapp/planit/internal/server/models"
	"github.com/planitapp/planit/internal/server/services"
)

// UserService is the slice of the user service the HTTP layer depends on.
type UserService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, headerValue string) (*models.User, error)
}

// TaskService is the slice of the task service the HTTP layer depends on.
type TaskService interface {
	List(ctx context.Context, ownerID string) ([]*models.Task, error)
	Create(ctx context.Context, ownerID, title, description string, day int) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID string, upd services.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
	Reorder(ctx context.Context, ownerID string, updates []services.ReorderUpdate) error
}

// Server routes API requests to the services. It implements http.Handler with
// the middleware chain already applied.
type Server struct {
	users  UserService
	tasks  TaskService
	logger logging.Logger

	handler http.Handler
}

// NewServer wires the routes. staticDir is the web client bundle; pass "" to
// disable static serving (useful in tests).
func NewServer(users UserService, tasks TaskService, logger logging.Logger, staticDir string) *Server {
	srv := &Server{
		users:  users,
		tasks:  tasks,
		logger: logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", srv.handleRegister)
	mux.HandleFunc("POST /api/auth/login", srv.handleLogin)
	mux.HandleFunc("GET /api/auth/me", srv.handleMe)

	mux.HandleFunc("GET /api/tasks", srv.handleListTasks)
	mux.HandleFunc("POST /api/tasks", srv.handleCreateTask)
	// the literal reorder pattern outranks the {id} wildcard, so "reorder"
	// is never taken for a task id
	mux.HandleFunc("PUT /api/tasks/reorder", srv.handleReorderTasks)
	mux.HandleFunc("PUT /api/tasks/{id}", srv.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", srv.handleDeleteTask)

	if staticDir != "" {
		mux.Handle("/", newStaticHandler(staticDir))
	}

	srv.handler = withRecover(logger, withCORS(withLogging(logger, mux)))
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// requireUser resolves the Authorization header to an account, writing the
// appropriate 401 on failure. The boolean reports whether the request may
// proceed.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, err := s.users.Authenticate(r.Context(), r.Header.Get("Authorization"))
	if err == nil {
		return user, true
	}

	switch {
	case errors.Is(err, common.ErrorMissingAuthHeader):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, common.ErrorAccountNotFound):
		writeError(w, http.StatusUnauthorized, "account not found")
	default:
		writeError(w, http.StatusUnauthorized, "invalid or expired session")
	}
	return nil, false
}
