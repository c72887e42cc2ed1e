package httpapi

import (
	"errors"
	"net/http"

	"github.com/planitapp/planit/internal/common"
	"github.com/planitapp/planit/internal/server/services"
)

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	tasks, err := s.tasks.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         *int   `json:"day"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	// a missing day field is invalid, not day zero
	if req.Day == nil {
		writeError(w, http.StatusBadRequest, "day is invalid")
		return
	}

	task, err := s.tasks.Create(r.Context(), user.ID, req.Title, req.Description, *req.Day)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorTitleRequired):
			writeError(w, http.StatusBadRequest, "title is required")
		case errors.Is(err, common.ErrorInvalidDay):
			writeError(w, http.StatusBadRequest, "day is invalid")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"task": task})
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Day         *int    `json:"day"`
	Position    *int    `json:"position"`
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	task, err := s.tasks.Update(r.Context(), user.ID, r.PathValue("id"), services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Day:         req.Day,
		Position:    req.Position,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"task": task})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	if err := s.tasks.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reorderItem struct {
	ID       string `json:"id"`
	Day      *int   `json:"day"`
	Position *int   `json:"position"`
}

type reorderRequest struct {
	Tasks []reorderItem `json:"tasks"`
}

func (s *Server) handleReorderTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	// "tasks" must be present and an array; an empty batch is a valid no-op
	if req.Tasks == nil {
		writeError(w, http.StatusBadRequest, "invalid data format")
		return
	}

	updates := make([]services.ReorderUpdate, 0, len(req.Tasks))
	for _, item := range req.Tasks {
		updates = append(updates, services.ReorderUpdate{
			ID:       item.ID,
			Day:      item.Day,
			Position: item.Position,
		})
	}

	if err := s.tasks.Reorder(r.Context(), user.ID, updates); err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
