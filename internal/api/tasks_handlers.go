package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/homeright/backend/internal/service"
	"github.com/homeright/backend/pkg/entity"
	"github.com/homeright/backend/pkg/httputil"
)

type ListTasksResponse struct {
	OwnerID string         `json:"owner_id"`
	Skip    int            `json:"skip"`
	Limit   int            `json:"limit"`
	Tasks   []*entity.Task `json:"tasks"`
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateTaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.Create(ctx, &req)
	if err != nil {
		writeDomainError(w, logger, "create task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filters, err := parseTaskFilters(r)
	if err != nil {
		writeDomainError(w, logger, "list tasks", err)
		return
	}
	pagination, err := parsePagination(r, 200, 1000)
	if err != nil {
		writeDomainError(w, logger, "list tasks", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	tasks, err := s.tasksService.List(ctx, r.URL.Query().Get("owner_id"), filters, pagination)
	if err != nil {
		writeDomainError(w, logger, "list tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListTasksResponse{
		OwnerID: r.URL.Query().Get("owner_id"),
		Skip:    pagination.Offset,
		Limit:   pagination.Limit,
		Tasks:   tasks,
	})
	logger.Info("tasks provided")
}

func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.Get(ctx, r.URL.Query().Get("owner_id"), chi.URLParam(r, "task_id"))
	if err != nil {
		writeDomainError(w, logger, "get task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task provided")
}

func (s *Server) ReplaceTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateTaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("replace task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.Replace(ctx, r.URL.Query().Get("owner_id"), chi.URLParam(r, "task_id"), &req)
	if err != nil {
		writeDomainError(w, logger, "replace task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task replaced")
}

func (s *Server) PatchTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.PatchTaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("patch task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.Patch(ctx, r.URL.Query().Get("owner_id"), chi.URLParam(r, "task_id"), &req)
	if err != nil {
		writeDomainError(w, logger, "patch task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task patched")
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.tasksService.Delete(ctx, r.URL.Query().Get("owner_id"), chi.URLParam(r, "task_id"))
	if err != nil {
		writeDomainError(w, logger, "delete task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task deleted")
}
