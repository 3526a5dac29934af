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

type ListProgressResponse struct {
	OwnerID string             `json:"owner_id"`
	Skip    int                `json:"skip"`
	Limit   int                `json:"limit"`
	Records []*entity.Progress `json:"records"`
}

func (s *Server) CreateProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateProgressRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	record, err := s.progressService.Create(ctx, &req)
	if err != nil {
		writeDomainError(w, logger, "create progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, record)
	logger.Info("progress created")
}

func (s *Server) ListProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filters, err := parseProgressFilters(r)
	if err != nil {
		writeDomainError(w, logger, "list progress", err)
		return
	}
	pagination, err := parsePagination(r, 500, 2000)
	if err != nil {
		writeDomainError(w, logger, "list progress", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	records, err := s.progressService.List(ctx, r.URL.Query().Get("owner_id"), filters, pagination)
	if err != nil {
		writeDomainError(w, logger, "list progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListProgressResponse{
		OwnerID: r.URL.Query().Get("owner_id"),
		Skip:    pagination.Offset,
		Limit:   pagination.Limit,
		Records: records,
	})
	logger.Info("progress list provided")
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	record, err := s.progressService.Get(ctx, r.URL.Query().Get("owner_id"), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, logger, "get progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
	logger.Info("progress provided")
}

func (s *Server) UpsertProgressByKey(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateProgressRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upsert progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	record, err := s.progressService.UpsertByKey(ctx, &req)
	if err != nil {
		writeDomainError(w, logger, "upsert progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
	logger.Info("progress upserted")
}

func (s *Server) PatchProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.PatchProgressRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("patch progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	record, err := s.progressService.Patch(ctx, r.URL.Query().Get("owner_id"), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, logger, "patch progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
	logger.Info("progress patched")
}

func (s *Server) ReplaceProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateProgressRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("replace progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	record, err := s.progressService.Replace(ctx, r.URL.Query().Get("owner_id"), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, logger, "replace progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
	logger.Info("progress replaced")
}

func (s *Server) DeleteProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.progressService.Delete(ctx, r.URL.Query().Get("owner_id"), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, logger, "delete progress", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("progress deleted")
}
