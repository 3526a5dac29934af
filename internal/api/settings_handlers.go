package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/homeright/backend/internal/service"
	"github.com/homeright/backend/pkg/httputil"
)

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := s.settingsService.GetOrCreateDefault(ctx, chi.URLParam(r, "owner_id"))
	if err != nil {
		writeDomainError(w, logger, "get settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings provided")
}

func (s *Server) UpsertSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.UpsertSettingsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upsert settings error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := s.settingsService.Upsert(ctx, chi.URLParam(r, "owner_id"), &req)
	if err != nil {
		writeDomainError(w, logger, "upsert settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings upserted")
}

func (s *Server) DeleteSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.settingsService.Delete(ctx, chi.URLParam(r, "owner_id"))
	if err != nil {
		writeDomainError(w, logger, "delete settings", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("settings deleted")
}
