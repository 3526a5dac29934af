package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/homeright/backend/pkg/httputil"
)

func (s *Server) MonthSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		logger.Error("month summary error: invalid year in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year in path value", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		logger.Error("month summary error: invalid month in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	summary, err := s.summaryService.Month(ctx, chi.URLParam(r, "owner_id"), year, month)
	if err != nil {
		writeDomainError(w, logger, "month summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("month summary provided")
}

func (s *Server) YearSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		logger.Error("year summary error: invalid year in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	summary, err := s.summaryService.Year(ctx, chi.URLParam(r, "owner_id"), year)
	if err != nil {
		writeDomainError(w, logger, "year summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("year summary provided")
}
