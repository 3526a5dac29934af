package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	errorvalues "github.com/homeright/backend/internal/error_values"
	"github.com/homeright/backend/internal/repository"
	"github.com/homeright/backend/internal/service"
	"github.com/homeright/backend/pkg/entity"
	"github.com/homeright/backend/pkg/httputil"
)

// writeDomainError maps service errors onto the HTTP contract. Conflict and
// internal responses stay generic; the underlying cause goes to the log only.
func writeDomainError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var ve *errorvalues.ValidationError
	switch {
	case errors.As(err, &ve):
		logger.Error(op+" error: validation failed", slog.String("error", err.Error()))
		fields := make([]httputil.FieldError, 0, len(ve.Violations))
		for _, v := range ve.Violations {
			fields = append(fields, httputil.FieldError{Field: v.Field, Constraint: v.Constraint})
		}
		httputil.WriteValidationErrorResponse(w, fields)
	case errors.Is(err, errorvalues.ErrInvalidID):
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
	case errors.Is(err, errorvalues.ErrTaskNotFound):
		logger.Error(op + " error: unexist task")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrProgressNotFound):
		logger.Error(op + " error: unexist progress record")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "progress record doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrSettingsNotFound):
		logger.Error(op + " error: unexist settings")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "settings don't exist", nil)
	case errors.Is(err, errorvalues.ErrTaskExists):
		logger.Error(op+" error: duplicate task key", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, "task already exists", nil)
	case errors.Is(err, errorvalues.ErrProgressExists):
		logger.Error(op+" error: duplicate progress key", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, "progress record already exists", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func parsePagination(r *http.Request, defaultLimit, maxLimit int) (service.PaginationOpts, error) {
	opts := service.PaginationOpts{Limit: defaultLimit}
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			return opts, errorvalues.NewValidationError("limit", "min=1, max="+strconv.Itoa(maxLimit))
		}
		opts.Limit = limit
	}
	if raw := q.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return opts, errorvalues.NewValidationError("skip", "min=0")
		}
		opts.Offset = skip
	}
	return opts, nil
}

func parseTaskFilters(r *http.Request) (repository.TaskFilters, error) {
	var filters repository.TaskFilters
	q := r.URL.Query()
	if raw := q.Get("schedule"); raw != "" {
		schedule := entity.Schedule(raw)
		if !schedule.Valid() {
			return filters, errorvalues.NewValidationError("schedule", "unknown schedule")
		}
		filters.Schedule = &schedule
	}
	if raw := q.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return filters, errorvalues.NewValidationError("month", "min=1, max=12")
		}
		filters.Month = &month
	}
	if raw := q.Get("is_builtin"); raw != "" {
		isBuiltin, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, errorvalues.NewValidationError("is_builtin", "boolean")
		}
		filters.IsBuiltin = &isBuiltin
	}
	return filters, nil
}

func parseProgressFilters(r *http.Request) (repository.ProgressFilters, error) {
	var filters repository.ProgressFilters
	q := r.URL.Query()
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1970 || year > 3000 {
			return filters, errorvalues.NewValidationError("year", "min=1970, max=3000")
		}
		filters.Year = &year
	}
	if raw := q.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return filters, errorvalues.NewValidationError("month", "min=1, max=12")
		}
		filters.Month = &month
	}
	if raw := q.Get("task_id"); raw != "" {
		taskID := raw
		filters.TaskID = &taskID
	}
	if raw := q.Get("status"); raw != "" {
		status := entity.ProgressStatus(raw)
		if !status.Valid() {
			return filters, errorvalues.NewValidationError("status", "unknown status")
		}
		filters.Status = &status
	}
	return filters, nil
}
