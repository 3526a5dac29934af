package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeright/backend/internal/repository"
	"github.com/homeright/backend/pkg/entity"
)

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CreateTaskRequest struct {
	OwnerID   string          `json:"owner_id" validate:"required"`
	TaskID    string          `json:"task_id"`
	Title     string          `json:"title" validate:"required,max=200"`
	Detail    string          `json:"detail" validate:"max=2000"`
	Schedule  entity.Schedule `json:"schedule" validate:"required,schedule"`
	Month     *int            `json:"month" validate:"omitempty,min=1,max=12"`
	IsBuiltin bool            `json:"is_builtin"`
}

type PatchTaskRequest struct {
	Title     *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Detail    *string          `json:"detail" validate:"omitempty,max=2000"`
	Schedule  *entity.Schedule `json:"schedule" validate:"omitempty,schedule"`
	Month     *int             `json:"month" validate:"omitempty,min=1,max=12"`
	IsBuiltin *bool            `json:"is_builtin"`
}

type CreateProgressRequest struct {
	OwnerID string                `json:"owner_id" validate:"required"`
	TaskID  string                `json:"task_id" validate:"required"`
	Year    int                   `json:"year" validate:"required,min=1970,max=3000"`
	Month   int                   `json:"month" validate:"required,min=1,max=12"`
	Status  entity.ProgressStatus `json:"status" validate:"omitempty,progress_status"`
	Cost    *decimal.Decimal      `json:"cost"`
	Note    string                `json:"note" validate:"max=2000"`
	Date    *time.Time            `json:"date"`
}

type PatchProgressRequest struct {
	Status *entity.ProgressStatus `json:"status" validate:"omitempty,progress_status"`
	Cost   *decimal.Decimal       `json:"cost"`
	Note   *string                `json:"note" validate:"omitempty,max=2000"`
	Date   *time.Time             `json:"date"`
}

type UpsertSettingsRequest struct {
	SelectedYear int `json:"selected_year" validate:"required,min=1970,max=3000"`
}

type TasksServiceI interface {
	// Validates input, generates a task_id when absent, inserts the task
	Create(ctx context.Context, req *CreateTaskRequest) (*entity.Task, error)
	Get(ctx context.Context, ownerID, taskID string) (*entity.Task, error)
	List(ctx context.Context, ownerID string, filters repository.TaskFilters, pagination PaginationOpts) ([]*entity.Task, error)
	// Full-document upsert by composite key; body ids must match the addressed ones
	Replace(ctx context.Context, ownerID, taskID string, req *CreateTaskRequest) (*entity.Task, error)
	Patch(ctx context.Context, ownerID, taskID string, req *PatchTaskRequest) (*entity.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}

type ProgressServiceI interface {
	Create(ctx context.Context, req *CreateProgressRequest) (*entity.Progress, error)
	Get(ctx context.Context, ownerID, progressID string) (*entity.Progress, error)
	List(ctx context.Context, ownerID string, filters repository.ProgressFilters, pagination PaginationOpts) ([]*entity.Progress, error)
	// Overwrite-or-insert by (owner_id, task_id, year, month); the app's main write path
	UpsertByKey(ctx context.Context, req *CreateProgressRequest) (*entity.Progress, error)
	Patch(ctx context.Context, ownerID, progressID string, req *PatchProgressRequest) (*entity.Progress, error)
	Replace(ctx context.Context, ownerID, progressID string, req *CreateProgressRequest) (*entity.Progress, error)
	Delete(ctx context.Context, ownerID, progressID string) error
}

type SettingsServiceI interface {
	// First read for an owner creates the default record
	GetOrCreateDefault(ctx context.Context, ownerID string) (*entity.Settings, error)
	Upsert(ctx context.Context, ownerID string, req *UpsertSettingsRequest) (*entity.Settings, error)
	Delete(ctx context.Context, ownerID string) error
}

type SummaryServiceI interface {
	Month(ctx context.Context, ownerID string, year, month int) (*MonthSummary, error)
	Year(ctx context.Context, ownerID string, year int) (*YearSummary, error)
}
