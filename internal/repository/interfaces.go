package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homeright/backend/pkg/entity"
)

type TaskFilters struct {
	Schedule  *entity.Schedule
	Month     *int
	IsBuiltin *bool
}

type ProgressFilters struct {
	Year   *int
	Month  *int
	TaskID *string
	Status *entity.ProgressStatus
}

type TasksRepositoryI interface {
	// Inserts a new task. Fails when (owner_id, task_id) is taken
	Create(ctx context.Context, task *entity.Task) error
	// Looks up one task by its composite key
	GetByKey(ctx context.Context, ownerID, taskID string) (*entity.Task, error)
	// Lists owner's tasks, built-in first then title ascending
	List(ctx context.Context, ownerID string, filters TaskFilters, limit, offset int) ([]*entity.Task, error)
	// Upserts the whole task by its composite key, keeping created_at on overwrite
	Replace(ctx context.Context, task *entity.Task) (*entity.Task, error)
	// Applies only the set patch fields, refreshing updated_at
	Patch(ctx context.Context, ownerID, taskID string, patch *entity.TaskPatch) (*entity.Task, error)
	// Deletes one task. Progress rows for it are left in place
	Delete(ctx context.Context, ownerID, taskID string) error
}

type ProgressRepositoryI interface {
	// Inserts a new progress record. Fails when the natural key is taken
	Create(ctx context.Context, progress *entity.Progress) (*entity.Progress, error)
	// Looks up one record by internal id, owner-scoped
	GetByID(ctx context.Context, ownerID string, id primitive.ObjectID) (*entity.Progress, error)
	// Lists owner's records, most recently updated first
	List(ctx context.Context, ownerID string, filters ProgressFilters, limit, offset int) ([]*entity.Progress, error)
	// Atomic find-or-create by (owner_id, task_id, year, month); the primary write path
	UpsertByKey(ctx context.Context, progress *entity.Progress) (*entity.Progress, error)
	// Applies only the set patch fields, refreshing updated_at
	Patch(ctx context.Context, ownerID string, id primitive.ObjectID, patch *entity.ProgressPatch) (*entity.Progress, error)
	// Overwrites everything except created_at by internal id, owner-scoped
	Replace(ctx context.Context, ownerID string, id primitive.ObjectID, progress *entity.Progress) (*entity.Progress, error)
	// Deletes one record by internal id, owner-scoped
	Delete(ctx context.Context, ownerID string, id primitive.ObjectID) error
}

type SettingsRepositoryI interface {
	// Returns owner's settings, atomically creating the default record if absent
	GetOrCreateDefault(ctx context.Context, ownerID string) (*entity.Settings, error)
	// Sets selected_year, inserting the record if absent
	Upsert(ctx context.Context, ownerID string, selectedYear int) (*entity.Settings, error)
	// Deletes owner's settings
	Delete(ctx context.Context, ownerID string) error
}
