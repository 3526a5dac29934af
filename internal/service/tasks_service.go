package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/homeright/backend/internal/error_values"
	"github.com/homeright/backend/internal/repository"
	"github.com/homeright/backend/pkg/entity"
)

type TasksService struct {
	repo repository.TasksRepositoryI
}

func NewTasksService(tasksRepo repository.TasksRepositoryI) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	return &TasksService{
		repo: tasksRepo,
	}
}

func (ts *TasksService) Create(ctx context.Context, req *CreateTaskRequest) (*entity.Task, error) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.TaskID = strings.TrimSpace(req.TaskID)
	if err := toValidationError(validate.Struct(req)); err != nil {
		return nil, err
	}
	if req.TaskID == "" {
		req.TaskID = uuid.NewString()
	}
	task := entity.Task{
		OwnerID:   req.OwnerID,
		TaskID:    req.TaskID,
		Title:     req.Title,
		Detail:    req.Detail,
		Schedule:  req.Schedule,
		Month:     req.Month,
		IsBuiltin: req.IsBuiltin,
	}
	err := ts.repo.Create(ctx, &task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskExists) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return &task, nil
}

func (ts *TasksService) Get(ctx context.Context, ownerID, taskID string) (*entity.Task, error) {
	ownerID = strings.TrimSpace(ownerID)
	taskID = strings.TrimSpace(taskID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	task, err := ts.repo.GetByKey(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) List(ctx context.Context, ownerID string, filters repository.TaskFilters, pagination PaginationOpts) ([]*entity.Task, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	tasks, err := ts.repo.List(ctx, ownerID, filters, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) Replace(ctx context.Context, ownerID, taskID string, req *CreateTaskRequest) (*entity.Task, error) {
	ownerID = strings.TrimSpace(ownerID)
	taskID = strings.TrimSpace(taskID)
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.TaskID = strings.TrimSpace(req.TaskID)
	if err := toValidationError(validate.Struct(req)); err != nil {
		return nil, err
	}
	if req.TaskID != "" && req.TaskID != taskID {
		return nil, errorvalues.NewValidationError("task_id", "must match the addressed task")
	}
	if req.OwnerID != ownerID {
		return nil, errorvalues.NewValidationError("owner_id", "must match the addressed owner")
	}
	task := entity.Task{
		OwnerID:   ownerID,
		TaskID:    taskID,
		Title:     req.Title,
		Detail:    req.Detail,
		Schedule:  req.Schedule,
		Month:     req.Month,
		IsBuiltin: req.IsBuiltin,
	}
	replaced, err := ts.repo.Replace(ctx, &task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskExists) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return replaced, nil
}

func (ts *TasksService) Patch(ctx context.Context, ownerID, taskID string, req *PatchTaskRequest) (*entity.Task, error) {
	ownerID = strings.TrimSpace(ownerID)
	taskID = strings.TrimSpace(taskID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	if err := toValidationError(validate.Struct(req)); err != nil {
		return nil, err
	}
	patch := entity.TaskPatch{
		Title:     req.Title,
		Detail:    req.Detail,
		Schedule:  req.Schedule,
		Month:     req.Month,
		IsBuiltin: req.IsBuiltin,
	}
	patched, err := ts.repo.Patch(ctx, ownerID, taskID, &patch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			// A month-only patch misses when the stored schedule isn't custom;
			// tell that apart from a genuinely absent task
			if req.Month != nil && req.Schedule == nil {
				if _, getErr := ts.repo.GetByKey(ctx, ownerID, taskID); getErr == nil {
					return nil, errorvalues.NewValidationError("month", "month requires schedule=custom")
				}
			}
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return patched, nil
}

func (ts *TasksService) Delete(ctx context.Context, ownerID, taskID string) error {
	ownerID = strings.TrimSpace(ownerID)
	taskID = strings.TrimSpace(taskID)
	if ownerID == "" {
		return errorvalues.NewValidationError("owner_id", "required")
	}
	// Progress rows referencing the task are kept; history stays addressable
	err := ts.repo.Delete(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}
