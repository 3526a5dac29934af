package api_test

import (
	"context"

	"github.com/homeright/backend/internal/repository"
	"github.com/homeright/backend/internal/service"
	"github.com/homeright/backend/pkg/entity"
)

// Hand-written service mocks: canned return values plus an err switch, and
// argument capture where the routing itself is under test.

type tasksServiceMock struct {
	task  *entity.Task
	tasks []*entity.Task
	err   error

	gotOwnerID string
	gotTaskID  string
}

func (m *tasksServiceMock) Create(ctx context.Context, req *service.CreateTaskRequest) (*entity.Task, error) {
	m.gotOwnerID = req.OwnerID
	if m.err != nil {
		return nil, m.err
	}
	return m.task, nil
}

func (m *tasksServiceMock) Get(ctx context.Context, ownerID, taskID string) (*entity.Task, error) {
	m.gotOwnerID = ownerID
	m.gotTaskID = taskID
	if m.err != nil {
		return nil, m.err
	}
	return m.task, nil
}

func (m *tasksServiceMock) List(ctx context.Context, ownerID string, filters repository.TaskFilters, pagination service.PaginationOpts) ([]*entity.Task, error) {
	m.gotOwnerID = ownerID
	if m.err != nil {
		return nil, m.err
	}
	return m.tasks, nil
}

func (m *tasksServiceMock) Replace(ctx context.Context, ownerID, taskID string, req *service.CreateTaskRequest) (*entity.Task, error) {
	m.gotOwnerID = ownerID
	m.gotTaskID = taskID
	if m.err != nil {
		return nil, m.err
	}
	return m.task, nil
}

func (m *tasksServiceMock) Patch(ctx context.Context, ownerID, taskID string, req *service.PatchTaskRequest) (*entity.Task, error) {
	m.gotOwnerID = ownerID
	m.gotTaskID = taskID
	if m.err != nil {
		return nil, m.err
	}
	return m.task, nil
}

func (m *tasksServiceMock) Delete(ctx context.Context, ownerID, taskID string) error {
	m.gotOwnerID = ownerID
	m.gotTaskID = taskID
	return m.err
}

type progressServiceMock struct {
	record  *entity.Progress
	records []*entity.Progress
	err     error

	lastOp     string
	gotOwnerID string
	gotID      string
}

func (m *progressServiceMock) Create(ctx context.Context, req *service.CreateProgressRequest) (*entity.Progress, error) {
	m.lastOp = "create"
	m.gotOwnerID = req.OwnerID
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

func (m *progressServiceMock) Get(ctx context.Context, ownerID, progressID string) (*entity.Progress, error) {
	m.lastOp = "get"
	m.gotOwnerID = ownerID
	m.gotID = progressID
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

func (m *progressServiceMock) List(ctx context.Context, ownerID string, filters repository.ProgressFilters, pagination service.PaginationOpts) ([]*entity.Progress, error) {
	m.lastOp = "list"
	m.gotOwnerID = ownerID
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *progressServiceMock) UpsertByKey(ctx context.Context, req *service.CreateProgressRequest) (*entity.Progress, error) {
	m.lastOp = "upsert_by_key"
	m.gotOwnerID = req.OwnerID
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

func (m *progressServiceMock) Patch(ctx context.Context, ownerID, progressID string, req *service.PatchProgressRequest) (*entity.Progress, error) {
	m.lastOp = "patch"
	m.gotOwnerID = ownerID
	m.gotID = progressID
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

func (m *progressServiceMock) Replace(ctx context.Context, ownerID, progressID string, req *service.CreateProgressRequest) (*entity.Progress, error) {
	m.lastOp = "replace"
	m.gotOwnerID = ownerID
	m.gotID = progressID
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

func (m *progressServiceMock) Delete(ctx context.Context, ownerID, progressID string) error {
	m.lastOp = "delete"
	m.gotOwnerID = ownerID
	m.gotID = progressID
	return m.err
}

type settingsServiceMock struct {
	settings *entity.Settings
	err      error

	gotOwnerID string
}

func (m *settingsServiceMock) GetOrCreateDefault(ctx context.Context, ownerID string) (*entity.Settings, error) {
	m.gotOwnerID = ownerID
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *settingsServiceMock) Upsert(ctx context.Context, ownerID string, req *service.UpsertSettingsRequest) (*entity.Settings, error) {
	m.gotOwnerID = ownerID
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *settingsServiceMock) Delete(ctx context.Context, ownerID string) error {
	m.gotOwnerID = ownerID
	return m.err
}

type summaryServiceMock struct {
	month *service.MonthSummary
	year  *service.YearSummary
	err   error

	gotOwnerID string
	gotYear    int
	gotMonth   int
}

func (m *summaryServiceMock) Month(ctx context.Context, ownerID string, year, month int) (*service.MonthSummary, error) {
	m.gotOwnerID = ownerID
	m.gotYear = year
	m.gotMonth = month
	if m.err != nil {
		return nil, m.err
	}
	return m.month, nil
}

func (m *summaryServiceMock) Year(ctx context.Context, ownerID string, year int) (*service.YearSummary, error) {
	m.gotOwnerID = ownerID
	m.gotYear = year
	if m.err != nil {
		return nil, m.err
	}
	return m.year, nil
}
