package service_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	errorvalues "github.com/homeright/backend/internal/error_values"
	"github.com/homeright/backend/internal/repository"
	"github.com/homeright/backend/pkg/entity"
)

// In-memory repositories mirroring the storage semantics: unique keys,
// owner scoping, created_at preserved on overwrite.

type tasksRepoMock struct {
	tasks []*entity.Task
	err   error
}

func (m *tasksRepoMock) find(ownerID, taskID string) *entity.Task {
	for _, task := range m.tasks {
		if task.OwnerID == ownerID && task.TaskID == taskID {
			return task
		}
	}
	return nil
}

func (m *tasksRepoMock) Create(ctx context.Context, task *entity.Task) error {
	if m.err != nil {
		return m.err
	}
	if m.find(task.OwnerID, task.TaskID) != nil {
		return errorvalues.ErrTaskExists
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *tasksRepoMock) GetByKey(ctx context.Context, ownerID, taskID string) (*entity.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	if task := m.find(ownerID, taskID); task != nil {
		return task, nil
	}
	return nil, errorvalues.ErrTaskNotFound
}

func (m *tasksRepoMock) List(ctx context.Context, ownerID string, filters repository.TaskFilters, limit, offset int) ([]*entity.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*entity.Task, 0)
	for _, task := range m.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		if filters.Schedule != nil && task.Schedule != *filters.Schedule {
			continue
		}
		if filters.Month != nil && (task.Month == nil || *task.Month != *filters.Month) {
			continue
		}
		if filters.IsBuiltin != nil && task.IsBuiltin != *filters.IsBuiltin {
			continue
		}
		result = append(result, task)
	}
	if offset >= len(result) {
		return []*entity.Task{}, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *tasksRepoMock) Replace(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now().UTC()
	if existing := m.find(task.OwnerID, task.TaskID); existing != nil {
		task.CreatedAt = existing.CreatedAt
		task.UpdatedAt = now
		*existing = *task
		return existing, nil
	}
	task.CreatedAt = now
	task.UpdatedAt = now
	m.tasks = append(m.tasks, task)
	return task, nil
}

func (m *tasksRepoMock) Patch(ctx context.Context, ownerID, taskID string, patch *entity.TaskPatch) (*entity.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	task := m.find(ownerID, taskID)
	if task == nil {
		return nil, errorvalues.ErrTaskNotFound
	}
	// The update filter also requires schedule=custom for a month-only patch
	if patch.Month != nil && patch.Schedule == nil && task.Schedule != entity.ScheduleCustom {
		return nil, errorvalues.ErrTaskNotFound
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Detail != nil {
		task.Detail = *patch.Detail
	}
	if patch.Schedule != nil {
		task.Schedule = *patch.Schedule
		if *patch.Schedule != entity.ScheduleCustom {
			task.Month = nil
		}
	}
	if patch.Month != nil {
		task.Month = patch.Month
	}
	if patch.IsBuiltin != nil {
		task.IsBuiltin = *patch.IsBuiltin
	}
	task.UpdatedAt = time.Now().UTC()
	return task, nil
}

func (m *tasksRepoMock) Delete(ctx context.Context, ownerID, taskID string) error {
	if m.err != nil {
		return m.err
	}
	for i, task := range m.tasks {
		if task.OwnerID == ownerID && task.TaskID == taskID {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return errorvalues.ErrTaskNotFound
}

type progressRepoMock struct {
	records []*entity.Progress
	err     error
}

func (m *progressRepoMock) findByKey(record *entity.Progress) *entity.Progress {
	for _, r := range m.records {
		if r.OwnerID == record.OwnerID && r.TaskID == record.TaskID &&
			r.Year == record.Year && r.Month == record.Month {
			return r
		}
	}
	return nil
}

func (m *progressRepoMock) Create(ctx context.Context, record *entity.Progress) (*entity.Progress, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.findByKey(record) != nil {
		return nil, errorvalues.ErrProgressExists
	}
	now := time.Now().UTC()
	stored := *record
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.records = append(m.records, &stored)
	return &stored, nil
}

func (m *progressRepoMock) GetByID(ctx context.Context, ownerID string, id primitive.ObjectID) (*entity.Progress, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.records {
		if r.ID == id && r.OwnerID == ownerID {
			return r, nil
		}
	}
	return nil, errorvalues.ErrProgressNotFound
}

func (m *progressRepoMock) List(ctx context.Context, ownerID string, filters repository.ProgressFilters, limit, offset int) ([]*entity.Progress, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*entity.Progress, 0)
	for _, r := range m.records {
		if r.OwnerID != ownerID {
			continue
		}
		if filters.Year != nil && r.Year != *filters.Year {
			continue
		}
		if filters.Month != nil && r.Month != *filters.Month {
			continue
		}
		if filters.TaskID != nil && r.TaskID != *filters.TaskID {
			continue
		}
		if filters.Status != nil && r.Status != *filters.Status {
			continue
		}
		result = append(result, r)
	}
	if offset >= len(result) {
		return []*entity.Progress{}, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *progressRepoMock) UpsertByKey(ctx context.Context, record *entity.Progress) (*entity.Progress, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now().UTC()
	if existing := m.findByKey(record); existing != nil {
		existing.Status = record.Status
		existing.Cost = record.Cost
		existing.Note = record.Note
		existing.Date = record.Date
		existing.UpdatedAt = now
		return existing, nil
	}
	stored := *record
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.records = append(m.records, &stored)
	return &stored, nil
}

func (m *progressRepoMock) Patch(ctx context.Context, ownerID string, id primitive.ObjectID, patch *entity.ProgressPatch) (*entity.Progress, error) {
	record, err := m.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
	if patch.Cost != nil {
		record.Cost = patch.Cost
	}
	if patch.Note != nil {
		record.Note = *patch.Note
	}
	if patch.Date != nil {
		record.Date = patch.Date
	}
	record.UpdatedAt = time.Now().UTC()
	return record, nil
}

func (m *progressRepoMock) Replace(ctx context.Context, ownerID string, id primitive.ObjectID, record *entity.Progress) (*entity.Progress, error) {
	existing, err := m.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	existing.TaskID = record.TaskID
	existing.Year = record.Year
	existing.Month = record.Month
	existing.Status = record.Status
	existing.Cost = record.Cost
	existing.Note = record.Note
	existing.Date = record.Date
	existing.UpdatedAt = time.Now().UTC()
	return existing, nil
}

func (m *progressRepoMock) Delete(ctx context.Context, ownerID string, id primitive.ObjectID) error {
	if m.err != nil {
		return m.err
	}
	for i, r := range m.records {
		if r.ID == id && r.OwnerID == ownerID {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return errorvalues.ErrProgressNotFound
}

type settingsRepoMock struct {
	settings []*entity.Settings
	err      error
}

func (m *settingsRepoMock) find(ownerID string) *entity.Settings {
	for _, s := range m.settings {
		if s.OwnerID == ownerID {
			return s
		}
	}
	return nil
}

func (m *settingsRepoMock) GetOrCreateDefault(ctx context.Context, ownerID string) (*entity.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if existing := m.find(ownerID); existing != nil {
		return existing, nil
	}
	now := time.Now().UTC()
	created := &entity.Settings{
		OwnerID:      ownerID,
		SelectedYear: repository.DefaultSelectedYear,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.settings = append(m.settings, created)
	return created, nil
}

func (m *settingsRepoMock) Upsert(ctx context.Context, ownerID string, selectedYear int) (*entity.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now().UTC()
	if existing := m.find(ownerID); existing != nil {
		existing.SelectedYear = selectedYear
		existing.UpdatedAt = now
		return existing, nil
	}
	created := &entity.Settings{
		OwnerID:      ownerID,
		SelectedYear: selectedYear,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.settings = append(m.settings, created)
	return created, nil
}

func (m *settingsRepoMock) Delete(ctx context.Context, ownerID string) error {
	if m.err != nil {
		return m.err
	}
	for i, s := range m.settings {
		if s.OwnerID == ownerID {
			m.settings = append(m.settings[:i], m.settings[i+1:]...)
			return nil
		}
	}
	return errorvalues.ErrSettingsNotFound
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
