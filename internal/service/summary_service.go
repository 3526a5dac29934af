package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errorvalues "github.com/homeright/backend/internal/error_values"
	"github.com/homeright/backend/internal/repository"
	"github.com/homeright/backend/pkg/entity"
)

// Aggregation fetch caps. Results past a cap are silently truncated.
const (
	summaryTasksCap        = 5000
	summaryMonthCap        = 5000
	summaryYearProgressCap = 20000
)

type ProgressSnapshot struct {
	Status    entity.ProgressStatus `json:"status"`
	Cost      *decimal.Decimal      `json:"cost,omitempty"`
	Note      string                `json:"note"`
	Date      *time.Time            `json:"date,omitempty"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type MonthSummaryItem struct {
	TaskID    string            `json:"task_id"`
	Title     string            `json:"title"`
	Detail    string            `json:"detail"`
	Schedule  entity.Schedule   `json:"schedule"`
	Month     *int              `json:"month,omitempty"`
	IsBuiltin bool              `json:"is_builtin"`
	Progress  *ProgressSnapshot `json:"progress"`
}

type MonthSummary struct {
	OwnerID            string             `json:"owner_id"`
	Year               int                `json:"year"`
	Month              int                `json:"month"`
	TotalTasks         int                `json:"total_tasks"`
	CompletedTasks     int                `json:"completed_tasks"`
	IsMonthComplete    bool               `json:"is_month_complete"`
	CompletedCostTotal decimal.Decimal    `json:"completed_cost_total"`
	Tasks              []MonthSummaryItem `json:"tasks"`
}

type YearSummary struct {
	OwnerID            string          `json:"owner_id"`
	Year               int             `json:"year"`
	CompletedCount     int             `json:"completed_count"`
	CompletedCostTotal decimal.Decimal `json:"completed_cost_total"`
}

type SummaryService struct {
	tasksRepo    repository.TasksRepositoryI
	progressRepo repository.ProgressRepositoryI
}

func NewSummaryService(tasksRepo repository.TasksRepositoryI, progressRepo repository.ProgressRepositoryI) *SummaryService {
	if tasksRepo == nil || progressRepo == nil {
		log.Fatal("on summary service provided nil repos")
	}
	return &SummaryService{
		tasksRepo:    tasksRepo,
		progressRepo: progressRepo,
	}
}

func (serv *SummaryService) Month(ctx context.Context, ownerID string, year, month int) (*MonthSummary, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	if month < 1 || month > 12 {
		return nil, errorvalues.NewValidationError("month", "min=1, max=12")
	}
	if year < 1970 || year > 3000 {
		return nil, errorvalues.NewValidationError("year", "min=1970, max=3000")
	}
	tasks, err := serv.tasksRepo.List(ctx, ownerID, repository.TaskFilters{}, summaryTasksCap, 0)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	records, err := serv.progressRepo.List(ctx, ownerID, repository.ProgressFilters{
		Year:  &year,
		Month: &month,
	}, summaryMonthCap, 0)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	// At most one record per task for the period, by the natural-key constraint
	progressByTask := make(map[string]*entity.Progress, len(records))
	for _, record := range records {
		progressByTask[record.TaskID] = record
	}

	summary := MonthSummary{
		OwnerID:            ownerID,
		Year:               year,
		Month:              month,
		CompletedCostTotal: decimal.Zero,
		Tasks:              make([]MonthSummaryItem, 0),
	}
	for _, task := range tasks {
		if !DueInMonth(task.Schedule, task.Month, month) {
			continue
		}
		item := MonthSummaryItem{
			TaskID:    task.TaskID,
			Title:     task.Title,
			Detail:    task.Detail,
			Schedule:  task.Schedule,
			Month:     task.Month,
			IsBuiltin: task.IsBuiltin,
		}
		if record, ok := progressByTask[task.TaskID]; ok {
			item.Progress = &ProgressSnapshot{
				Status:    record.Status,
				Cost:      record.Cost,
				Note:      record.Note,
				Date:      record.Date,
				UpdatedAt: record.UpdatedAt,
			}
			if record.Status == entity.StatusComplete {
				summary.CompletedTasks++
				if record.Cost != nil {
					summary.CompletedCostTotal = summary.CompletedCostTotal.Add(*record.Cost)
				}
			}
		}
		summary.Tasks = append(summary.Tasks, item)
	}
	summary.TotalTasks = len(summary.Tasks)
	summary.IsMonthComplete = summary.TotalTasks > 0 && summary.CompletedTasks == summary.TotalTasks
	return &summary, nil
}

func (serv *SummaryService) Year(ctx context.Context, ownerID string, year int) (*YearSummary, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	if year < 1970 || year > 3000 {
		return nil, errorvalues.NewValidationError("year", "min=1970, max=3000")
	}
	completed := entity.StatusComplete
	records, err := serv.progressRepo.List(ctx, ownerID, repository.ProgressFilters{
		Year:   &year,
		Status: &completed,
	}, summaryYearProgressCap, 0)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	// No task join: completions stay counted even when the task's schedule has
	// since changed or the task is gone
	summary := YearSummary{
		OwnerID:            ownerID,
		Year:               year,
		CompletedCount:     len(records),
		CompletedCostTotal: decimal.Zero,
	}
	for _, record := range records {
		if record.Cost != nil {
			summary.CompletedCostTotal = summary.CompletedCostTotal.Add(*record.Cost)
		}
	}
	return &summary, nil
}
