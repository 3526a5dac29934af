package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patch types express partial updates explicitly: a nil field is a no-op, a
// set field overwrites.

type TaskPatch struct {
	Title     *string
	Detail    *string
	Schedule  *Schedule
	Month     *int
	IsBuiltin *bool
}

func (p *TaskPatch) Empty() bool {
	return p.Title == nil && p.Detail == nil && p.Schedule == nil && p.Month == nil && p.IsBuiltin == nil
}

type ProgressPatch struct {
	Status *ProgressStatus
	Cost   *decimal.Decimal
	Note   *string
	Date   *time.Time
}

func (p *ProgressPatch) Empty() bool {
	return p.Status == nil && p.Cost == nil && p.Note == nil && p.Date == nil
}
