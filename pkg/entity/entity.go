package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Schedule string

const (
	ScheduleMonthly   Schedule = "monthly"
	ScheduleQuarterly Schedule = "quarterly"
	ScheduleSeasonal  Schedule = "seasonal"
	ScheduleAnnual    Schedule = "annual"
	ScheduleSpring    Schedule = "spring"
	ScheduleSummer    Schedule = "summer"
	ScheduleFall      Schedule = "fall"
	ScheduleWinter    Schedule = "winter"
	ScheduleCustom    Schedule = "custom"
)

func (s Schedule) Valid() bool {
	switch s {
	case ScheduleMonthly, ScheduleQuarterly, ScheduleSeasonal, ScheduleAnnual,
		ScheduleSpring, ScheduleSummer, ScheduleFall, ScheduleWinter, ScheduleCustom:
		return true
	}
	return false
}

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusComplete   ProgressStatus = "complete"
)

func (ps ProgressStatus) Valid() bool {
	switch ps {
	case StatusNotStarted, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

type Task struct {
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	TaskID    string    `json:"task_id" bson:"task_id"`
	Title     string    `json:"title" bson:"title"`
	Detail    string    `json:"detail" bson:"detail"`
	Schedule  Schedule  `json:"schedule" bson:"schedule"`
	Month     *int      `json:"month,omitempty" bson:"month,omitempty"`
	IsBuiltin bool      `json:"is_builtin" bson:"is_builtin"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Progress.Cost is excluded from bson mapping: repositories convert it to
// primitive.Decimal128 themselves so the stored value round-trips exactly.
type Progress struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID   string             `json:"owner_id" bson:"owner_id"`
	TaskID    string             `json:"task_id" bson:"task_id"`
	Year      int                `json:"year" bson:"year"`
	Month     int                `json:"month" bson:"month"`
	Status    ProgressStatus     `json:"status" bson:"status"`
	Cost      *decimal.Decimal   `json:"cost,omitempty" bson:"-"`
	Note      string             `json:"note" bson:"note"`
	Date      *time.Time         `json:"date,omitempty" bson:"date,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type Settings struct {
	OwnerID      string    `json:"owner_id" bson:"owner_id"`
	SelectedYear int       `json:"selected_year" bson:"selected_year"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
