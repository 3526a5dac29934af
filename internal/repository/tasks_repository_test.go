package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/homeright/backend/pkg/entity"
)

func TestTaskListFilter(t *testing.T) {
	t.Run("owner only", func(t *testing.T) {
		filter := taskListFilter("alice", TaskFilters{})
		assert.Equal(t, bson.M{"owner_id": "alice"}, filter)
	})
	t.Run("all filters", func(t *testing.T) {
		schedule := entity.ScheduleCustom
		month := 5
		isBuiltin := true
		filter := taskListFilter("alice", TaskFilters{
			Schedule:  &schedule,
			Month:     &month,
			IsBuiltin: &isBuiltin,
		})
		assert.Equal(t, bson.M{
			"owner_id":   "alice",
			"schedule":   entity.ScheduleCustom,
			"month":      5,
			"is_builtin": true,
		}, filter)
	})
	t.Run("owner always present", func(t *testing.T) {
		// Cross-owner leakage is structurally impossible: every filter starts
		// from the owner id
		filter := taskListFilter("", TaskFilters{})
		_, ok := filter["owner_id"]
		assert.True(t, ok)
	})
}

func TestTaskReplaceUpdate(t *testing.T) {
	now := time.Now().UTC()
	t.Run("custom schedule sets month", func(t *testing.T) {
		month := 7
		task := entity.Task{
			OwnerID:  "alice",
			TaskID:   "t-1",
			Title:    "Clean gutters",
			Schedule: entity.ScheduleCustom,
			Month:    &month,
		}
		update := taskReplaceUpdate(&task, now)
		set := update["$set"].(bson.M)
		assert.Equal(t, 7, set["month"])
		assert.NotContains(t, update, "$unset")
		assert.Equal(t, bson.M{"created_at": now}, update["$setOnInsert"])
	})
	t.Run("non-custom schedule unsets month", func(t *testing.T) {
		task := entity.Task{
			OwnerID:  "alice",
			TaskID:   "t-1",
			Title:    "Clean gutters",
			Schedule: entity.ScheduleMonthly,
		}
		update := taskReplaceUpdate(&task, now)
		set := update["$set"].(bson.M)
		assert.NotContains(t, set, "month")
		assert.Equal(t, bson.M{"month": ""}, update["$unset"])
	})
	t.Run("created_at only on insert", func(t *testing.T) {
		task := entity.Task{Schedule: entity.ScheduleAnnual}
		update := taskReplaceUpdate(&task, now)
		set := update["$set"].(bson.M)
		assert.NotContains(t, set, "created_at")
	})
}

func TestTaskPatchFilter(t *testing.T) {
	t.Run("month alone requires a custom schedule", func(t *testing.T) {
		month := 4
		filter := taskPatchFilter("alice", "t-1", &entity.TaskPatch{Month: &month})
		assert.Equal(t, bson.M{
			"owner_id": "alice",
			"task_id":  "t-1",
			"schedule": entity.ScheduleCustom,
		}, filter)
	})
	t.Run("month with a schedule is unconditional", func(t *testing.T) {
		schedule := entity.ScheduleCustom
		month := 4
		filter := taskPatchFilter("alice", "t-1", &entity.TaskPatch{Schedule: &schedule, Month: &month})
		assert.Equal(t, bson.M{"owner_id": "alice", "task_id": "t-1"}, filter)
	})
	t.Run("no month means plain key filter", func(t *testing.T) {
		title := "x"
		filter := taskPatchFilter("alice", "t-1", &entity.TaskPatch{Title: &title})
		assert.Equal(t, bson.M{"owner_id": "alice", "task_id": "t-1"}, filter)
	})
}

func TestTaskPatchUpdate(t *testing.T) {
	now := time.Now().UTC()
	t.Run("only set fields land in the update", func(t *testing.T) {
		title := "New title"
		update := taskPatchUpdate(&entity.TaskPatch{Title: &title}, now)
		assert.Equal(t, bson.M{"$set": bson.M{"title": "New title", "updated_at": now}}, update)
	})
	t.Run("switching to custom sets month", func(t *testing.T) {
		schedule := entity.ScheduleCustom
		month := 3
		update := taskPatchUpdate(&entity.TaskPatch{Schedule: &schedule, Month: &month}, now)
		set := update["$set"].(bson.M)
		assert.Equal(t, entity.ScheduleCustom, set["schedule"])
		assert.Equal(t, 3, set["month"])
		assert.NotContains(t, update, "$unset")
	})
	t.Run("switching off custom unsets stale month", func(t *testing.T) {
		schedule := entity.ScheduleQuarterly
		update := taskPatchUpdate(&entity.TaskPatch{Schedule: &schedule}, now)
		assert.Equal(t, bson.M{"month": ""}, update["$unset"])
	})
	t.Run("empty patch still refreshes updated_at", func(t *testing.T) {
		update := taskPatchUpdate(&entity.TaskPatch{}, now)
		assert.Equal(t, bson.M{"$set": bson.M{"updated_at": now}}, update)
	})
}
