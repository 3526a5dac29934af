package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errorvalues "github.com/homeright/backend/internal/error_values"
	"github.com/homeright/backend/pkg/entity"
)

type TasksRepository struct {
	coll *mongo.Collection
}

func NewTasksRepo(db *mongo.Database) *TasksRepository {
	return &TasksRepository{
		coll: db.Collection(tasksCollection),
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := tr.coll.InsertOne(ctx, task)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errorvalues.ErrTaskExists
		}
		return errors.New("creating task db error: " + err.Error())
	}
	return nil
}

func (tr *TasksRepository) GetByKey(ctx context.Context, ownerID, taskID string) (*entity.Task, error) {
	var task entity.Task
	err := tr.coll.FindOne(ctx, taskKeyFilter(ownerID, taskID)).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by key error: " + err.Error())
	}
	return &task, nil
}

func (tr *TasksRepository) List(ctx context.Context, ownerID string, filters TaskFilters, limit, offset int) ([]*entity.Task, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "is_builtin", Value: -1}, {Key: "title", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := tr.coll.Find(ctx, taskListFilter(ownerID, filters), opts)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	tasks := make([]*entity.Task, 0)
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, errors.New("decoding tasks list error: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Replace(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	if task == nil {
		return nil, errors.New("task is nil")
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var replaced entity.Task
	err := tr.coll.FindOneAndUpdate(
		ctx,
		taskKeyFilter(task.OwnerID, task.TaskID),
		taskReplaceUpdate(task, time.Now().UTC()),
		opts,
	).Decode(&replaced)
	if err != nil {
		// Two racing first-time upserts for one key can still collide on the
		// unique index; one of them loses with a duplicate-key error
		if mongo.IsDuplicateKeyError(err) {
			return nil, errorvalues.ErrTaskExists
		}
		return nil, errors.New("replacing task error: " + err.Error())
	}
	return &replaced, nil
}

func (tr *TasksRepository) Patch(ctx context.Context, ownerID, taskID string, patch *entity.TaskPatch) (*entity.Task, error) {
	if patch == nil {
		return nil, errors.New("patch is nil")
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var patched entity.Task
	err := tr.coll.FindOneAndUpdate(
		ctx,
		taskPatchFilter(ownerID, taskID, patch),
		taskPatchUpdate(patch, time.Now().UTC()),
		opts,
	).Decode(&patched)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("patching task error: " + err.Error())
	}
	return &patched, nil
}

func (tr *TasksRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	result, err := tr.coll.DeleteOne(ctx, taskKeyFilter(ownerID, taskID))
	if err != nil {
		return errors.New("deleting task error: " + err.Error())
	}
	if result.DeletedCount == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func taskKeyFilter(ownerID, taskID string) bson.M {
	return bson.M{"owner_id": ownerID, "task_id": taskID}
}

// A month sent without a schedule may only land on a document whose stored
// schedule is custom; folding that condition into the update filter keeps the
// check and the write one atomic operation.
func taskPatchFilter(ownerID, taskID string, patch *entity.TaskPatch) bson.M {
	filter := taskKeyFilter(ownerID, taskID)
	if patch.Month != nil && patch.Schedule == nil {
		filter["schedule"] = entity.ScheduleCustom
	}
	return filter
}

func taskListFilter(ownerID string, filters TaskFilters) bson.M {
	filter := bson.M{"owner_id": ownerID}
	if filters.Schedule != nil {
		filter["schedule"] = *filters.Schedule
	}
	if filters.Month != nil {
		filter["month"] = *filters.Month
	}
	if filters.IsBuiltin != nil {
		filter["is_builtin"] = *filters.IsBuiltin
	}
	return filter
}

func taskReplaceUpdate(task *entity.Task, now time.Time) bson.M {
	set := bson.M{
		"title":      task.Title,
		"detail":     task.Detail,
		"schedule":   task.Schedule,
		"is_builtin": task.IsBuiltin,
		"updated_at": now,
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}
	if task.Month != nil {
		set["month"] = *task.Month
	} else {
		update["$unset"] = bson.M{"month": ""}
	}
	return update
}

func taskPatchUpdate(patch *entity.TaskPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	update := bson.M{"$set": set}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Detail != nil {
		set["detail"] = *patch.Detail
	}
	if patch.Schedule != nil {
		set["schedule"] = *patch.Schedule
		// Keeps month present iff the schedule is custom
		if *patch.Schedule != entity.ScheduleCustom {
			update["$unset"] = bson.M{"month": ""}
		}
	}
	if patch.Month != nil {
		set["month"] = *patch.Month
	}
	if patch.IsBuiltin != nil {
		set["is_builtin"] = *patch.IsBuiltin
	}
	return update
}
