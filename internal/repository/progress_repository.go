package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errorvalues "github.com/homeright/backend/internal/error_values"
	"github.com/homeright/backend/pkg/entity"
)

type ProgressRepository struct {
	coll *mongo.Collection
}

func NewProgressRepo(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{
		coll: db.Collection(progressCollection),
	}
}

// progressDoc is the stored shape: cost lives as Decimal128 in the database
// and only becomes a decimal.Decimal at the repository boundary.
type progressDoc struct {
	ID        primitive.ObjectID    `bson:"_id,omitempty"`
	OwnerID   string                `bson:"owner_id"`
	TaskID    string                `bson:"task_id"`
	Year      int                   `bson:"year"`
	Month     int                   `bson:"month"`
	Status    entity.ProgressStatus `bson:"status"`
	Cost      *primitive.Decimal128 `bson:"cost"`
	Note      string                `bson:"note"`
	Date      *time.Time            `bson:"date"`
	CreatedAt time.Time             `bson:"created_at"`
	UpdatedAt time.Time             `bson:"updated_at"`
}

func (doc *progressDoc) toEntity() (*entity.Progress, error) {
	cost, err := decimalFromBSON(doc.Cost)
	if err != nil {
		return nil, err
	}
	return &entity.Progress{
		ID:        doc.ID,
		OwnerID:   doc.OwnerID,
		TaskID:    doc.TaskID,
		Year:      doc.Year,
		Month:     doc.Month,
		Status:    doc.Status,
		Cost:      cost,
		Note:      doc.Note,
		Date:      doc.Date,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (pr *ProgressRepository) Create(ctx context.Context, progress *entity.Progress) (*entity.Progress, error) {
	if progress == nil {
		return nil, errors.New("progress is nil")
	}
	now := time.Now().UTC()
	doc, err := progressInsertDoc(progress, now)
	if err != nil {
		return nil, err
	}
	result, err := pr.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errorvalues.ErrProgressExists
		}
		return nil, errors.New("creating progress db error: " + err.Error())
	}
	stored := *progress
	stored.ID = result.InsertedID.(primitive.ObjectID)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	return &stored, nil
}

func (pr *ProgressRepository) GetByID(ctx context.Context, ownerID string, id primitive.ObjectID) (*entity.Progress, error) {
	var doc progressDoc
	err := pr.coll.FindOne(ctx, progressIDFilter(ownerID, id)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errorvalues.ErrProgressNotFound
		}
		return nil, errors.New("getting progress by id error: " + err.Error())
	}
	return doc.toEntity()
}

func (pr *ProgressRepository) List(ctx context.Context, ownerID string, filters ProgressFilters, limit, offset int) ([]*entity.Progress, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := pr.coll.Find(ctx, progressListFilter(ownerID, filters), opts)
	if err != nil {
		return nil, errors.New("listing progress error: " + err.Error())
	}
	docs := make([]progressDoc, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, errors.New("decoding progress list error: " + err.Error())
	}
	records := make([]*entity.Progress, 0, len(docs))
	for i := range docs {
		record, err := docs[i].toEntity()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (pr *ProgressRepository) UpsertByKey(ctx context.Context, progress *entity.Progress) (*entity.Progress, error) {
	if progress == nil {
		return nil, errors.New("progress is nil")
	}
	update, err := progressUpsertUpdate(progress, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var doc progressDoc
	err = pr.coll.FindOneAndUpdate(ctx, progressKeyFilter(progress), update, opts).Decode(&doc)
	if err != nil {
		// A racing first-time upsert for the same natural key can lose to the
		// unique index; surface it as the usual conflict
		if mongo.IsDuplicateKeyError(err) {
			return nil, errorvalues.ErrProgressExists
		}
		return nil, errors.New("upserting progress by key error: " + err.Error())
	}
	return doc.toEntity()
}

func (pr *ProgressRepository) Patch(ctx context.Context, ownerID string, id primitive.ObjectID, patch *entity.ProgressPatch) (*entity.Progress, error) {
	if patch == nil {
		return nil, errors.New("patch is nil")
	}
	update, err := progressPatchUpdate(patch, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc progressDoc
	err = pr.coll.FindOneAndUpdate(ctx, progressIDFilter(ownerID, id), update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errorvalues.ErrProgressNotFound
		}
		return nil, errors.New("patching progress error: " + err.Error())
	}
	return doc.toEntity()
}

func (pr *ProgressRepository) Replace(ctx context.Context, ownerID string, id primitive.ObjectID, progress *entity.Progress) (*entity.Progress, error) {
	if progress == nil {
		return nil, errors.New("progress is nil")
	}
	update, err := progressReplaceUpdate(progress, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc progressDoc
	err = pr.coll.FindOneAndUpdate(ctx, progressIDFilter(ownerID, id), update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errorvalues.ErrProgressNotFound
		}
		// Moving the record onto an occupied natural key trips the unique index
		if mongo.IsDuplicateKeyError(err) {
			return nil, errorvalues.ErrProgressExists
		}
		return nil, errors.New("replacing progress error: " + err.Error())
	}
	return doc.toEntity()
}

func (pr *ProgressRepository) Delete(ctx context.Context, ownerID string, id primitive.ObjectID) error {
	result, err := pr.coll.DeleteOne(ctx, progressIDFilter(ownerID, id))
	if err != nil {
		return errors.New("deleting progress error: " + err.Error())
	}
	if result.DeletedCount == 0 {
		return errorvalues.ErrProgressNotFound
	}
	return nil
}

func progressIDFilter(ownerID string, id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "owner_id": ownerID}
}

func progressKeyFilter(progress *entity.Progress) bson.M {
	return bson.M{
		"owner_id": progress.OwnerID,
		"task_id":  progress.TaskID,
		"year":     progress.Year,
		"month":    progress.Month,
	}
}

func progressListFilter(ownerID string, filters ProgressFilters) bson.M {
	filter := bson.M{"owner_id": ownerID}
	if filters.Year != nil {
		filter["year"] = *filters.Year
	}
	if filters.Month != nil {
		filter["month"] = *filters.Month
	}
	if filters.TaskID != nil {
		filter["task_id"] = *filters.TaskID
	}
	if filters.Status != nil {
		filter["status"] = *filters.Status
	}
	return filter
}

func progressInsertDoc(progress *entity.Progress, now time.Time) (bson.M, error) {
	cost, err := decimalToBSON(progress.Cost)
	if err != nil {
		return nil, err
	}
	return bson.M{
		"owner_id":   progress.OwnerID,
		"task_id":    progress.TaskID,
		"year":       progress.Year,
		"month":      progress.Month,
		"status":     progress.Status,
		"cost":       cost,
		"note":       progress.Note,
		"date":       progress.Date,
		"created_at": now,
		"updated_at": now,
	}, nil
}

func progressUpsertUpdate(progress *entity.Progress, now time.Time) (bson.M, error) {
	cost, err := decimalToBSON(progress.Cost)
	if err != nil {
		return nil, err
	}
	return bson.M{
		"$set": bson.M{
			"status":     progress.Status,
			"cost":       cost,
			"note":       progress.Note,
			"date":       progress.Date,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}, nil
}

func progressReplaceUpdate(progress *entity.Progress, now time.Time) (bson.M, error) {
	cost, err := decimalToBSON(progress.Cost)
	if err != nil {
		return nil, err
	}
	return bson.M{
		"$set": bson.M{
			"task_id":    progress.TaskID,
			"year":       progress.Year,
			"month":      progress.Month,
			"status":     progress.Status,
			"cost":       cost,
			"note":       progress.Note,
			"date":       progress.Date,
			"updated_at": now,
		},
	}, nil
}

func progressPatchUpdate(patch *entity.ProgressPatch, now time.Time) (bson.M, error) {
	set := bson.M{"updated_at": now}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Cost != nil {
		cost, err := decimalToBSON(patch.Cost)
		if err != nil {
			return nil, err
		}
		set["cost"] = cost
	}
	if patch.Note != nil {
		set["note"] = *patch.Note
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	return bson.M{"$set": set}, nil
}
