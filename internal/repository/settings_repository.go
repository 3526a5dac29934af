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

// DefaultSelectedYear is what a never-seen owner starts with.
const DefaultSelectedYear = 2024

type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepo(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		coll: db.Collection(settingsCollection),
	}
}

func (sr *SettingsRepository) GetOrCreateDefault(ctx context.Context, ownerID string) (*entity.Settings, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var settings entity.Settings
	err := sr.coll.FindOneAndUpdate(
		ctx,
		settingsFilter(ownerID),
		settingsDefaultUpdate(time.Now().UTC()),
		opts,
	).Decode(&settings)
	if err != nil {
		return nil, errors.New("get-or-create settings error: " + err.Error())
	}
	return &settings, nil
}

func (sr *SettingsRepository) Upsert(ctx context.Context, ownerID string, selectedYear int) (*entity.Settings, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var settings entity.Settings
	err := sr.coll.FindOneAndUpdate(
		ctx,
		settingsFilter(ownerID),
		settingsUpsertUpdate(selectedYear, time.Now().UTC()),
		opts,
	).Decode(&settings)
	if err != nil {
		return nil, errors.New("upserting settings error: " + err.Error())
	}
	return &settings, nil
}

func (sr *SettingsRepository) Delete(ctx context.Context, ownerID string) error {
	result, err := sr.coll.DeleteOne(ctx, settingsFilter(ownerID))
	if err != nil {
		return errors.New("deleting settings error: " + err.Error())
	}
	if result.DeletedCount == 0 {
		return errorvalues.ErrSettingsNotFound
	}
	return nil
}

func settingsFilter(ownerID string) bson.M {
	return bson.M{"owner_id": ownerID}
}

// The upsert filter supplies owner_id on insert; $setOnInsert fills the rest,
// and an existing record passes through untouched.
func settingsDefaultUpdate(now time.Time) bson.M {
	return bson.M{
		"$setOnInsert": bson.M{
			"selected_year": DefaultSelectedYear,
			"created_at":    now,
			"updated_at":    now,
		},
	}
}

func settingsUpsertUpdate(selectedYear int, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"selected_year": selectedYear,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
}
