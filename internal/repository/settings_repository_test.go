package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSettingsDefaultUpdate(t *testing.T) {
	now := time.Now().UTC()
	update := settingsDefaultUpdate(now)
	// Purely $setOnInsert: a second read must not touch the stored record
	assert.Equal(t, bson.M{
		"$setOnInsert": bson.M{
			"selected_year": DefaultSelectedYear,
			"created_at":    now,
			"updated_at":    now,
		},
	}, update)
	assert.NotContains(t, update, "$set")
}

func TestSettingsUpsertUpdate(t *testing.T) {
	now := time.Now().UTC()
	update := settingsUpsertUpdate(2026, now)
	assert.Equal(t, bson.M{
		"$set":         bson.M{"selected_year": 2026, "updated_at": now},
		"$setOnInsert": bson.M{"created_at": now},
	}, update)
}
