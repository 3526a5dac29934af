package repository

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/homeright/backend/pkg/cleanup"
)

const (
	tasksCollection    = "tasks"
	progressCollection = "progress"
	settingsCollection = "settings"
)

type MongoCfg struct {
	URI string
	DB  string
}

// Connect acquires the process-lifetime client, verifies it and registers its
// disconnect with cleanup. Called once from the composition root.
func Connect(cfg *MongoCfg) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Fatal("creating mongo client error: " + err.Error())
	}
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatal("error while pinging mongo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "disconnecting mongo client",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			defer cancel()
			return client.Disconnect(ctx)
		},
	})
	return client.Database(cfg.DB)
}
