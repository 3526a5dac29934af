// @title Home maintenance API
// @description CRUD and summary-reporting backend for the HomeRight app
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/homeright/backend/internal/api"
	"github.com/homeright/backend/internal/repository"
	"github.com/homeright/backend/internal/service"
	"github.com/homeright/backend/pkg/cleanup"
	"github.com/homeright/backend/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	db := repository.Connect(&repository.MongoCfg{
		URI: cfg.GetStringOr("MONGODB_URI", "mongodb://localhost:27017"),
		DB:  cfg.GetStringOr("MONGODB_DB", "homeright"),
	})
	provisionCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	if err := repository.EnsureIndexes(provisionCtx, db); err != nil {
		log.Fatal("provisioning indexes error: " + err.Error())
	}

	tasksRepo := repository.NewTasksRepo(db)
	progressRepo := repository.NewProgressRepo(db)
	serv := api.New(&api.ServicesList{
		TasksService:    service.NewTasksService(tasksRepo),
		ProgressService: service.NewProgressService(progressRepo),
		SettingsService: service.NewSettingsService(repository.NewSettingsRepo(db)),
		SummaryService:  service.NewSummaryService(tasksRepo, progressRepo),
	})

	go func() {
		err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: " + err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Second*15)
	defer cancelShutdown()
	if err := serv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown error: " + err.Error())
	}
	cleanup.CleanUp()
}
