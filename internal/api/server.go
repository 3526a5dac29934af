package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homeright/backend/internal/service"
	"github.com/homeright/backend/pkg/httputil"
)

type Server struct {
	mx              *chi.Mux
	httpServer      *http.Server
	tasksService    service.TasksServiceI
	progressService service.ProgressServiceI
	settingsService service.SettingsServiceI
	summaryService  service.SummaryServiceI
}

type ServicesList struct {
	TasksService    service.TasksServiceI
	ProgressService service.ProgressServiceI
	SettingsService service.SettingsServiceI
	SummaryService  service.SummaryServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		tasksService:    servicesOptions.TasksService,
		progressService: servicesOptions.ProgressService,
		settingsService: servicesOptions.SettingsService,
		summaryService:  servicesOptions.SummaryService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", s.Health)

	s.mx.Route("/tasks", func(r chi.Router) {
		r.Post("/", s.CreateTask)
		r.Get("/", s.ListTasks)
		r.Route("/{task_id}", func(r chi.Router) {
			r.Get("/", s.GetTask)
			r.Put("/", s.ReplaceTask)
			r.Patch("/", s.PatchTask)
			r.Delete("/", s.DeleteTask)
		})
	})

	s.mx.Route("/progress", func(r chi.Router) {
		r.Post("/", s.CreateProgress)
		r.Get("/", s.ListProgress)
		// Literal segment wins over {id}, so by-key stays reachable
		r.Put("/by-key", s.UpsertProgressByKey)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetProgress)
			r.Put("/", s.ReplaceProgress)
			r.Patch("/", s.PatchProgress)
			r.Delete("/", s.DeleteProgress)
		})
	})

	s.mx.Route("/settings/{owner_id}", func(r chi.Router) {
		r.Get("/", s.GetSettings)
		r.Put("/", s.UpsertSettings)
		r.Delete("/", s.DeleteSettings)
	})

	s.mx.Route("/summary", func(r chi.Router) {
		r.Get("/month/{owner_id}/{year}/{month}", s.MonthSummary)
		r.Get("/year/{owner_id}/{year}", s.YearSummary)
	})
}

func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.mx,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
