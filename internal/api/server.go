package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/glowlog/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                *chi.Mux
	journalService    service.JournalServiceI
	suggestionService service.SuggestionServiceI
}

type ServicesList struct {
	JournalService    service.JournalServiceI
	SuggestionService service.SuggestionServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		journalService:    servicesOptions.JournalService,
		suggestionService: servicesOptions.SuggestionService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/profile", s.GetProfile)
		r.Patch("/profile", s.UpdateProfile)

		r.Get("/logs", s.GetLogs)
		r.Route("/logs/{date}", func(r chi.Router) {
			r.Get("/", s.GetDayLog)
			r.Patch("/", s.UpdateDayLog)
			r.Post("/foods", s.AddFood)
			r.Delete("/foods/{id}", s.RemoveFood)
			r.Post("/exercises", s.AddExercises)
			r.Post("/exercises/{id}/toggle", s.ToggleExercise)
			r.Post("/exercises/defaults", s.SeedDefaultRoutines)
			r.Put("/body-check", s.SetBodyCheck)
		})

		r.Get("/cursor", s.GetCursor)
		r.Put("/cursor", s.SelectDate)
		r.Post("/cursor/shift", s.ShiftDate)
		r.Get("/cursor/log", s.GetSelectedDayLog)

		r.Get("/insights/weight", s.GetWeightTrend)
		r.Get("/insights/bmi", s.GetBMI)
		r.Get("/insights/medication", s.GetMedicationCourse)

		r.Post("/suggestions/foods", s.SuggestFoods)
		r.Post("/suggestions/exercises", s.SuggestExercises)
		r.Post("/suggestions/skincare", s.SkinCareTip)
		r.Post("/suggestions/diet", s.DietSuggestion)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	slog.Info("server stopped")
	return nil
}
