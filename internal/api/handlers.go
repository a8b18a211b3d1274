package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/internal/journal"
	"github.com/limbo/glowlog/internal/service"
	"github.com/limbo/glowlog/pkg/entity"
	"github.com/limbo/glowlog/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type AddFoodRequest struct {
	Items []service.NewFoodRequest `json:"items"`
}

type AddExercisesRequest struct {
	Items []service.NewExerciseRequest `json:"items"`
}

type BodyCheckRequest struct {
	Image string `json:"image"`
}

type SelectDateRequest struct {
	Date string `json:"date"`
}

type ShiftDateRequest struct {
	Days int `json:"days"`
}

type CursorResponse struct {
	Date string `json:"date"`
}

// DayResponse is a day log with the figures derived from it
type DayResponse struct {
	Log     entity.DailyLog     `json:"log"`
	Summary journal.DaySummary  `json:"summary"`
	Meals   []journal.MealGroup `json:"meals"`
}

type WeightTrendResponse struct {
	Range  string                `json:"range"`
	Points []journal.WeightPoint `json:"points"`
}

type BMIResponse struct {
	Date string `json:"date"`
	journal.BMI
}

type MedicationResponse struct {
	Configured bool                      `json:"configured"`
	Course     *journal.MedicationCourse `json:"course,omitempty"`
}

func newDayResponse(log entity.DailyLog) DayResponse {
	return DayResponse{
		Log:     log,
		Summary: journal.Summarize(log),
		Meals:   journal.MealBreakdown(log),
	}
}

// writeServiceError maps service errors onto statuses. op names the action for the log line.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidDate):
		logger.Error(op+" error: invalid date", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, errorvalues.ErrInvalidRequest):
		logger.Error(op+" error: validation failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrInvalidImage):
		logger.Error(op + " error: invalid image")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid image, expected base64 data url", nil)
	case errors.Is(err, errorvalues.ErrPersistFailed):
		logger.Error(op+" error: saving failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "change applied but could not be saved", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.journalService.Profile())
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var patch entity.ProfilePatch
	if err := httputil.DecodeJSON(r, &patch); err != nil {
		logger.Error("profile update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.journalService.UpdateProfile(ctx, patch)
	if err != nil {
		writeServiceError(w, logger, "profile update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("profile updated")
}

func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.journalService.Logs())
}

func (s *Server) GetDayLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	log, err := s.journalService.DayLog(chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, logger, "day log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newDayResponse(log))
}

func (s *Server) UpdateDayLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var patch entity.DailyLogPatch
	if err := httputil.DecodeJSON(r, &patch); err != nil {
		logger.Error("day log update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.journalService.UpdateDayLog(ctx, chi.URLParam(r, "date"), patch)
	if err != nil {
		writeServiceError(w, logger, "day log update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newDayResponse(log))
	logger.Info("day log updated", slog.String("date", log.Date))
}

func (s *Server) AddFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AddFoodRequest
	if err := httputil.DecodeJSON(r, &req); err != nil || len(req.Items) == 0 {
		logger.Error("adding food error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.journalService.AddFood(ctx, chi.URLParam(r, "date"), req.Items)
	if err != nil {
		writeServiceError(w, logger, "adding food", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, newDayResponse(log))
	logger.Info("food added", slog.String("date", log.Date), slog.Int("items", len(req.Items)))
}

func (s *Server) RemoveFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.journalService.RemoveFood(ctx, chi.URLParam(r, "date"), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, logger, "removing food", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newDayResponse(log))
	logger.Info("food removed", slog.String("date", log.Date))
}

func (s *Server) AddExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AddExercisesRequest
	if err := httputil.DecodeJSON(r, &req); err != nil || len(req.Items) == 0 {
		logger.Error("adding exercises error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.journalService.AddExercises(ctx, chi.URLParam(r, "date"), req.Items)
	if err != nil {
		writeServiceError(w, logger, "adding exercises", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, newDayResponse(log))
	logger.Info("exercises added", slog.String("date", log.Date), slog.Int("items", len(req.Items)))
}

func (s *Server) ToggleExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.journalService.ToggleExercise(ctx, chi.URLParam(r, "date"), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, logger, "toggling exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newDayResponse(log))
}

func (s *Server) SeedDefaultRoutines(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.journalService.SeedDefaultRoutines(ctx, chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, logger, "seeding routines", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newDayResponse(log))
}

func (s *Server) SetBodyCheck(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req BodyCheckRequest
	if err := httputil.DecodeJSON(r, &req); err != nil || req.Image == "" {
		logger.Error("body check error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*3)
	defer cancel()
	log, err := s.journalService.SetBodyCheck(ctx, chi.URLParam(r, "date"), req.Image)
	if err != nil {
		writeServiceError(w, logger, "body check", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newDayResponse(log))
	logger.Info("body check stored", slog.String("date", log.Date))
}

func (s *Server) GetCursor(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, CursorResponse{Date: s.journalService.SelectedDate()})
}

func (s *Server) SelectDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SelectDateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("selecting date error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := s.journalService.SelectDate(req.Date); err != nil {
		writeServiceError(w, logger, "selecting date", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CursorResponse{Date: s.journalService.SelectedDate()})
}

func (s *Server) ShiftDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ShiftDateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("shifting date error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CursorResponse{Date: s.journalService.ShiftDate(req.Days)})
}

func (s *Server) GetSelectedDayLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	log, err := s.journalService.DayLog(s.journalService.SelectedDate())
	if err != nil {
		writeServiceError(w, logger, "selected day log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newDayResponse(log))
}

func (s *Server) GetWeightTrend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	rng := r.URL.Query().Get("range")
	var days int
	switch rng {
	case "", "2w":
		rng, days = "2w", journal.TrendTwoWeeks
	case "4w":
		days = journal.TrendFourWeeks
	default:
		logger.Error("weight trend error: unknown range", slog.String("range", rng))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "range must be 2w or 4w", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WeightTrendResponse{
		Range:  rng,
		Points: s.journalService.WeightTrend(days),
	})
}

func (s *Server) GetBMI(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.journalService.SelectedDate()
	}
	bmi, err := s.journalService.BMI(date)
	if err != nil {
		writeServiceError(w, logger, "bmi", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, BMIResponse{Date: date, BMI: bmi})
}

func (s *Server) GetMedicationCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := s.journalService.MedicationCourse()
	if !ok {
		httputil.WriteJSONResponse(w, http.StatusOK, MedicationResponse{})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MedicationResponse{Configured: true, Course: &course})
}
