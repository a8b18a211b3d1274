package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/internal/service"
	"github.com/limbo/glowlog/pkg/entity"
	"github.com/limbo/glowlog/pkg/httputil"
)

const suggestionTimeout = 60 * time.Second

type FoodSuggestionRequest struct {
	Date     string          `json:"date"`
	Input    string          `json:"input"`
	MealType entity.MealType `json:"mealType"`
}

type ExerciseSuggestionRequest struct {
	Date    string `json:"date"`
	Request string `json:"request"`
}

type SkinCareTipRequest struct {
	SkinType string `json:"skinType"`
	Concerns string `json:"concerns"`
	Weather  string `json:"weather"`
}

type DietSuggestionRequest struct {
	Date string `json:"date"`
}

// dateOrSelected falls back to the cursor when the request names no date
func (s *Server) dateOrSelected(date string) string {
	if date == "" {
		return s.journalService.SelectedDate()
	}
	return date
}

// writeSuggestion sends the result. A merge that couldn't be saved still returns what was merged.
func writeSuggestion(w http.ResponseWriter, logger *slog.Logger, op string, res *service.SuggestionResult, err error) {
	if err != nil && !(res != nil && errors.Is(err, errorvalues.ErrPersistFailed)) {
		writeServiceError(w, logger, op, err)
		return
	}
	if err != nil {
		logger.Error(op+" error: saving failed", slog.String("error", err.Error()))
	}
	if res.Fallback {
		logger.Warn(op + ": advisor unavailable, fallback returned")
	} else {
		logger.Info(op + " done")
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) SuggestFoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req FoodSuggestionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("food suggestion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), suggestionTimeout)
	defer cancel()
	res, err := s.suggestionService.SuggestFoods(ctx, &service.FoodSuggestionRequest{
		Date:     s.dateOrSelected(req.Date),
		Input:    req.Input,
		MealType: req.MealType,
	})
	writeSuggestion(w, logger, "food suggestion", res, err)
}

func (s *Server) SuggestExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ExerciseSuggestionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("exercise suggestion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), suggestionTimeout)
	defer cancel()
	res, err := s.suggestionService.SuggestExercises(ctx, &service.ExerciseSuggestionRequest{
		Date:    s.dateOrSelected(req.Date),
		Request: req.Request,
	})
	writeSuggestion(w, logger, "exercise suggestion", res, err)
}

func (s *Server) SkinCareTip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SkinCareTipRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("skincare tip error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), suggestionTimeout)
	defer cancel()
	res, err := s.suggestionService.SkinCareTip(ctx, &service.SkinCareTipRequest{
		SkinType: req.SkinType,
		Concerns: req.Concerns,
		Weather:  req.Weather,
	})
	writeSuggestion(w, logger, "skincare tip", res, err)
}

func (s *Server) DietSuggestion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req DietSuggestionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("diet suggestion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), suggestionTimeout)
	defer cancel()
	res, err := s.suggestionService.DietSuggestion(ctx, s.dateOrSelected(req.Date))
	writeSuggestion(w, logger, "diet suggestion", res, err)
}
