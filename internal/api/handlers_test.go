package api_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/limbo/glowlog/internal/api"
	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/internal/imagestore"
	"github.com/limbo/glowlog/internal/journal"
	"github.com/limbo/glowlog/internal/repository"
	"github.com/limbo/glowlog/internal/service"
	"github.com/limbo/glowlog/internal/service/mocks"
	"github.com/limbo/glowlog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var clock = time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)

// newJournalServer wires real services over an in-memory sqlite slot.
// Suggestions go to a mock.
func newJournalServer(t *testing.T) (http.Handler, *mocks.MockSuggestionServiceI) {
	t.Helper()
	db, err := repository.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	store := service.NewDocumentStore(repository.NewSQLiteDocumentsRepoWithDB(db), "")
	journalService := service.NewJournalService(store, imagestore.NewInlineStore()).
		WithClock(func() time.Time { return clock })
	require.NoError(t, journalService.Init(context.Background()))
	suggestions := mocks.NewMockSuggestionServiceI(gomock.NewController(t))
	serv := api.New(&api.ServicesList{
		JournalService:    journalService,
		SuggestionService: suggestions,
	})
	return serv.Handler(), suggestions
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		data, err := sonic.ConfigDefault.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func ptr[T any](v T) *T {
	return &v
}

func TestDayLogHandlers(t *testing.T) {
	h, _ := newJournalServer(t)
	const day = "/api/v1/logs/2024-03-10"

	t.Run("template for empty day", func(t *testing.T) {
		rr := do(t, h, http.MethodGet, day, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[api.DayResponse](t, rr)
		assert.Equal(t, "2024-03-10", resp.Log.Date)
		assert.Empty(t, resp.Log.Foods)
		assert.Len(t, resp.Meals, 4)
		logs := decode[map[string]entity.DailyLog](t, do(t, h, http.MethodGet, "/api/v1/logs", nil))
		assert.Empty(t, logs)
	})
	t.Run("patch day", func(t *testing.T) {
		rr := do(t, h, http.MethodPatch, day, entity.DailyLogPatch{
			SleepHours:     ptr(6.5),
			MedicationDose: ptr(2.5),
			SkinCareFields: &entity.SkinCarePatch{MorningWash: ptr(true), EveningWash: ptr(true)},
		})
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[api.DayResponse](t, rr)
		assert.Equal(t, 60.0, resp.Log.Weight)
		assert.Equal(t, 6.5, resp.Log.SleepHours)
		assert.True(t, resp.Summary.MedicationTaken)
		assert.True(t, resp.Summary.SkinCareComplete)
	})
	t.Run("dose checkbox", func(t *testing.T) {
		rr := do(t, h, http.MethodPatch, day, entity.DailyLogPatch{MedicationTaken: ptr(false)})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.False(t, decode[api.DayResponse](t, rr).Summary.MedicationTaken)

		rr = do(t, h, http.MethodPatch, day, entity.DailyLogPatch{MedicationTaken: ptr(true)})
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[api.DayResponse](t, rr)
		assert.True(t, resp.Summary.MedicationTaken)
		assert.Equal(t, journal.DefaultMedicationDose, resp.Log.MedicationDose)
	})
	var foodID string
	t.Run("add food", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, day+"/foods", api.AddFoodRequest{Items: []service.NewFoodRequest{
			{Name: "Kimbap", Calories: 480, Protein: 12, MealType: entity.MealLunch},
			{Name: "Latte", Calories: 150},
		}})
		require.Equal(t, http.StatusCreated, rr.Code)
		resp := decode[api.DayResponse](t, rr)
		require.Len(t, resp.Log.Foods, 2)
		assert.Equal(t, 630.0, resp.Summary.TotalCalories)
		assert.Equal(t, 150.0, resp.Meals[0].Calories, "latte without meal counts as breakfast")
		assert.Equal(t, 480.0, resp.Meals[1].Calories)
		foodID = resp.Log.Foods[0].ID
	})
	t.Run("remove food", func(t *testing.T) {
		rr := do(t, h, http.MethodDelete, day+"/foods/"+foodID, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[api.DayResponse](t, rr)
		require.Len(t, resp.Log.Foods, 1)
		assert.Equal(t, "Latte", resp.Log.Foods[0].Name)
		rr = do(t, h, http.MethodDelete, day+"/foods/"+foodID, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("exercises", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, day+"/exercises/defaults", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[api.DayResponse](t, rr)
		require.Len(t, resp.Log.Exercises, 3)

		rr = do(t, h, http.MethodPost, day+"/exercises", api.AddExercisesRequest{Items: []service.NewExerciseRequest{
			{Name: "Jog", DurationMinutes: 20, Type: entity.ExerciseCardio},
		}})
		require.Equal(t, http.StatusCreated, rr.Code)
		resp = decode[api.DayResponse](t, rr)
		require.Len(t, resp.Log.Exercises, 4)

		rr = do(t, h, http.MethodPost, day+"/exercises/"+resp.Log.Exercises[3].ID+"/toggle", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp = decode[api.DayResponse](t, rr)
		assert.True(t, resp.Log.Exercises[3].Completed)
		assert.Equal(t, 20.0, resp.Summary.CompletedExerciseMinutes)
	})
	t.Run("body check", func(t *testing.T) {
		image := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png"))
		rr := do(t, h, http.MethodPut, day+"/body-check", api.BodyCheckRequest{Image: image})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, image, decode[api.DayResponse](t, rr).Log.BodyCheckImage)

		rr = do(t, h, http.MethodPut, day+"/body-check", api.BodyCheckRequest{Image: "not an image"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("everything was stored", func(t *testing.T) {
		logs := decode[map[string]entity.DailyLog](t, do(t, h, http.MethodGet, "/api/v1/logs", nil))
		require.Contains(t, logs, "2024-03-10")
		assert.Len(t, logs["2024-03-10"].Foods, 1)
		assert.Len(t, logs["2024-03-10"].Exercises, 4)
	})
	t.Run("bad requests", func(t *testing.T) {
		testCases := []struct {
			Desc   string
			Method string
			Path   string
			Body   any
		}{
			{Desc: "invalid date", Method: http.MethodGet, Path: "/api/v1/logs/2024-13-01"},
			{Desc: "empty body", Method: http.MethodPatch, Path: day},
			{Desc: "no food items", Method: http.MethodPost, Path: day + "/foods", Body: api.AddFoodRequest{}},
			{Desc: "invalid food", Method: http.MethodPost, Path: day + "/foods", Body: api.AddFoodRequest{
				Items: []service.NewFoodRequest{{Name: "", Calories: 10}},
			}},
			{Desc: "invalid exercise type", Method: http.MethodPost, Path: day + "/exercises", Body: api.AddExercisesRequest{
				Items: []service.NewExerciseRequest{{Name: "Dance", Type: "party"}},
			}},
			{Desc: "invalid profile", Method: http.MethodPatch, Path: "/api/v1/profile", Body: entity.ProfilePatch{
				BirthDate: ptr("yesterday"),
			}},
		}
		for _, tc := range testCases {
			t.Run(tc.Desc, func(t *testing.T) {
				rr := do(t, h, tc.Method, tc.Path, tc.Body)
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.EqualValues(t, http.StatusBadRequest, decode[map[string]any](t, rr)["code"])
			})
		}
	})
}

func TestProfileHandlers(t *testing.T) {
	h, _ := newJournalServer(t)
	profile := decode[entity.Profile](t, do(t, h, http.MethodGet, "/api/v1/profile", nil))
	assert.Equal(t, journal.DefaultProfile(), profile)

	rr := do(t, h, http.MethodPatch, "/api/v1/profile", entity.ProfilePatch{Name: ptr("Mina"), Height: ptr(160.0)})
	require.Equal(t, http.StatusOK, rr.Code)
	profile = decode[entity.Profile](t, rr)
	assert.Equal(t, "Mina", profile.Name)
	assert.Equal(t, 160.0, profile.Height)
	assert.Equal(t, entity.DietTypeStrict, profile.DietType)
}

func TestCursorHandlers(t *testing.T) {
	h, _ := newJournalServer(t)
	cursor := func(rr *httptest.ResponseRecorder) string {
		require.Equal(t, http.StatusOK, rr.Code)
		return decode[api.CursorResponse](t, rr).Date
	}
	assert.Equal(t, "2024-03-10", cursor(do(t, h, http.MethodGet, "/api/v1/cursor", nil)))
	assert.Equal(t, "2024-03-01", cursor(do(t, h, http.MethodPost, "/api/v1/cursor/shift", api.ShiftDateRequest{Days: -9})))
	assert.Equal(t, "2023-12-31", cursor(do(t, h, http.MethodPut, "/api/v1/cursor", api.SelectDateRequest{Date: "2023-12-31"})))
	assert.Equal(t, "2024-01-01", cursor(do(t, h, http.MethodPost, "/api/v1/cursor/shift", api.ShiftDateRequest{Days: 1})))

	rr := do(t, h, http.MethodPut, "/api/v1/cursor", api.SelectDateRequest{Date: "01.01.2024"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/v1/cursor/log", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2024-01-01", decode[api.DayResponse](t, rr).Log.Date)
	logs := decode[map[string]entity.DailyLog](t, do(t, h, http.MethodGet, "/api/v1/logs", nil))
	assert.Empty(t, logs, "navigation never writes")
}

func TestInsightHandlers(t *testing.T) {
	h, _ := newJournalServer(t)
	for i, w := range []float64{65, 64.5, 64} {
		path := fmt.Sprintf("/api/v1/logs/2024-03-%02d", i+1)
		rr := do(t, h, http.MethodPatch, path, entity.DailyLogPatch{Weight: ptr(w)})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := do(t, h, http.MethodGet, "/api/v1/insights/weight", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	trend := decode[api.WeightTrendResponse](t, rr)
	assert.Equal(t, "2w", trend.Range)
	require.Len(t, trend.Points, 3)
	assert.Equal(t, 64.0, *trend.Points[2].Weight)
	assert.Nil(t, trend.Points[2].DoseMarker)

	rr = do(t, h, http.MethodGet, "/api/v1/insights/weight?range=4w", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "4w", decode[api.WeightTrendResponse](t, rr).Range)
	rr = do(t, h, http.MethodGet, "/api/v1/insights/weight?range=1y", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/v1/insights/bmi?date=2024-03-03", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	bmi := decode[api.BMIResponse](t, rr)
	assert.Equal(t, 22.1, bmi.Value)
	assert.Equal(t, journal.BMINormal, bmi.Category)

	rr = do(t, h, http.MethodGet, "/api/v1/insights/medication", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decode[api.MedicationResponse](t, rr).Configured)
	do(t, h, http.MethodPatch, "/api/v1/profile", entity.ProfilePatch{MedicationStartDate: ptr("2024-03-01")})
	rr = do(t, h, http.MethodGet, "/api/v1/insights/medication", nil)
	med := decode[api.MedicationResponse](t, rr)
	require.True(t, med.Configured)
	assert.Equal(t, "2024-05-01", med.Course.EndDate)
	assert.Equal(t, 9, med.Course.DaysElapsed)
}

func TestSuggestionHandlers(t *testing.T) {
	h, suggestions := newJournalServer(t)

	t.Run("foods default to selected date", func(t *testing.T) {
		suggestions.EXPECT().SuggestFoods(gomock.Any(), &service.FoodSuggestionRequest{
			Date:  "2024-03-10",
			Input: "ramen",
		}).Return(&service.SuggestionResult{Foods: []entity.FoodItem{{ID: "f1", Name: "Ramen", Calories: 500}}}, nil)
		rr := do(t, h, http.MethodPost, "/api/v1/suggestions/foods", api.FoodSuggestionRequest{Input: "ramen"})
		require.Equal(t, http.StatusOK, rr.Code)
		res := decode[service.SuggestionResult](t, rr)
		require.Len(t, res.Foods, 1)
		assert.False(t, res.Fallback)
	})
	t.Run("fallback is a successful response", func(t *testing.T) {
		suggestions.EXPECT().SkinCareTip(gomock.Any(), &service.SkinCareTipRequest{SkinType: "oily"}).
			Return(&service.SuggestionResult{Text: service.SkinCareFallback, Fallback: true}, nil)
		rr := do(t, h, http.MethodPost, "/api/v1/suggestions/skincare", api.SkinCareTipRequest{SkinType: "oily"})
		require.Equal(t, http.StatusOK, rr.Code)
		res := decode[service.SuggestionResult](t, rr)
		assert.True(t, res.Fallback)
		assert.Equal(t, service.SkinCareFallback, res.Text)
	})
	t.Run("validation error", func(t *testing.T) {
		suggestions.EXPECT().SuggestExercises(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrInvalidRequest)
		rr := do(t, h, http.MethodPost, "/api/v1/suggestions/exercises", api.ExerciseSuggestionRequest{Date: "2024-03-10"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("merged but not saved", func(t *testing.T) {
		suggestions.EXPECT().SuggestExercises(gomock.Any(), gomock.Any()).
			Return(&service.SuggestionResult{Exercises: []entity.ExerciseItem{{ID: "e1", Name: "Walk"}}}, errorvalues.ErrPersistFailed)
		rr := do(t, h, http.MethodPost, "/api/v1/suggestions/exercises", api.ExerciseSuggestionRequest{Request: "walk"})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[service.SuggestionResult](t, rr).Exercises, 1)
	})
	t.Run("diet", func(t *testing.T) {
		suggestions.EXPECT().DietSuggestion(gomock.Any(), "2024-03-09").Return(&service.SuggestionResult{Text: "Tofu salad"}, nil)
		rr := do(t, h, http.MethodPost, "/api/v1/suggestions/diet", api.DietSuggestionRequest{Date: "2024-03-09"})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Tofu salad", decode[service.SuggestionResult](t, rr).Text)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, "/api/v1/suggestions/diet", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestServiceErrorMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	journalService := mocks.NewMockJournalServiceI(ctrl)
	h := api.New(&api.ServicesList{
		JournalService:    journalService,
		SuggestionService: mocks.NewMockSuggestionServiceI(ctrl),
	}).Handler()
	testCases := []struct {
		Desc   string
		Err    error
		Status int
	}{
		{Desc: "persist failure", Err: errors.Join(errorvalues.ErrPersistFailed, errors.New("disk full")), Status: http.StatusInternalServerError},
		{Desc: "invalid date", Err: errorvalues.ErrInvalidDate, Status: http.StatusBadRequest},
		{Desc: "unexpected", Err: errors.New("boom"), Status: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			journalService.EXPECT().ToggleExercise(gomock.Any(), "2024-03-10", "e1").Return(entity.DailyLog{}, tc.Err)
			rr := do(t, h, http.MethodPost, "/api/v1/logs/2024-03-10/exercises/e1/toggle", nil)
			assert.Equal(t, tc.Status, rr.Code)
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestRequestID(t *testing.T) {
	h, _ := newJournalServer(t)
	const id = "7b0a7c4e-54a1-4c1f-9a43-3f6f1c2d9e10"

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cursor", nil)
	req.Header.Set("X-Request-ID", id)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, id, rr.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cursor", nil)
	req.Header.Set("X-Request-ID", "not-a-uuid")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	got := rr.Header().Get("X-Request-ID")
	assert.NotEqual(t, "not-a-uuid", got)
	assert.Len(t, got, 36)
}
