// internal/handlers/stats_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_5_goal_keep/internal/handlers"
	"go_5_goal_keep/internal/middleware"
	"go_5_goal_keep/internal/model"
	"go_5_goal_keep/internal/service/mocks"
)

func TestStatsHandler_GetStats(t *testing.T) {
	userID := uuid.New()

	setup := func(t *testing.T) (*mocks.MockStatsService, *chi.Mux) {
		mockStatsService := mocks.NewMockStatsService(t)
		statsHandler := handlers.NewStatsHandler(mockStatsService, nil)
		router := chi.NewRouter()
		router.Use(middleware.DevUserContextMiddleware)
		router.Get("/api/v1/stats", statsHandler.GetStats)
		return mockStatsService, router
	}

	t.Run("Success - Returns dashboard stats", func(t *testing.T) {
		mockStatsService, router := setup(t)

		expected := &model.StatsResponse{
			DailyRate:      50.0,
			CompletedToday: 1,
			WeeklyMomentum: make([]model.MomentumDay, 7),
			LevelHistogram: map[int]int{1: 1, 2: 1},
			Summary: model.StatsSummary{
				TotalGoals:       2,
				TotalCompletions: 10,
				AverageLevel:     1.5,
				MaxStreak:        8,
			},
		}
		mockStatsService.On("GetStats", mock.Anything, userID, mock.AnythingOfType("time.Time")).
			Return(expected, nil).Once()

		req := createRequest(t, "GET", "/api/v1/stats", nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.StatsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 50.0, resp.DailyRate)
		assert.Equal(t, 2, resp.Summary.TotalGoals)
		assert.Len(t, resp.WeeklyMomentum, 7)
	})

	t.Run("Fail - Missing auth returns 403", func(t *testing.T) {
		_, router := setup(t)

		req := createRequest(t, "GET", "/api/v1/stats", nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
