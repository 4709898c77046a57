// internal/handlers/goal_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

func setupGoalRouter(t *testing.T) (*mocks.MockGoalService, *mocks.MockStatsService, *chi.Mux) {
	t.Helper()
	mockGoalService := mocks.NewMockGoalService(t)
	mockStatsService := mocks.NewMockStatsService(t)
	goalHandler := handlers.NewGoalHandler(mockGoalService, mockStatsService, nil)

	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/goals", goalHandler.PostGoal)
	router.Get("/api/v1/goals", goalHandler.GetGoals)
	router.Get("/api/v1/goals/{goal_id}", goalHandler.GetGoal)
	router.Put("/api/v1/goals/{goal_id}", goalHandler.PutGoal)
	router.Delete("/api/v1/goals/{goal_id}", goalHandler.DeleteGoal)
	router.Post("/api/v1/goals/{goal_id}/complete", goalHandler.CompleteGoal)
	router.Get("/api/v1/goals/{goal_id}/calendar", goalHandler.GetCalendar)
	return mockGoalService, mockStatsService, router
}

func TestGoalHandler_PostGoal(t *testing.T) {
	userID := uuid.New()

	validReqBody := model.CreateGoalRequest{
		Title:       "毎日ランニング",
		DailyTarget: "30分走る",
		Category:    "Fitness",
	}
	expectedGoal := &model.Goal{
		GoalID:       uuid.New(),
		UserID:       userID,
		Title:        validReqBody.Title,
		DailyTarget:  validReqBody.DailyTarget,
		Category:     model.CategoryFitness,
		CurrentLevel: 1,
		Streak:       0,
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(goalService *mocks.MockGoalService)
		expectedStatus int
	}{
		{
			name:   "Success - Valid request",
			userID: &userID,
			body:   validReqBody,
			setupMock: func(goalService *mocks.MockGoalService) {
				goalService.On("CreateGoal", mock.Anything, userID, &validReqBody).
					Return(expectedGoal, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing user ID header",
			userID:         nil,
			body:           validReqBody,
			setupMock:      func(goalService *mocks.MockGoalService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Fail - Validation error (missing title)",
			userID:         &userID,
			body:           model.CreateGoalRequest{DailyTarget: "30分走る"},
			setupMock:      func(goalService *mocks.MockGoalService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockGoalService, _, router := setupGoalRouter(t)
			tc.setupMock(mockGoalService)

			req := createRequest(t, "POST", "/api/v1/goals", tc.body, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var respGoal model.Goal
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respGoal))
				assert.Equal(t, expectedGoal.Title, respGoal.Title)
				assert.Equal(t, 1, respGoal.CurrentLevel)
			} else {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Code)
			}
		})
	}
}

func TestGoalHandler_CompleteGoal(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()
	now := time.Now()

	completedGoal := &model.Goal{
		GoalID:        goalID,
		UserID:        userID,
		Title:         "毎日ランニング",
		CurrentLevel:  2,
		Streak:        7,
		LastCompleted: &now,
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		setupMock      func(goalService *mocks.MockGoalService)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:   "Success - Completion with level up",
			userID: &userID,
			setupMock: func(goalService *mocks.MockGoalService) {
				goalService.On("CompleteGoal", mock.Anything, userID, goalID, mock.AnythingOfType("time.Time")).
					Return(&model.CompleteGoalResponse{
						Goal:      completedGoal,
						LeveledUp: true,
						OldLevel:  1,
						NewLevel:  2,
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.CompleteGoalResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.True(t, resp.LeveledUp)
				assert.Equal(t, 1, resp.OldLevel)
				assert.Equal(t, 2, resp.NewLevel)
				assert.Equal(t, 7, resp.Goal.Streak)
			},
		},
		{
			name:   "Fail - Already completed today returns 409",
			userID: &userID,
			setupMock: func(goalService *mocks.MockGoalService) {
				appErr := model.NewAppError("ALREADY_COMPLETED", "この目標は今日すでに達成済みです！", "", model.ErrAlreadyCompleted)
				goalService.On("CompleteGoal", mock.Anything, userID, goalID, mock.AnythingOfType("time.Time")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body []byte) {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(body, &errResp))
				assert.Equal(t, "ALREADY_COMPLETED", errResp.Error.Code)
			},
		},
		{
			name:   "Fail - Goal not found returns 404",
			userID: &userID,
			setupMock: func(goalService *mocks.MockGoalService) {
				appErr := model.NewAppError("NOT_FOUND", "目標が見つかりません。", "goal_id", model.ErrNotFound)
				goalService.On("CompleteGoal", mock.Anything, userID, goalID, mock.AnythingOfType("time.Time")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Fail - Other user's goal returns 403",
			userID: &userID,
			setupMock: func(goalService *mocks.MockGoalService) {
				appErr := model.NewAppError("FORBIDDEN", "この目標を操作する権限がありません。", "goal_id", model.ErrForbidden)
				goalService.On("CompleteGoal", mock.Anything, userID, goalID, mock.AnythingOfType("time.Time")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockGoalService, _, router := setupGoalRouter(t)
			tc.setupMock(mockGoalService)

			path := fmt.Sprintf("/api/v1/goals/%s/complete", goalID)
			req := createRequest(t, "POST", path, nil, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}

func TestGoalHandler_GetCalendar(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()

	t.Run("Success - Explicit year and month", func(t *testing.T) {
		_, mockStatsService, router := setupGoalRouter(t)

		grid := &model.MonthGridResponse{
			Year:          2024,
			Month:         2,
			LeadingBlanks: 4,
			Days:          make([]model.CalendarDay, 29),
		}
		mockStatsService.On("GetMonthGrid", mock.Anything, userID, goalID, 2024, time.February).
			Return(grid, nil).Once()

		path := fmt.Sprintf("/api/v1/goals/%s/calendar?year=2024&month=2", goalID)
		req := createRequest(t, "GET", path, nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.MonthGridResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 2024, resp.Year)
		assert.Equal(t, 2, resp.Month)
		assert.Len(t, resp.Days, 29)
	})

	t.Run("Success - Defaults to current month", func(t *testing.T) {
		_, mockStatsService, router := setupGoalRouter(t)

		now := time.Now()
		grid := &model.MonthGridResponse{Year: now.Year(), Month: int(now.Month())}
		mockStatsService.On("GetMonthGrid", mock.Anything, userID, goalID, now.Year(), now.Month()).
			Return(grid, nil).Once()

		path := fmt.Sprintf("/api/v1/goals/%s/calendar", goalID)
		req := createRequest(t, "GET", path, nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Fail - Invalid month returns 400", func(t *testing.T) {
		_, _, router := setupGoalRouter(t)

		path := fmt.Sprintf("/api/v1/goals/%s/calendar?year=2024&month=13", goalID)
		req := createRequest(t, "GET", path, nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Fail - Invalid goal ID format returns 400", func(t *testing.T) {
		_, _, router := setupGoalRouter(t)

		req := createRequest(t, "GET", "/api/v1/goals/not-a-uuid/calendar", nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGoalHandler_GetGoals(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Empty list returns [] not null", func(t *testing.T) {
		mockGoalService, _, router := setupGoalRouter(t)

		mockGoalService.On("ListGoals", mock.Anything, userID).
			Return(nil, nil).Once()

		req := createRequest(t, "GET", "/api/v1/goals", nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()

	t.Run("Success - Returns 204 with empty body", func(t *testing.T) {
		mockGoalService, _, router := setupGoalRouter(t)

		mockGoalService.On("DeleteGoal", mock.Anything, userID, goalID).
			Return(nil).Once()

		req := createRequest(t, "DELETE", "/api/v1/goals/"+goalID.String(), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
