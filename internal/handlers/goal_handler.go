// internal/handlers/goal_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"go_5_goal_keep/internal/middleware"
	"go_5_goal_keep/internal/model"
	"go_5_goal_keep/internal/service"
	"go_5_goal_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type GoalHandler struct {
	service      service.GoalService
	statsService service.StatsService
	logger       *slog.Logger
}

func NewGoalHandler(s service.GoalService, stats service.StatsService, logger *slog.Logger) *GoalHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoalHandler{
		service:      s,
		statsService: stats,
		logger:       logger,
	}
}

// PostGoal は新しい目標リソースを作成するためのハンドラ
func (h *GoalHandler) PostGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostGoal"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateGoalRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	goal, err := h.service.CreateGoal(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating goal in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goal created successfully", slog.String("goal_id", goal.GoalID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, goal, logger)
}

// GetGoals は目標リソースの一覧を取得するためのハンドラ
func (h *GoalHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetGoals"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	goals, err := h.service.ListGoals(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing goals in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if goals == nil {
		goals = []*model.Goal{}
	}
	logger.Info("Goals listed successfully", slog.Int("count", len(goals)))
	webutil.RespondWithJSON(w, http.StatusOK, goals, logger)
}

// GetGoal は特定の目標リソースを取得するためのハンドラ
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetGoal"))

	userID, goalID, ok := h.authAndGoalID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()), slog.String("goal_id", goalID.String()))

	goal, err := h.service.GetGoal(r.Context(), userID, goalID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Goal not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting goal from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goal retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, goal, logger)
}

// PutGoal は特定の目標リソースの編集可能フィールドを更新するためのハンドラ。
// nil のフィールドは変更せず、streak / current_level / 完了履歴には触れない。
func (h *GoalHandler) PutGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutGoal"))

	userID, goalID, ok := h.authAndGoalID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()), slog.String("goal_id", goalID.String()))

	var req model.UpdateGoalRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PutGoal request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	goal, err := h.service.UpdateGoal(r.Context(), userID, goalID, &req)
	if err != nil {
		logger.Error("Error updating goal in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goal updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, goal, logger)
}

// DeleteGoal は特定の目標リソースを削除するためのハンドラ
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteGoal"))

	userID, goalID, ok := h.authAndGoalID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()), slog.String("goal_id", goalID.String()))

	if err := h.service.DeleteGoal(r.Context(), userID, goalID); err != nil {
		logger.Error("Error deleting goal in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goal deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// CompleteGoal は「今日の分を達成した」を記録するためのハンドラ。
// 同じ暦日の2回目は 409 を返す。現在時刻はここで1度だけ取得してサービスに渡す。
func (h *GoalHandler) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CompleteGoal"))

	userID, goalID, ok := h.authAndGoalID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()), slog.String("goal_id", goalID.String()))

	result, err := h.service.CompleteGoal(r.Context(), userID, goalID, time.Now())
	if err != nil {
		if errors.Is(err, model.ErrAlreadyCompleted) {
			logger.Info("Goal already completed today")
		} else {
			logger.Error("Error completing goal in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goal completed successfully",
		slog.Int("streak", result.Goal.Streak),
		slog.Bool("leveled_up", result.LeveledUp),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetCalendar は指定月のカレンダーグリッドを取得するためのハンドラ。
// year / month クエリパラメータ省略時は現在の年月を使う。
func (h *GoalHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCalendar"))

	userID, goalID, ok := h.authAndGoalID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()), slog.String("goal_id", goalID.String()))

	now := time.Now()
	year := now.Year()
	month := now.Month()

	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			logger.Warn("Invalid year query param", slog.String("year", s))
			appErr := model.NewAppError("INVALID_URL_PARAM", "yearの形式が正しくありません。", "year", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		year = y
	}
	if s := r.URL.Query().Get("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			logger.Warn("Invalid month query param", slog.String("month", s))
			appErr := model.NewAppError("INVALID_URL_PARAM", "monthは1〜12で指定してください。", "month", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		month = time.Month(m)
	}

	grid, err := h.statsService.GetMonthGrid(r.Context(), userID, goalID, year, month)
	if err != nil {
		logger.Error("Error building month grid in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Calendar retrieved successfully", slog.Int("year", year), slog.Int("month", int(month)))
	webutil.RespondWithJSON(w, http.StatusOK, grid, logger)
}

// authAndGoalID は認証情報とURLのgoal_idを取り出す共通処理です。
// エラー時はレスポンス書き込み済みで ok=false を返します。
func (h *GoalHandler) authAndGoalID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, uuid.Nil, false
	}

	goalIDStr := chi.URLParam(r, "goal_id")
	goalID, err := uuid.Parse(goalIDStr)
	if err != nil {
		logger.Warn("Invalid goal ID format in URL", slog.String("goal_id_str", goalIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "goal_idの形式が正しくありません。", "goal_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, goalID, true
}

// handleValidationError はvalidatorのエラーを日本語メッセージに変換して返します
func handleValidationError(w http.ResponseWriter, logger *slog.Logger, err error, req any) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

		// 最初のエラーを代表としてクライアントに返す
		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(webutil.Trans)

		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(),
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger.Error("Unexpected error during validation", slog.Any("error", err))
	webutil.HandleError(w, logger, err)
}
