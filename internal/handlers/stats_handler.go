// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_5_goal_keep/internal/middleware"
	"go_5_goal_keep/internal/model"
	"go_5_goal_keep/internal/service"
	"go_5_goal_keep/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		service: s,
		logger:  logger,
	}
}

// GetStats はダッシュボード統計を取得するためのハンドラ
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	stats, err := h.service.GetStats(r.Context(), userID, time.Now())
	if err != nil {
		logger.Error("Error computing stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Stats retrieved successfully", slog.Int("total_goals", stats.Summary.TotalGoals))
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
