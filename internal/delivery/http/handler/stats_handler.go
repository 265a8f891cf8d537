package handler

import (
	"net/http"

	"fisio-connect-api/internal/usecase"
	"fisio-connect-api/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{
		statsUsecase: statsUsecase,
	}
}

func (h *StatsHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.GetUserStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get user stats")
		return
	}

	response.Success(w, http.StatusOK, "User stats retrieved successfully", stats)
}
