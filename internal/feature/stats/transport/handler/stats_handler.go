// Package handler provides the HTTP handlers for the stats feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"arena_backend/internal/api"
	"arena_backend/internal/feature/stats/domain/entity"
	"arena_backend/internal/feature/stats/transport/http/dto"
	"arena_backend/internal/feature/stats/usecase"
	jwtmw "arena_backend/internal/platform/jwt"
)

// StatsUsecase defines the usecase for match and leaderboard operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type StatsUsecase interface {
	Record(ctx context.Context, playerID, opponentID uint, playerScore, opponentScore int, tournamentID *uint) (*entity.Match, error)
	GetStats(ctx context.Context, userID uint) (*entity.PlayerStats, error)
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

// StatsHandler handles HTTP requests for match results and rankings.
type StatsHandler struct {
	stats StatsUsecase
}

// NewStatsHandler creates a new StatsHandler with the injected usecase.
func NewStatsHandler(stats StatsUsecase) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// RecordMatch stores a match result reported by the authenticated player.
func (h *StatsHandler) RecordMatch(c *gin.Context) {
	playerID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		return
	}

	var req dto.RecordMatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("record match validation failed", "error", err, "user_id", playerID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	m, err := h.stats.Record(c.Request.Context(), playerID, req.OpponentID, req.PlayerScore, req.OpponentScore, nil)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSelfMatch), errors.Is(err, usecase.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "opponent not found"})
		default:
			slog.Error("record match failed", "error", err, "user_id", playerID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	slog.Info("match recorded", "match_id", m.ID, "player_id", m.PlayerID, "opponent_id", m.OpponentID)
	c.JSON(http.StatusCreated, api.MatchResponse{
		ID:            m.ID,
		PlayerID:      m.PlayerID,
		OpponentID:    m.OpponentID,
		PlayerScore:   m.PlayerScore,
		OpponentScore: m.OpponentScore,
		TournamentID:  m.TournamentID,
	})
}

// GetStats returns the aggregate match record of the player named in the
// path. A player who exists but has not played yet gets a zero record.
func (h *StatsHandler) GetStats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user id"})
		return
	}

	s, err := h.stats.GetStats(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("stats lookup failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, api.StatsResponse{
		UserID: s.UserID,
		Wins:   s.Wins,
		Losses: s.Losses,
		Played: s.Played,
	})
}

// Leaderboard returns the top players ordered by wins. An absent or
// malformed limit falls back to the default size.
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	entries, err := h.stats.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		slog.Error("leaderboard query failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]api.LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.LeaderboardEntryResponse{
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			Wins:        e.Wins,
			Played:      e.Played,
		})
	}
	c.JSON(http.StatusOK, out)
}
