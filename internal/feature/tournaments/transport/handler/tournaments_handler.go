// Package handler provides the HTTP handlers for the tournaments feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"arena_backend/internal/api"
	statsentity "arena_backend/internal/feature/stats/domain/entity"
	statsusecase "arena_backend/internal/feature/stats/usecase"
	"arena_backend/internal/feature/tournaments/domain/entity"
	"arena_backend/internal/feature/tournaments/transport/http/dto"
	"arena_backend/internal/feature/tournaments/usecase"
	jwtmw "arena_backend/internal/platform/jwt"
)

// TournamentsUsecase defines the usecase for tournament operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type TournamentsUsecase interface {
	Create(ctx context.Context, creatorID uint, name string) (*entity.Tournament, error)
	List(ctx context.Context) ([]entity.Tournament, error)
	Join(ctx context.Context, tournamentID, userID uint) error
	RecordMatch(ctx context.Context, tournamentID, playerID, opponentID uint, playerScore, opponentScore int) (*statsentity.Match, error)
}

// TournamentsHandler handles HTTP requests for tournament operations.
type TournamentsHandler struct {
	tournaments TournamentsUsecase
}

// NewTournamentsHandler creates a new TournamentsHandler with the injected
// usecase.
func NewTournamentsHandler(tournaments TournamentsUsecase) *TournamentsHandler {
	return &TournamentsHandler{tournaments: tournaments}
}

// Create stores a new tournament owned by the authenticated user.
func (h *TournamentsHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		return
	}

	var req dto.CreateTournamentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	t, err := h.tournaments.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidName) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid tournament name"})
			return
		}
		slog.Error("tournament create failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("tournament created", "tournament_id", t.ID, "user_id", userID)
	c.JSON(http.StatusCreated, api.TournamentResponse{ID: t.ID, Name: t.Name, CreatedBy: t.CreatedBy})
}

// List returns all tournaments.
func (h *TournamentsHandler) List(c *gin.Context) {
	tournaments, err := h.tournaments.List(c.Request.Context())
	if err != nil {
		slog.Error("tournament list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]api.TournamentResponse, 0, len(tournaments))
	for _, t := range tournaments {
		out = append(out, api.TournamentResponse{ID: t.ID, Name: t.Name, CreatedBy: t.CreatedBy})
	}
	c.JSON(http.StatusOK, out)
}

// Join adds the authenticated user as a participant of the tournament
// named in the path.
func (h *TournamentsHandler) Join(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		return
	}

	tournamentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid tournament id"})
		return
	}

	if err := h.tournaments.Join(c.Request.Context(), uint(tournamentID), userID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTournamentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "tournament not found"})
		case errors.Is(err, usecase.ErrAlreadyJoined):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "already joined"})
		default:
			slog.Error("tournament join failed", "error", err, "tournament_id", tournamentID, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	slog.Info("tournament joined", "tournament_id", tournamentID, "user_id", userID)
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "joined"})
}

// RecordMatch stores a match played inside the tournament named in the
// path. Both players must be participants.
func (h *TournamentsHandler) RecordMatch(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		return
	}

	tournamentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid tournament id"})
		return
	}

	var req dto.TournamentMatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	m, err := h.tournaments.RecordMatch(c.Request.Context(), uint(tournamentID), userID, req.OpponentID, req.PlayerScore, req.OpponentScore)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTournamentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "tournament not found"})
		case errors.Is(err, usecase.ErrNotParticipant):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "not a tournament participant"})
		case errors.Is(err, statsusecase.ErrSelfMatch), errors.Is(err, statsusecase.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, statsusecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "opponent not found"})
		default:
			slog.Error("tournament match failed", "error", err, "tournament_id", tournamentID, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	slog.Info("tournament match recorded", "match_id", m.ID, "tournament_id", tournamentID)
	c.JSON(http.StatusCreated, api.MatchResponse{
		ID:            m.ID,
		PlayerID:      m.PlayerID,
		OpponentID:    m.OpponentID,
		PlayerScore:   m.PlayerScore,
		OpponentScore: m.OpponentScore,
		TournamentID:  m.TournamentID,
	})
}
