// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"arena_backend/internal/api"
	"arena_backend/internal/feature/users/domain/entity"
	"arena_backend/internal/feature/users/transport/http/dto"
	"arena_backend/internal/feature/users/usecase"
	jwtmw "arena_backend/internal/platform/jwt"
)

// UsersUsecase defines the usecase for profile and friends operations.
type UsersUsecase interface {
	GetProfile(ctx context.Context, userID uint) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uint, displayName, avatarURL string) (*entity.Profile, error)
	AddFriend(ctx context.Context, userID, friendID uint) error
	RemoveFriend(ctx context.Context, userID, friendID uint) error
	ListFriends(ctx context.Context, userID uint) ([]entity.Friend, error)
}

// UsersHandler handles HTTP requests for profile and friends operations.
type UsersHandler struct {
	users UsersUsecase
}

// NewUsersHandler creates a new UsersHandler with the injected usecase.
func NewUsersHandler(users UsersUsecase) *UsersHandler {
	return &UsersHandler{users: users}
}

// GetProfile returns the authenticated user's profile.
func (h *UsersHandler) GetProfile(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		return
	}
	p, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, api.ProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
	})
}

// UpdateProfile stores the authenticated user's display name and avatar URL.
func (h *UsersHandler) UpdateProfile(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		return
	}
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	p, err := h.users.UpdateProfile(c.Request.Context(), userID, req.DisplayName, req.AvatarURL)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			slog.Warn("profile update validation failed", "error", err, "user_id", userID)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		default:
			slog.Error("profile update failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, api.ProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
	})
}

// AddFriend creates a friendship edge from the authenticated user.
func (h *UsersHandler) AddFriend(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		return
	}
	var req dto.AddFriendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	err := h.users.AddFriend(c.Request.Context(), userID, req.FriendID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSelfFriend):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "cannot add yourself"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		case errors.Is(err, usecase.ErrAlreadyFriends):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "already friends"})
		default:
			slog.Error("add friend failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}
	slog.Info("friend added", "user_id", userID, "friend_id", req.FriendID)
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// RemoveFriend deletes a friendship edge from the authenticated user.
func (h *UsersHandler) RemoveFriend(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		return
	}
	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid friend id"})
		return
	}
	if err := h.users.RemoveFriend(c.Request.Context(), userID, uint(friendID)); err != nil {
		if errors.Is(err, usecase.ErrFriendshipNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "friendship not found"})
			return
		}
		slog.Error("remove friend failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// ListFriends returns the authenticated user's friends.
func (h *UsersHandler) ListFriends(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		return
	}
	friends, err := h.users.ListFriends(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list friends failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	out := make([]api.FriendResponse, 0, len(friends))
	for _, f := range friends {
		out = append(out, api.FriendResponse{UserID: f.UserID, DisplayName: f.DisplayName})
	}
	c.JSON(http.StatusOK, out)
}
