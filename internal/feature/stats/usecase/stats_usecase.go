package usecase

import (
	"context"
	"errors"

	"arena_backend/internal/feature/stats/domain/entity"
)

const (
	// DefaultLeaderboardSize is the default number of leaderboard rows.
	DefaultLeaderboardSize = 10
	// MaxLeaderboardSize is the maximum number of leaderboard rows.
	MaxLeaderboardSize = 100
)

// StatsRepository abstracts the persistence layer for matches and player
// aggregates. Following Go convention: interfaces are defined by the
// consumer (usecase), not the provider (adapters).
//
// RecordMatch must store the match and update both players' aggregates in a
// single transaction.
type StatsRepository interface {
	RecordMatch(ctx context.Context, m *entity.Match) error

	// FindStats returns a player's aggregate row, or ErrStatsNotFound.
	FindStats(ctx context.Context, userID uint) (*entity.PlayerStats, error)

	// Leaderboard returns the top players ordered by wins.
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)

	// UserExists reports whether a user row with the given ID exists.
	UserExists(ctx context.Context, userID uint) (bool, error)
}

// statsUsecase implements the match and leaderboard business logic.
type statsUsecase struct {
	stats StatsRepository
}

// NewStatsUsecase creates a new instance of statsUsecase.
func NewStatsUsecase(stats StatsRepository) *statsUsecase {
	return &statsUsecase{stats: stats}
}

// Record validates and stores a match result reported by playerID.
// tournamentID is nil for casual matches.
func (u *statsUsecase) Record(ctx context.Context, playerID, opponentID uint, playerScore, opponentScore int, tournamentID *uint) (*entity.Match, error) {
	if playerID == opponentID {
		return nil, ErrSelfMatch
	}
	if playerScore < 0 || opponentScore < 0 || playerScore == opponentScore {
		return nil, ErrInvalidScore
	}

	exists, err := u.stats.UserExists(ctx, opponentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	m := &entity.Match{
		PlayerID:      playerID,
		OpponentID:    opponentID,
		PlayerScore:   playerScore,
		OpponentScore: opponentScore,
		TournamentID:  tournamentID,
	}
	if err := u.stats.RecordMatch(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetStats returns the aggregate record of a player. A player who exists
// but has not played yet gets a zero record.
func (u *statsUsecase) GetStats(ctx context.Context, userID uint) (*entity.PlayerStats, error) {
	s, err := u.stats.FindStats(ctx, userID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrStatsNotFound) {
		return nil, err
	}

	exists, err := u.stats.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return &entity.PlayerStats{UserID: userID}, nil
}

// Leaderboard returns the top players by wins. The limit is clamped to
// sane bounds.
func (u *statsUsecase) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 || limit > MaxLeaderboardSize {
		limit = DefaultLeaderboardSize
	}
	return u.stats.Leaderboard(ctx, limit)
}
