package usecase

import (
	"context"
	"errors"
	"testing"

	"arena_backend/internal/feature/stats/domain/entity"
)

// mockStatsRepository is a mock implementation of the StatsRepository interface.
type mockStatsRepository struct {
	recordMatchFn func(ctx context.Context, m *entity.Match) error
	findStatsFn   func(ctx context.Context, userID uint) (*entity.PlayerStats, error)
	leaderboardFn func(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
	userExistsFn  func(ctx context.Context, userID uint) (bool, error)
}

func (m *mockStatsRepository) RecordMatch(ctx context.Context, match *entity.Match) error {
	if m.recordMatchFn != nil {
		return m.recordMatchFn(ctx, match)
	}
	return nil
}

func (m *mockStatsRepository) FindStats(ctx context.Context, userID uint) (*entity.PlayerStats, error) {
	if m.findStatsFn != nil {
		return m.findStatsFn(ctx, userID)
	}
	return nil, ErrStatsNotFound
}

func (m *mockStatsRepository) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	if m.leaderboardFn != nil {
		return m.leaderboardFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockStatsRepository) UserExists(ctx context.Context, userID uint) (bool, error) {
	if m.userExistsFn != nil {
		return m.userExistsFn(ctx, userID)
	}
	return true, nil
}

func TestRecord_Success(t *testing.T) {
	t.Parallel()

	var stored *entity.Match
	repo := &mockStatsRepository{
		recordMatchFn: func(ctx context.Context, m *entity.Match) error {
			stored = m
			return nil
		},
	}
	u := NewStatsUsecase(repo)

	m, err := u.Record(context.Background(), 1, 2, 11, 7, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil {
		t.Fatal("expected match to be stored")
	}
	if m.PlayerID != 1 || m.OpponentID != 2 || m.PlayerScore != 11 || m.OpponentScore != 7 {
		t.Errorf("unexpected match: %+v", m)
	}
	if m.TournamentID != nil {
		t.Errorf("expected casual match, got tournament id %v", *m.TournamentID)
	}
}

func TestRecord_TournamentIDPreserved(t *testing.T) {
	t.Parallel()

	u := NewStatsUsecase(&mockStatsRepository{})
	tid := uint(42)

	m, err := u.Record(context.Background(), 1, 2, 3, 5, &tid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TournamentID == nil || *m.TournamentID != 42 {
		t.Errorf("expected tournament id 42, got %v", m.TournamentID)
	}
}

func TestRecord_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		playerID      uint
		opponentID    uint
		playerScore   int
		opponentScore int
		expectedErr   error
	}{
		{"self match", 1, 1, 11, 7, ErrSelfMatch},
		{"negative player score", 1, 2, -1, 7, ErrInvalidScore},
		{"negative opponent score", 1, 2, 7, -3, ErrInvalidScore},
		{"tied score", 1, 2, 5, 5, ErrInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repoCalled := false
			repo := &mockStatsRepository{
				recordMatchFn: func(ctx context.Context, m *entity.Match) error {
					repoCalled = true
					return nil
				},
				userExistsFn: func(ctx context.Context, userID uint) (bool, error) {
					repoCalled = true
					return true, nil
				},
			}
			u := NewStatsUsecase(repo)

			_, err := u.Record(context.Background(), tt.playerID, tt.opponentID, tt.playerScore, tt.opponentScore, nil)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
			if repoCalled {
				t.Error("repository should not be touched when validation fails")
			}
		})
	}
}

func TestRecord_UnknownOpponent(t *testing.T) {
	t.Parallel()

	repo := &mockStatsRepository{
		userExistsFn: func(ctx context.Context, userID uint) (bool, error) {
			return false, nil
		},
	}
	u := NewStatsUsecase(repo)

	_, err := u.Record(context.Background(), 1, 999, 11, 7, nil)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRecord_RepositoryError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("db down")
	repo := &mockStatsRepository{
		recordMatchFn: func(ctx context.Context, m *entity.Match) error {
			return dbErr
		},
	}
	u := NewStatsUsecase(repo)

	_, err := u.Record(context.Background(), 1, 2, 11, 7, nil)
	if !errors.Is(err, dbErr) {
		t.Errorf("expected repository error to propagate, got %v", err)
	}
}

func TestGetStats_Found(t *testing.T) {
	t.Parallel()

	repo := &mockStatsRepository{
		findStatsFn: func(ctx context.Context, userID uint) (*entity.PlayerStats, error) {
			return &entity.PlayerStats{UserID: userID, Wins: 3, Losses: 1, Played: 4}, nil
		},
	}
	u := NewStatsUsecase(repo)

	s, err := u.GetStats(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Wins != 3 || s.Losses != 1 || s.Played != 4 {
		t.Errorf("unexpected stats: %+v", s)
	}
}

func TestGetStats_ZeroRecordForExistingUser(t *testing.T) {
	t.Parallel()

	repo := &mockStatsRepository{
		findStatsFn: func(ctx context.Context, userID uint) (*entity.PlayerStats, error) {
			return nil, ErrStatsNotFound
		},
		userExistsFn: func(ctx context.Context, userID uint) (bool, error) {
			return true, nil
		},
	}
	u := NewStatsUsecase(repo)

	s, err := u.GetStats(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.UserID != 7 || s.Wins != 0 || s.Losses != 0 || s.Played != 0 {
		t.Errorf("expected zero record, got %+v", s)
	}
}

func TestGetStats_UnknownUser(t *testing.T) {
	t.Parallel()

	repo := &mockStatsRepository{
		findStatsFn: func(ctx context.Context, userID uint) (*entity.PlayerStats, error) {
			return nil, ErrStatsNotFound
		},
		userExistsFn: func(ctx context.Context, userID uint) (bool, error) {
			return false, nil
		},
	}
	u := NewStatsUsecase(repo)

	_, err := u.GetStats(context.Background(), 999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLeaderboard_LimitClamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{"zero uses default", 0, DefaultLeaderboardSize},
		{"negative uses default", -5, DefaultLeaderboardSize},
		{"over max uses default", MaxLeaderboardSize + 1, DefaultLeaderboardSize},
		{"valid limit passed through", 25, 25},
		{"max allowed", MaxLeaderboardSize, MaxLeaderboardSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotLimit int
			repo := &mockStatsRepository{
				leaderboardFn: func(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
					gotLimit = limit
					return nil, nil
				},
			}
			u := NewStatsUsecase(repo)

			if _, err := u.Leaderboard(context.Background(), tt.limit); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotLimit != tt.expectedLimit {
				t.Errorf("expected limit %d, got %d", tt.expectedLimit, gotLimit)
			}
		})
	}
}

func TestMatchWinnerLoser(t *testing.T) {
	t.Parallel()

	m := &entity.Match{PlayerID: 1, OpponentID: 2, PlayerScore: 11, OpponentScore: 7}
	if m.Winner() != 1 || m.Loser() != 2 {
		t.Errorf("expected player 1 to win, got winner=%d loser=%d", m.Winner(), m.Loser())
	}

	m = &entity.Match{PlayerID: 1, OpponentID: 2, PlayerScore: 4, OpponentScore: 9}
	if m.Winner() != 2 || m.Loser() != 1 {
		t.Errorf("expected player 2 to win, got winner=%d loser=%d", m.Winner(), m.Loser())
	}
}
