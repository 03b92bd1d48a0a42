package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "arena_backend/internal/feature/auth/domain/entity"
	"arena_backend/internal/feature/stats/domain/entity"
	"arena_backend/internal/feature/stats/usecase"
	usersentity "arena_backend/internal/feature/users/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database with the tables this
// feature touches.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&authentity.User{}, &usersentity.Profile{}, &entity.Match{}, &entity.PlayerStats{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	u := authentity.User{Email: email, Password: "hash"}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func TestStatsMySQL_RecordMatch(t *testing.T) {
	t.Run("first match creates both aggregates", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStatsMySQL(db)
		a := createUser(t, db, "a@example.com")
		b := createUser(t, db, "b@example.com")

		m := &entity.Match{PlayerID: a, OpponentID: b, PlayerScore: 11, OpponentScore: 7}
		require.NoError(t, repo.RecordMatch(context.Background(), m))
		assert.NotZero(t, m.ID)

		winner, err := repo.FindStats(context.Background(), a)
		require.NoError(t, err)
		assert.Equal(t, 1, winner.Wins)
		assert.Equal(t, 0, winner.Losses)
		assert.Equal(t, 1, winner.Played)

		loser, err := repo.FindStats(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, 0, loser.Wins)
		assert.Equal(t, 1, loser.Losses)
		assert.Equal(t, 1, loser.Played)
	})

	t.Run("subsequent matches increment the aggregates", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStatsMySQL(db)
		a := createUser(t, db, "a@example.com")
		b := createUser(t, db, "b@example.com")

		require.NoError(t, repo.RecordMatch(context.Background(), &entity.Match{PlayerID: a, OpponentID: b, PlayerScore: 11, OpponentScore: 7}))
		// b wins the rematch
		require.NoError(t, repo.RecordMatch(context.Background(), &entity.Match{PlayerID: a, OpponentID: b, PlayerScore: 3, OpponentScore: 11}))

		sa, err := repo.FindStats(context.Background(), a)
		require.NoError(t, err)
		assert.Equal(t, 1, sa.Wins)
		assert.Equal(t, 1, sa.Losses)
		assert.Equal(t, 2, sa.Played)

		sb, err := repo.FindStats(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, 1, sb.Wins)
		assert.Equal(t, 1, sb.Losses)
		assert.Equal(t, 2, sb.Played)
	})

	t.Run("tournament id is persisted", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStatsMySQL(db)
		a := createUser(t, db, "a@example.com")
		b := createUser(t, db, "b@example.com")

		tid := uint(9)
		m := &entity.Match{PlayerID: a, OpponentID: b, PlayerScore: 11, OpponentScore: 7, TournamentID: &tid}
		require.NoError(t, repo.RecordMatch(context.Background(), m))

		var stored entity.Match
		require.NoError(t, db.First(&stored, m.ID).Error)
		require.NotNil(t, stored.TournamentID)
		assert.Equal(t, tid, *stored.TournamentID)
	})
}

func TestStatsMySQL_FindStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsMySQL(db)

	_, err := repo.FindStats(context.Background(), 42)

	assert.ErrorIs(t, err, usecase.ErrStatsNotFound)
}

func TestStatsMySQL_Leaderboard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsMySQL(db)

	a := createUser(t, db, "a@example.com")
	b := createUser(t, db, "b@example.com")
	c := createUser(t, db, "c@example.com")

	require.NoError(t, db.Create(&usersentity.Profile{UserID: b, DisplayName: "Bee"}).Error)

	// b: 2 wins, a: 1 win, c: 0 wins
	require.NoError(t, repo.RecordMatch(context.Background(), &entity.Match{PlayerID: b, OpponentID: a, PlayerScore: 11, OpponentScore: 5}))
	require.NoError(t, repo.RecordMatch(context.Background(), &entity.Match{PlayerID: b, OpponentID: c, PlayerScore: 11, OpponentScore: 5}))
	require.NoError(t, repo.RecordMatch(context.Background(), &entity.Match{PlayerID: a, OpponentID: c, PlayerScore: 11, OpponentScore: 5}))

	entries, err := repo.Leaderboard(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, b, entries[0].UserID)
	assert.Equal(t, "Bee", entries[0].DisplayName)
	assert.Equal(t, 2, entries[0].Wins)
	assert.Equal(t, a, entries[1].UserID)
	assert.Equal(t, "", entries[1].DisplayName)
}

func TestStatsMySQL_UserExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsMySQL(db)

	id := createUser(t, db, "exists@example.com")

	exists, err := repo.UserExists(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UserExists(context.Background(), id+100)
	require.NoError(t, err)
	assert.False(t, exists)
}
