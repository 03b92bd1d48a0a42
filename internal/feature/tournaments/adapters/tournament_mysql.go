// Package adapters provides the persistence implementations for the
// tournaments feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"arena_backend/internal/feature/tournaments/domain/entity"
	"arena_backend/internal/feature/tournaments/usecase"
)

// tournamentMySQL is the MySQL implementation of the TournamentRepository
// interface.
type tournamentMySQL struct {
	db *gorm.DB
}

var _ usecase.TournamentRepository = (*tournamentMySQL)(nil)

// NewTournamentMySQL creates a new tournamentMySQL with the given gorm.DB
// connection.
func NewTournamentMySQL(db *gorm.DB) *tournamentMySQL {
	return &tournamentMySQL{db: db}
}

// Create inserts the tournament and its creator's membership in one
// transaction, so no tournament row can exist without its creator joined.
func (r *tournamentMySQL) Create(ctx context.Context, t *entity.Tournament) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Participant{
			TournamentID: t.ID,
			UserID:       t.CreatedBy,
		}).Error
	})
}

// FindByID retrieves a tournament by its primary key.
// Returns usecase.ErrTournamentNotFound when no row matches.
func (r *tournamentMySQL) FindByID(ctx context.Context, id uint) (*entity.Tournament, error) {
	var t entity.Tournament
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all tournaments, newest first.
func (r *tournamentMySQL) List(ctx context.Context) ([]entity.Tournament, error) {
	var out []entity.Tournament
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// AddParticipant inserts a membership row. The composite unique index
// rejects double joins; MySQL error 1062 maps to ErrAlreadyJoined.
func (r *tournamentMySQL) AddParticipant(ctx context.Context, p *entity.Participant) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrAlreadyJoined
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyJoined
		}
		return err
	}
	return nil
}

// IsParticipant reports whether the user has a membership row in the
// tournament.
func (r *tournamentMySQL) IsParticipant(ctx context.Context, tournamentID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Participant{}).
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
