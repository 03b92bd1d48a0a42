package usecase

import (
	"context"
	"strings"

	statsentity "arena_backend/internal/feature/stats/domain/entity"
	"arena_backend/internal/feature/tournaments/domain/entity"
)

// maxTournamentNameLength bounds the name column.
const maxTournamentNameLength = 100

// TournamentRepository abstracts the persistence layer for tournaments and
// their participants. Following Go convention: interfaces are defined by
// the consumer (usecase), not the provider (adapters).
type TournamentRepository interface {
	// Create stores the tournament and its creator's membership in a single
	// transaction.
	Create(ctx context.Context, t *entity.Tournament) error

	// FindByID returns a tournament, or ErrTournamentNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Tournament, error)

	// List returns all tournaments, newest first.
	List(ctx context.Context) ([]entity.Tournament, error)

	// AddParticipant stores a membership row, or ErrAlreadyJoined when the
	// unique index rejects a double join.
	AddParticipant(ctx context.Context, p *entity.Participant) error

	// IsParticipant reports whether the user has joined the tournament.
	IsParticipant(ctx context.Context, tournamentID, userID uint) (bool, error)
}

// ResultRecorder stores a validated match result. It is satisfied by the
// stats usecase; tournament matches flow through the same pipeline as
// casual ones so aggregates and the leaderboard stay consistent.
type ResultRecorder interface {
	Record(ctx context.Context, playerID, opponentID uint, playerScore, opponentScore int, tournamentID *uint) (*statsentity.Match, error)
}

// tournamentsUsecase implements tournament management and scoped match
// recording.
type tournamentsUsecase struct {
	tournaments TournamentRepository
	results     ResultRecorder
}

// NewTournamentsUsecase creates a new instance of tournamentsUsecase.
func NewTournamentsUsecase(tournaments TournamentRepository, results ResultRecorder) *tournamentsUsecase {
	return &tournamentsUsecase{tournaments: tournaments, results: results}
}

// Create stores a new tournament owned by creatorID. The creator joins
// automatically.
func (u *tournamentsUsecase) Create(ctx context.Context, creatorID uint, name string) (*entity.Tournament, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxTournamentNameLength {
		return nil, ErrInvalidName
	}

	t := &entity.Tournament{Name: name, CreatedBy: creatorID}
	if err := u.tournaments.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns all tournaments.
func (u *tournamentsUsecase) List(ctx context.Context) ([]entity.Tournament, error) {
	return u.tournaments.List(ctx)
}

// Join adds userID as a participant of the tournament.
func (u *tournamentsUsecase) Join(ctx context.Context, tournamentID, userID uint) error {
	if _, err := u.tournaments.FindByID(ctx, tournamentID); err != nil {
		return err
	}
	return u.tournaments.AddParticipant(ctx, &entity.Participant{
		TournamentID: tournamentID,
		UserID:       userID,
	})
}

// RecordMatch stores a match played inside the tournament. Both players
// must have joined it first; score validation is the recorder's concern.
func (u *tournamentsUsecase) RecordMatch(ctx context.Context, tournamentID, playerID, opponentID uint, playerScore, opponentScore int) (*statsentity.Match, error) {
	if _, err := u.tournaments.FindByID(ctx, tournamentID); err != nil {
		return nil, err
	}

	for _, id := range []uint{playerID, opponentID} {
		ok, err := u.tournaments.IsParticipant(ctx, tournamentID, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotParticipant
		}
	}

	return u.results.Record(ctx, playerID, opponentID, playerScore, opponentScore, &tournamentID)
}
