// Package entity defines the domain entities for the tournaments feature.
package entity

import "time"

// Tournament is a named bracket that players can join. Matches played
// inside it carry its ID so tournament results stay separable from casual
// play.
type Tournament struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	CreatedBy uint   `gorm:"index;not null"`
	CreatedAt time.Time
}

// Participant is one player's membership in a tournament. The composite
// unique index makes double-joining a constraint violation rather than a
// race-prone pre-check.
type Participant struct {
	ID           uint `gorm:"primaryKey"`
	TournamentID uint `gorm:"uniqueIndex:idx_tournament_user;not null"`
	UserID       uint `gorm:"uniqueIndex:idx_tournament_user;not null"`
	CreatedAt    time.Time
}
