// Package entity defines the domain entities for the stats feature.
package entity

import "time"

// Match is one recorded game result between two players. TournamentID is
// set when the match was played inside a tournament.
type Match struct {
	ID            uint  `gorm:"primaryKey"`
	PlayerID      uint  `gorm:"index;not null"`
	OpponentID    uint  `gorm:"index;not null"`
	PlayerScore   int   `gorm:"not null"`
	OpponentScore int   `gorm:"not null"`
	TournamentID  *uint `gorm:"index"`
	CreatedAt     time.Time
}

// Winner returns the user ID of the match winner. Ties are rejected before
// a match is stored.
func (m *Match) Winner() uint {
	if m.OpponentScore > m.PlayerScore {
		return m.OpponentID
	}
	return m.PlayerID
}

// Loser returns the user ID of the match loser.
func (m *Match) Loser() uint {
	if m.OpponentScore > m.PlayerScore {
		return m.PlayerID
	}
	return m.OpponentID
}

// PlayerStats is the aggregate match record of one player, maintained in
// the same transaction that stores each match.
type PlayerStats struct {
	UserID    uint `gorm:"primaryKey"`
	Wins      int  `gorm:"not null;default:0"`
	Losses    int  `gorm:"not null;default:0"`
	Played    int  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// LeaderboardEntry is the read model for one leaderboard row.
type LeaderboardEntry struct {
	UserID      uint   `json:"user_id"`
	DisplayName string `json:"display_name"`
	Wins        int    `json:"wins"`
	Played      int    `json:"played"`
}
