// Package dto defines the request payloads for the tournaments feature.
package dto

// CreateTournamentReq is the payload for creating a tournament.
type CreateTournamentReq struct {
	Name string `json:"name" binding:"required,max=100"`
}

// TournamentMatchReq is the payload for reporting a match played inside a
// tournament. The authenticated user is the reporting player.
type TournamentMatchReq struct {
	OpponentID    uint `json:"opponent_id" binding:"required"`
	PlayerScore   int  `json:"player_score" binding:"min=0"`
	OpponentScore int  `json:"opponent_score" binding:"min=0"`
}
