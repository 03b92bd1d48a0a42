// Package dto defines the request payloads for the stats feature.
package dto

// RecordMatchReq is the payload for reporting a finished match. The
// authenticated user is always the reporting player; only the opponent is
// named explicitly.
type RecordMatchReq struct {
	OpponentID    uint `json:"opponent_id" binding:"required"`
	PlayerScore   int  `json:"player_score" binding:"min=0"`
	OpponentScore int  `json:"opponent_score" binding:"min=0"`
}
