// Package api defines the shared JSON response envelopes used by all
// transport handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for acknowledgement-only operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body returned after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public view of a user identity.
// The password hash is never part of any response type.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// ProfileResponse is the public view of a user profile.
type ProfileResponse struct {
	UserID      uint   `json:"user_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// FriendResponse is one entry of a user's friend list.
type FriendResponse struct {
	UserID      uint   `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// StatsResponse is the aggregate match record of a player.
type StatsResponse struct {
	UserID uint `json:"user_id"`
	Wins   int  `json:"wins"`
	Losses int  `json:"losses"`
	Played int  `json:"played"`
}

// LeaderboardEntryResponse is one row of the leaderboard.
type LeaderboardEntryResponse struct {
	UserID      uint   `json:"user_id"`
	DisplayName string `json:"display_name"`
	Wins        int    `json:"wins"`
	Played      int    `json:"played"`
}

// MatchResponse is the recorded view of a match result.
type MatchResponse struct {
	ID            uint  `json:"id"`
	PlayerID      uint  `json:"player_id"`
	OpponentID    uint  `json:"opponent_id"`
	PlayerScore   int   `json:"player_score"`
	OpponentScore int   `json:"opponent_score"`
	TournamentID  *uint `json:"tournament_id,omitempty"`
}

// TournamentResponse is the public view of a tournament.
type TournamentResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedBy uint   `json:"created_by"`
}
