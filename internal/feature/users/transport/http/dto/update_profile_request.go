// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// UpdateProfileReq represents the request body for PUT /profile.
type UpdateProfileReq struct {
	DisplayName string `json:"display_name" binding:"required,max=50"`
	AvatarURL   string `json:"avatar_url" binding:"omitempty,url,max=255"`
}

// AddFriendReq represents the request body for POST /friends.
type AddFriendReq struct {
	FriendID uint `json:"friend_id" binding:"required"`
}
