package types

import "Encore/models"

type InviteResponse struct {
	Token string `json:"token"`
}

type AddFriendRequest struct {
	Token string `json:"token" binding:"required"`
}

type FriendListResponse struct {
	Friends []*models.User `json:"friends"`
}

type MutualRequest struct {
	FriendID int64 `form:"friend_id" binding:"required"`
}

type MutualResponse struct {
	Common []*models.Work `json:"common"`
}
