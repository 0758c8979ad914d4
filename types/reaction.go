package types

import "Encore/models"

type ReactionUpsertRequest struct {
	WorkID int64  `json:"work_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type ReactionResponse struct {
	Reaction *models.Reaction `json:"reaction"`
}

type ReactionListRequest struct {
	Status string `form:"status"` // 可选，LIKE | DISLIKE | SEEN
}

type ReactionListResponse struct {
	Likes []*models.Reaction `json:"likes"`
}

type LikeRequest struct {
	WorkID int64 `json:"work_id" binding:"required"`
}

type LikeResponse struct {
	Like           *models.Reaction `json:"like"`
	AlreadyExisted bool             `json:"already_existed"`
}

type UnlikeRequest struct {
	WorkID int64 `form:"work_id" binding:"required"`
}

type UnlikeResponse struct {
	Disliked bool `json:"disliked"`
}
