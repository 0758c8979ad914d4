package types

import "Encore/models"

type FeedRequest struct {
	Per   int    `form:"per"`   // 每页数量，1..200，默认 100
	Since string `form:"since"` // ISO8601，只看这个时间之后入库的剧目
}

type FeedResponse struct {
	Total int64          `json:"total"`
	Items []*models.Work `json:"items"`
}
