package handler

import (
	"Encore/config"
	"Encore/middleware"
	"Encore/pkg/context"
	"Encore/pkg/response"
	"Encore/service"
	"Encore/types"
	"time"

	"github.com/gin-gonic/gin"
)

type Feed struct {
	Config      *config.Config
	FeedService service.IFeedService
}

func (f *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	r.GET("/v1/feed", authorize, context.Wrap(f.GetFeed))
}

// GetFeed 发现流: 最新在前，排除用户表态过的全部剧目
func (f *Feed) GetFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidationError(response.MsgInvalidQuery, err.Error())
	}

	var since *time.Time
	if req.Since != "" {
		t, err := time.Parse(time.RFC3339, req.Since)
		if err != nil {
			return response.NewValidationError(response.MsgInvalidQuery, "since 不是合法的 ISO8601 时间")
		}
		since = &t
	}

	total, items, err := f.FeedService.SelectFeed(c.Request.Context(), userID, req.Per, since)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, types.FeedResponse{Total: total, Items: items})
	return nil
}
