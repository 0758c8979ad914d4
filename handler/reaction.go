package handler

import (
	"Encore/config"
	"Encore/middleware"
	"Encore/models"
	"Encore/pkg/context"
	"Encore/pkg/response"
	"Encore/service"
	"Encore/types"

	"github.com/gin-gonic/gin"
)

type Reaction struct {
	Config          *config.Config
	ReactionService service.IReactionService
}

func (h *Reaction) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/reactions")
	g.POST("", authorize, context.Wrap(h.Upsert))
	g.GET("", authorize, context.Wrap(h.List))
}

// Upsert 写入表态，同一 (user, work) 重复提交就是覆盖
func (h *Reaction) Upsert(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.ReactionUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(response.MsgInvalidBody, err.Error())
	}
	status := models.ReactionStatus(req.Status)
	if !status.Valid() {
		return response.NewValidationError(response.MsgInvalidBody, "status 只能是 LIKE/DISLIKE/SEEN")
	}

	reaction, err := h.ReactionService.React(c.Request.Context(), userID, req.WorkID, status)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, types.ReactionResponse{Reaction: reaction})
	return nil
}

// List 表态列表，?status=LIKE 就是点赞列表
func (h *Reaction) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.ReactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidationError(response.MsgInvalidQuery, err.Error())
	}

	var status *models.ReactionStatus
	if req.Status != "" {
		s := models.ReactionStatus(req.Status)
		if !s.Valid() {
			return response.NewValidationError(response.MsgInvalidQuery, "status 只能是 LIKE/DISLIKE/SEEN")
		}
		status = &s
	}

	likes, err := h.ReactionService.ListByStatus(c.Request.Context(), userID, status)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, types.ReactionListResponse{Likes: likes})
	return nil
}
