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

// Like 点赞视角的兼容接口，底下还是同一张 reactions 表
type Like struct {
	Config          *config.Config
	ReactionService service.IReactionService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/likes")
	g.GET("", authorize, context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.DELETE("", authorize, context.Wrap(h.Remove))
}

// List 用户点赞过且当前仍是 LIKE 的剧目
func (h *Like) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	like := models.ReactionLike
	likes, err := h.ReactionService.ListByStatus(c.Request.Context(), userID, &like)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, types.ReactionListResponse{Likes: likes})
	return nil
}

// Create 点赞
// already_existed 只在之前就是 LIKE 时为 true，给前端做提示用
func (h *Like) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(response.MsgInvalidBody, err.Error())
	}

	reaction, alreadyExisted, err := h.ReactionService.Like(c.Request.Context(), userID, req.WorkID)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, types.LikeResponse{Like: reaction, AlreadyExisted: alreadyExisted})
	return nil
}

// Remove 取消点赞
// 不删记录，状态改成 DISLIKE，这样该剧目不会回流到发现流里
func (h *Like) Remove(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.UnlikeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidationError(response.MsgInvalidQuery, err.Error())
	}

	if _, err := h.ReactionService.Dislike(c.Request.Context(), userID, req.WorkID); err != nil {
		return asBizError(err)
	}

	response.Success(c, types.UnlikeResponse{Disliked: true})
	return nil
}
