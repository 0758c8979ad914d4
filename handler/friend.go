package handler

import (
	"Encore/config"
	"Encore/middleware"
	"Encore/pkg/context"
	"Encore/pkg/response"
	"Encore/service"
	"Encore/types"

	"github.com/gin-gonic/gin"
)

type Friend struct {
	Config        *config.Config
	FriendService service.IFriendService
	MutualService service.IMutualService
}

func (f *Friend) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/friends")
	g.GET("", authorize, context.Wrap(f.List))
	g.GET("/invite", authorize, context.Wrap(f.Invite))
	g.POST("", authorize, context.Wrap(f.Add))

	r.GET("/v1/mutual", authorize, context.Wrap(f.Mutual))
}

// Invite 生成邀请令牌
func (f *Friend) Invite(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	token, err := f.FriendService.InviteToken(userID)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, types.InviteResponse{Token: token})
	return nil
}

// Add 凭令牌加好友，双向建边
func (f *Friend) Add(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(response.MsgInvalidBody, err.Error())
	}

	if err := f.FriendService.AddFriend(c.Request.Context(), userID, req.Token); err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"ok": true})
	return nil
}

// List 好友列表
func (f *Friend) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	friends, err := f.FriendService.ListFriends(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, types.FriendListResponse{Friends: friends})
	return nil
}

// Mutual 共同点赞的剧目
// 这里强制要求好友关系，没有边就 403
func (f *Friend) Mutual(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.MutualRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidationError(response.MsgInvalidQuery, err.Error())
	}

	isFriend, err := f.FriendService.IsFriend(c.Request.Context(), userID, req.FriendID)
	if err != nil {
		return asBizError(err)
	}
	if !isFriend {
		return asBizError(service.ErrNotFriends)
	}

	common, err := f.MutualService.MutualLikes(c.Request.Context(), userID, req.FriendID)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, types.MutualResponse{Common: common})
	return nil
}
