package handler

import (
	"Encore/pkg/context"
	"Encore/pkg/response"
	"Encore/service"
	"Encore/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
}

// Register 注册
func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(response.MsgInvalidBody, err.Error())
	}

	user, err := a.AuthService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return asBizError(err)
	}

	response.Created(c, types.RegisterResponse{ID: user.ID, Email: user.Email})
	return nil
}

// Login 登录
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(response.MsgInvalidBody, err.Error())
	}

	token, err := a.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, types.LoginResponse{AccessToken: token})
	return nil
}
