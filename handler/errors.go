package handler

import (
	"Encore/pkg/response"
	"Encore/service"
	"errors"
	"net/http"
)

// 服务层哨兵错误翻译成对外错误码，翻译不了的交给 Wrap 按 500 兜底
func asBizError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return response.Unauthorized()
	case errors.Is(err, service.ErrBadCredentials):
		return response.NewError(http.StatusUnauthorized, "bad_credentials")
	case errors.Is(err, service.ErrWorkNotFound):
		return response.NewError(http.StatusNotFound, "work_not_found")
	case errors.Is(err, service.ErrUserNotFound):
		return response.NewError(http.StatusNotFound, "user_not_found")
	case errors.Is(err, service.ErrNotFriends):
		return response.Forbidden()
	case errors.Is(err, service.ErrSelfFriend):
		return response.NewError(http.StatusBadRequest, "cannot_add_self")
	case errors.Is(err, service.ErrInvalidToken):
		return response.NewError(http.StatusBadRequest, "invalid_token")
	case errors.Is(err, service.ErrInvalidEmail):
		return response.NewError(http.StatusBadRequest, "invalid_email")
	case errors.Is(err, service.ErrWeakPassword):
		return response.NewError(http.StatusBadRequest, "weak_password")
	case errors.Is(err, service.ErrEmailExists):
		return response.NewError(http.StatusConflict, "email_exists")
	case errors.Is(err, service.ErrFeedTimeout):
		return response.NewError(http.StatusInternalServerError, response.MsgTimeout)
	}
	return err
}
