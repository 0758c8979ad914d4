package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 对外只暴露机器可读的错误码，细节只进日志
const (
	MsgUnauthorized = "unauthorized"
	MsgInvalidBody  = "invalid_body"
	MsgInvalidQuery = "invalid_query"
	MsgNotFound     = "not_found"
	MsgConflict     = "conflict"
	MsgForbidden    = "forbidden"
	MsgTimeout      = "upstream_timeout"
	MsgServerError  = "server_error"
)

type BizError struct {
	Code    int
	Msg     string
	Details any
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// NewValidationError 带字段级明细的 400
func NewValidationError(msg string, details any) *BizError {
	return &BizError{
		Code:    http.StatusBadRequest,
		Msg:     msg,
		Details: details,
	}
}

func Unauthorized() *BizError {
	return NewError(http.StatusUnauthorized, MsgUnauthorized)
}

func Forbidden() *BizError {
	return NewError(http.StatusForbidden, MsgForbidden)
}

func NotFound() *BizError {
	return NewError(http.StatusNotFound, MsgNotFound)
}

func Conflict() *BizError {
	return NewError(http.StatusConflict, MsgConflict)
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  MsgServerError,
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, MsgServerError)
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
