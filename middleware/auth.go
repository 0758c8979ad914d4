package middleware

import (
	"net/http"
	"strings"
	"time"

	"Encore/pkg/jwt"
	"Encore/pkg/response"

	"github.com/gin-gonic/gin"
)

const accessTokenType = "access"

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, response.MsgUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, response.MsgUnauthorized)
			return
		}

		claims, err := jwt.ParseToken(secret, accessTokenType, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, response.MsgUnauthorized)
			return
		}
		// 快过期了就顺手续一个
		if time.Until(claims.ExpiresAt.Time) < time.Minute {
			newToken, _ := jwt.GenerateToken(
				secret,
				claims.UserID,
				accessTokenType,
				15*time.Minute,
			)
			c.Header("X-New-Access-Token", newToken)
		}
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
