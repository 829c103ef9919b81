package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"rocketbird/models"
	"rocketbird/pkg/context"
	"rocketbird/pkg/jwt"
	"rocketbird/pkg/response"
)

// Auth 会员端鉴权，token 即将过期时在响应头里下发新 token
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret, jwt.TypeAccess)
		if !ok {
			return
		}
		if time.Until(claims.ExpiresAt.Time) < 10*time.Minute {
			newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.OpenID, "", jwt.TypeAccess, 24*time.Hour)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxOpenID, claims.OpenID)
		c.Next()
	}
}

// AdminAuth 后台鉴权。传入 roles 时额外校验角色，
// 超管隐含拥有全部角色。
func AdminAuth(secret []byte, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret, jwt.TypeAdmin)
		if !ok {
			return
		}
		if len(roles) > 0 && claims.Role != models.RoleSuper {
			allowed := false
			for _, role := range roles {
				if claims.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				response.Abort(c, http.StatusForbidden, "无权操作")
				return
			}
		}
		c.Set(context.CtxAdminID, claims.UserID)
		c.Set(context.CtxRole, claims.Role)
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte, tokenType string) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
		return nil, false
	}
	claims, err := jwt.ParseToken(secret, tokenType, parts[1])
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, err.Error())
		return nil, false
	}
	return claims, true
}
