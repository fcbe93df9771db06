package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/loxx3450/Schedule-App-sub000/pkg/jwt"
	"github.com/loxx3450/Schedule-App-sub000/pkg/redis"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// JWTAuth extracts and verifies the access token from
// Authorization: Bearer <token>. rdb may be nil; the blacklist check is then
// skipped. On success teacher_id, username and role are injected into the
// request context.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token is invalid or expired")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "invalid token type")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// blacklist unavailable: fail closed
				logger.Error("token blacklist check failed", zap.Error(err))
				response.InternalError(c)
				c.Abort()
				return
			}
			if blacklisted {
				response.Unauthorized(c, 10002, "token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set("teacher_id", claims.TeacherID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}
