package middleware

import (
	"fmt"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/response"

	"github.com/gin-gonic/gin"
)

// parseToken 从 cookie 或 Authorization header 中解析 token
func parseToken(c *gin.Context) (*pkg.Claims, error) {
	var tokenString string

	// 优先从 cookie 中获取 access_token
	tokenString, err := c.Cookie("access_token")
	if err != nil || tokenString == "" {
		// 如果 cookie 中没有，尝试从 Authorization header 获取
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return nil, fmt.Errorf("missing authentication token")
		}

		// 验证格式: Bearer <token> 或 Token <token>
		switch {
		case len(authHeader) > 7 && authHeader[:7] == "Bearer ":
			tokenString = authHeader[7:]
		case len(authHeader) > 6 && authHeader[:6] == "Token ":
			tokenString = authHeader[6:]
		default:
			return nil, fmt.Errorf("malformed authorization header")
		}
	}

	return pkg.ParseAccessToken(tokenString)
}

// JWTAuth JWT 认证中间件（必需认证）
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("invalid or missing authentication token"),
				response.WithError(err),
			))
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", claims.UserID())
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// OptionalJWTAuth 可选的 JWT 认证中间件（不强制要求认证，但如果有token则解析）
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err == nil && claims != nil {
			c.Set("user_id", claims.UserID())
			c.Set("username", claims.Username)
			c.Set("email", claims.Email)
		}
		// 无论是否有 token，都继续执行
		c.Next()
	}
}

// CurrentUserID 从上下文取当前用户ID，匿名请求返回空串
func CurrentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
