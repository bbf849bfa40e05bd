/**
 * 中间件:JWT认证
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 解析Bearer令牌并构造认证上下文，校验失败统一返回401
 * @func: JWTAuth、GetAuthContext
 */
package middleware

import (
	"strings"

	"rbacadmin/internal/handler/response"
	"rbacadmin/internal/model"
	"rbacadmin/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// authContextKey 认证上下文在gin.Context中的键
const authContextKey = "auth_context"

// JWTAuth JWT认证中间件
// 令牌校验通过后把认证上下文放入请求上下文，后续处理器显式取出传给服务层
func JWTAuth(sessionService *auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		authCtx, err := sessionService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(authContextKey, authCtx)
		c.Next()
	}
}

// extractBearerToken 从Authorization头提取Bearer令牌
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetAuthContext 从gin.Context取出认证上下文
// 只在JWTAuth之后的处理器中调用，取不到说明路由配置有误
func GetAuthContext(c *gin.Context) *model.AuthContext {
	value, exists := c.Get(authContextKey)
	if !exists {
		return nil
	}
	authCtx, ok := value.(*model.AuthContext)
	if !ok {
		return nil
	}
	return authCtx
}
