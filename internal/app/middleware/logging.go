/**
 * 中间件:访问日志与异常恢复
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 请求ID注入、访问日志记录与panic恢复
 * @func: RequestID、AccessLog、Recovery
 */
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey 请求ID在gin.Context中的键
const requestIDKey = "request_id"

// RequestID 为每个请求生成唯一ID，响应头回传便于排查
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// AccessLog 访问日志中间件
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()

		var userID int64
		if authCtx := GetAuthContext(c); authCtx != nil {
			userID = authCtx.UserID
		}
		logger.LogAccessRequest(c, startTime, c.GetString(requestIDKey), userID)
	}
}

// Recovery panic恢复中间件，堆栈只落服务端日志，响应保持安全消息
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.LogError(
					fmt.Errorf("panic recovered: %v", r),
					c.GetString(requestIDKey),
					0,
					c.ClientIP(),
					c.Request.URL.Path,
					c.Request.Method,
					nil,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					model.ErrResult(http.StatusInternalServerError, "系统内部错误,请稍后重试"))
			}
		}()
		c.Next()
	}
}
