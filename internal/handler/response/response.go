/**
 * 处理器:统一响应输出
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 统一响应信封的输出与错误到状态码的映射
 * @func: OK、Page、Error
 */
package response

import (
	"errors"
	"net/http"

	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// OK 输出成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, model.OkResult(data))
}

// OKMessage 输出带自定义消息的成功响应
func OKMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, model.OkResultWithMessage(data, message))
}

// Page 输出分页成功响应
func Page(c *gin.Context, rows interface{}, total int64) {
	c.JSON(http.StatusOK, model.OkPageResult(rows, total))
}

// BadRequest 输出参数错误响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.ErrResult(http.StatusBadRequest, message))
}

// Unauthorized 输出统一的认证失败响应
// 无论具体是哪种令牌错误，响应体保持一致
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, model.ErrResult(http.StatusUnauthorized, "Token无效或已过期，请重新登录"))
}

// Error 按错误类型输出响应
// 业务错误映射400，认证错误映射401，其余按基础设施错误兜底为500且不泄漏内部信息
func Error(c *gin.Context, err error) {
	var bizErr *model.BizError
	if errors.As(err, &bizErr) {
		c.JSON(http.StatusBadRequest, model.ErrResult(bizErr.Code, bizErr.Message))
		return
	}

	var authErr *model.AuthError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusUnauthorized, model.ErrResult(http.StatusUnauthorized, authErr.Message))
		return
	}

	requestID := c.GetString("request_id")
	logger.LogError(err, requestID, 0, c.ClientIP(), c.Request.URL.Path, c.Request.Method, nil)
	c.JSON(http.StatusInternalServerError, model.ErrResult(http.StatusInternalServerError, "系统内部错误,请稍后重试"))
}
