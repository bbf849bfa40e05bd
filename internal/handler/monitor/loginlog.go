/**
 * 处理器:登录日志接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 登录日志查询与清理接口
 * @func: LoginLogHandler
 */
package monitor

import (
	"rbacadmin/internal/handler/response"
	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/utils"
	"rbacadmin/internal/service/monitor"

	"github.com/gin-gonic/gin"
)

// LoginLogHandler 登录日志接口处理器
type LoginLogHandler struct {
	loginLogService *monitor.LoginLogService
}

// NewLoginLogHandler 创建登录日志处理器实例
func NewLoginLogHandler(loginLogService *monitor.LoginLogService) *LoginLogHandler {
	return &LoginLogHandler{loginLogService: loginLogService}
}

// List 分页查询登录日志
// GET /monitor/logininfor/list
func (h *LoginLogHandler) List(c *gin.Context) {
	var query model.LoginLogQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	logs, total, err := h.loginLogService.List(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, logs, total)
}

// Delete 批量删除登录日志
// DELETE /monitor/logininfor/:infoIds
func (h *LoginLogHandler) Delete(c *gin.Context) {
	infoIDs, err := utils.ParseIDList(c.Param("infoIds"))
	if err != nil {
		response.BadRequest(c, "日志ID格式错误")
		return
	}
	if err := h.loginLogService.Delete(c.Request.Context(), infoIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Clean 清空登录日志
// DELETE /monitor/logininfor/clean
func (h *LoginLogHandler) Clean(c *gin.Context) {
	if err := h.loginLogService.Clean(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
