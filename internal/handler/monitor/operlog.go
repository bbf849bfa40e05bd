/**
 * 处理器:操作日志接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 操作日志查询与清理接口
 * @func: OperLogHandler
 */
package monitor

import (
	"rbacadmin/internal/handler/response"
	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/utils"
	"rbacadmin/internal/service/monitor"

	"github.com/gin-gonic/gin"
)

// OperLogHandler 操作日志接口处理器
type OperLogHandler struct {
	operLogService *monitor.OperLogService
}

// NewOperLogHandler 创建操作日志处理器实例
func NewOperLogHandler(operLogService *monitor.OperLogService) *OperLogHandler {
	return &OperLogHandler{operLogService: operLogService}
}

// List 分页查询操作日志
// GET /monitor/operlog/list
func (h *OperLogHandler) List(c *gin.Context) {
	var query model.OperLogQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	logs, total, err := h.operLogService.List(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, logs, total)
}

// Delete 批量删除操作日志
// DELETE /monitor/operlog/:operIds
func (h *OperLogHandler) Delete(c *gin.Context) {
	operIDs, err := utils.ParseIDList(c.Param("operIds"))
	if err != nil {
		response.BadRequest(c, "日志ID格式错误")
		return
	}
	if err := h.operLogService.Delete(c.Request.Context(), operIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Clean 清空操作日志
// DELETE /monitor/operlog/clean
func (h *OperLogHandler) Clean(c *gin.Context) {
	if err := h.operLogService.Clean(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
