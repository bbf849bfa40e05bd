/**
 * 处理器:通知公告接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 通知公告CRUD接口
 * @func: NoticeHandler
 */
package system

import (
	"rbacadmin/internal/app/middleware"
	"rbacadmin/internal/handler/response"
	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/utils"
	"rbacadmin/internal/service/system"

	"github.com/gin-gonic/gin"
)

// NoticeHandler 通知公告接口处理器
type NoticeHandler struct {
	noticeService *system.NoticeService
}

// NewNoticeHandler 创建通知公告处理器实例
func NewNoticeHandler(noticeService *system.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// List 分页查询通知公告列表
// GET /system/notice/list
func (h *NoticeHandler) List(c *gin.Context) {
	var query model.NoticeQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	notices, total, err := h.noticeService.List(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, notices, total)
}

// Get 获取通知公告详情
// GET /system/notice/:noticeId
func (h *NoticeHandler) Get(c *gin.Context) {
	noticeID, err := utils.ParseID(c.Param("noticeId"))
	if err != nil {
		response.BadRequest(c, "公告ID格式错误")
		return
	}
	notice, err := h.noticeService.GetByID(c.Request.Context(), noticeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, notice)
}

// Create 新增通知公告
// POST /system/notice
func (h *NoticeHandler) Create(c *gin.Context) {
	var req model.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	notice, err := h.noticeService.Create(c.Request.Context(), middleware.GetAuthContext(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, notice)
}

// Update 修改通知公告
// PUT /system/notice
func (h *NoticeHandler) Update(c *gin.Context) {
	var req model.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.noticeService.Update(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Delete 批量删除通知公告
// DELETE /system/notice/:noticeIds
func (h *NoticeHandler) Delete(c *gin.Context) {
	noticeIDs, err := utils.ParseIDList(c.Param("noticeIds"))
	if err != nil {
		response.BadRequest(c, "公告ID格式错误")
		return
	}
	if err := h.noticeService.Delete(c.Request.Context(), noticeIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
