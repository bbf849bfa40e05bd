/**
 * 处理器:角色管理接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 角色CRUD与状态切换接口
 * @func: RoleHandler
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

// RoleHandler 角色管理接口处理器
type RoleHandler struct {
	roleService *system.RoleService
}

// NewRoleHandler 创建角色处理器实例
func NewRoleHandler(roleService *system.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// List 分页查询角色列表
// GET /system/role/list
func (h *RoleHandler) List(c *gin.Context) {
	var query model.RoleQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	roles, total, err := h.roleService.List(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, roles, total)
}

// Get 获取角色详情
// GET /system/role/:roleId
func (h *RoleHandler) Get(c *gin.Context) {
	roleID, err := utils.ParseID(c.Param("roleId"))
	if err != nil {
		response.BadRequest(c, "角色ID格式错误")
		return
	}
	role, err := h.roleService.GetByID(c.Request.Context(), roleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, role)
}

// Create 新增角色
// POST /system/role
func (h *RoleHandler) Create(c *gin.Context) {
	var req model.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	role, err := h.roleService.Create(c.Request.Context(), middleware.GetAuthContext(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, role)
}

// Update 修改角色
// PUT /system/role
func (h *RoleHandler) Update(c *gin.Context) {
	var req model.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.roleService.Update(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// ChangeStatus 切换角色状态
// PUT /system/role/changeStatus
func (h *RoleHandler) ChangeStatus(c *gin.Context) {
	var req model.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.roleService.ChangeStatus(c.Request.Context(), middleware.GetAuthContext(c), req.RoleID, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Delete 批量删除角色
// DELETE /system/role/:roleIds
func (h *RoleHandler) Delete(c *gin.Context) {
	roleIDs, err := utils.ParseIDList(c.Param("roleIds"))
	if err != nil {
		response.BadRequest(c, "角色ID格式错误")
		return
	}
	if err := h.roleService.Delete(c.Request.Context(), roleIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
