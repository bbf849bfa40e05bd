/**
 * 处理器:部门管理接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 部门CRUD与树形选择接口
 * @func: DeptHandler
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

// DeptHandler 部门管理接口处理器
type DeptHandler struct {
	deptService *system.DeptService
}

// NewDeptHandler 创建部门处理器实例
func NewDeptHandler(deptService *system.DeptService) *DeptHandler {
	return &DeptHandler{deptService: deptService}
}

// List 查询部门平铺列表
// GET /system/dept/list
func (h *DeptHandler) List(c *gin.Context) {
	var query model.DeptQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	depts, err := h.deptService.List(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, depts)
}

// ListExcludeChild 查询排除指定节点及其子树的部门列表
// GET /system/dept/list/exclude/:deptId
func (h *DeptHandler) ListExcludeChild(c *gin.Context) {
	deptID, err := utils.ParseID(c.Param("deptId"))
	if err != nil {
		response.BadRequest(c, "部门ID格式错误")
		return
	}
	depts, err := h.deptService.FindListExcludeChild(c.Request.Context(), deptID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, depts)
}

// Get 获取部门详情
// GET /system/dept/:deptId
func (h *DeptHandler) Get(c *gin.Context) {
	deptID, err := utils.ParseID(c.Param("deptId"))
	if err != nil {
		response.BadRequest(c, "部门ID格式错误")
		return
	}
	dept, err := h.deptService.GetByID(c.Request.Context(), deptID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dept)
}

// Treeselect 部门树形选择器数据
// GET /system/dept/treeselect
func (h *DeptHandler) Treeselect(c *gin.Context) {
	tree, err := h.deptService.BuildDeptTreeOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tree)
}

// Create 新增部门
// POST /system/dept
func (h *DeptHandler) Create(c *gin.Context) {
	var req model.CreateDeptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	dept, err := h.deptService.Create(c.Request.Context(), middleware.GetAuthContext(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dept)
}

// Update 修改部门，变更上级时同步刷新整棵子树的祖先链
// PUT /system/dept
func (h *DeptHandler) Update(c *gin.Context) {
	var req model.UpdateDeptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.deptService.Update(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Delete 批量删除部门
// DELETE /system/dept/:deptIds
func (h *DeptHandler) Delete(c *gin.Context) {
	deptIDs, err := utils.ParseIDList(c.Param("deptIds"))
	if err != nil {
		response.BadRequest(c, "部门ID格式错误")
		return
	}
	if err := h.deptService.Delete(c.Request.Context(), deptIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
