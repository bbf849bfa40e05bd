/**
 * 处理器:菜单管理接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 菜单CRUD、树形选择与前端路由接口
 * @func: MenuHandler
 */
package system

import (
	"rbacadmin/internal/app/middleware"
	"rbacadmin/internal/handler/response"
	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/utils"
	authservice "rbacadmin/internal/service/auth"
	"rbacadmin/internal/service/system"

	"github.com/gin-gonic/gin"
)

// MenuHandler 菜单管理接口处理器
type MenuHandler struct {
	menuService       *system.MenuService
	permissionService *authservice.PermissionService
}

// NewMenuHandler 创建菜单处理器实例
func NewMenuHandler(menuService *system.MenuService, permissionService *authservice.PermissionService) *MenuHandler {
	return &MenuHandler{
		menuService:       menuService,
		permissionService: permissionService,
	}
}

// List 查询菜单平铺列表
// GET /system/menu/list
func (h *MenuHandler) List(c *gin.Context) {
	var query model.MenuQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	menus, err := h.menuService.List(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, menus)
}

// Get 获取菜单详情
// GET /system/menu/:menuId
func (h *MenuHandler) Get(c *gin.Context) {
	menuID, err := utils.ParseID(c.Param("menuId"))
	if err != nil {
		response.BadRequest(c, "菜单ID格式错误")
		return
	}
	menu, err := h.menuService.GetByID(c.Request.Context(), menuID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, menu)
}

// Treeselect 菜单树形选择器数据
// GET /system/menu/treeselect
func (h *MenuHandler) Treeselect(c *gin.Context) {
	tree, err := h.menuService.FindMenuTree(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tree)
}

// RoleMenuTreeselect 角色的菜单树与已勾选集合
// GET /system/menu/roleMenuTreeselect/:roleId
func (h *MenuHandler) RoleMenuTreeselect(c *gin.Context) {
	roleID, err := utils.ParseID(c.Param("roleId"))
	if err != nil {
		response.BadRequest(c, "角色ID格式错误")
		return
	}
	tree, err := h.menuService.FindRoleMenuTree(c.Request.Context(), roleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tree)
}

// GetRouters 当前用户的前端路由树
// GET /system/menu/getRouters
func (h *MenuHandler) GetRouters(c *gin.Context) {
	authCtx := middleware.GetAuthContext(c)
	routes, err := h.permissionService.GetRouters(c.Request.Context(), authCtx.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, routes)
}

// Create 新增菜单
// POST /system/menu
func (h *MenuHandler) Create(c *gin.Context) {
	var req model.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	menu, err := h.menuService.Create(c.Request.Context(), middleware.GetAuthContext(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, menu)
}

// Update 修改菜单
// PUT /system/menu
func (h *MenuHandler) Update(c *gin.Context) {
	var req model.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.menuService.Update(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Delete 删除单个菜单，存在子菜单时拒绝
// DELETE /system/menu/:menuId
func (h *MenuHandler) Delete(c *gin.Context) {
	menuID, err := utils.ParseID(c.Param("menuId"))
	if err != nil {
		response.BadRequest(c, "菜单ID格式错误")
		return
	}
	if err := h.menuService.Delete(c.Request.Context(), menuID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// CascadeDelete 级联删除菜单及其整个子树
// DELETE /system/menu/cascade/:menuIds
func (h *MenuHandler) CascadeDelete(c *gin.Context) {
	menuIDs, err := utils.ParseIDList(c.Param("menuIds"))
	if err != nil {
		response.BadRequest(c, "菜单ID格式错误")
		return
	}
	if err := h.menuService.CascadeDelete(c.Request.Context(), menuIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
