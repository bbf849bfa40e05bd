/**
 * 处理器:用户管理接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 用户CRUD、密码维护、个人中心与Excel导入导出接口
 * @func: UserHandler
 */
package system

import (
	"fmt"
	"net/http"

	"rbacadmin/internal/app/middleware"
	"rbacadmin/internal/handler/response"
	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/utils"
	"rbacadmin/internal/service/system"

	"github.com/gin-gonic/gin"
)

// excelContentType xlsx文件的MIME类型
const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// UserHandler 用户管理接口处理器
type UserHandler struct {
	userService *system.UserService
	roleService *system.RoleService
	postService *system.PostService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userService *system.UserService, roleService *system.RoleService, postService *system.PostService) *UserHandler {
	return &UserHandler{
		userService: userService,
		roleService: roleService,
		postService: postService,
	}
}

// List 分页查询用户列表
// GET /system/user/list
func (h *UserHandler) List(c *gin.Context) {
	var query model.UserQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	users, total, err := h.userService.List(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, users, total)
}

// Get 获取用户详情，附带角色、岗位选项
// GET /system/user/:userId
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := utils.ParseID(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "用户ID格式错误")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	roleIDs, postIDs, err := h.userService.GetRoleAndPostIDs(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	roles, err := h.roleService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	posts, err := h.postService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"user":    user,
		"roleIds": roleIDs,
		"postIds": postIDs,
		"roles":   roles,
		"posts":   posts,
	})
}

// Create 新增用户
// POST /system/user
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	user, err := h.userService.Create(c.Request.Context(), middleware.GetAuthContext(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Update 修改用户
// PUT /system/user
func (h *UserHandler) Update(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.userService.Update(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Delete 批量删除用户
// DELETE /system/user/:userIds
func (h *UserHandler) Delete(c *gin.Context) {
	userIDs, err := utils.ParseIDList(c.Param("userIds"))
	if err != nil {
		response.BadRequest(c, "用户ID格式错误")
		return
	}
	if err := h.userService.Delete(c.Request.Context(), middleware.GetAuthContext(c), userIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// ResetPassword 管理员重置用户密码
// PUT /system/user/resetPwd
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.userService.ResetPassword(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// ChangeStatus 切换用户状态
// PUT /system/user/changeStatus
func (h *UserHandler) ChangeStatus(c *gin.Context) {
	var req model.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.userService.ChangeStatus(c.Request.Context(), middleware.GetAuthContext(c), req.UserID, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Profile 当前用户个人信息
// GET /system/user/profile
func (h *UserHandler) Profile(c *gin.Context) {
	authCtx := middleware.GetAuthContext(c)
	user, err := h.userService.GetByID(c.Request.Context(), authCtx.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// UpdateProfile 修改个人信息
// PUT /system/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.userService.UpdateProfile(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// UpdatePassword 修改个人密码
// PUT /system/user/profile/updatePwd
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req model.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.userService.UpdatePassword(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Export 导出用户数据为Excel
// POST /system/user/export
func (h *UserHandler) Export(c *gin.Context) {
	var query model.UserQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	file, err := h.userService.Export(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", excelContentType)
	c.Header("Content-Disposition", `attachment; filename="user_data.xlsx"`)
	if err := file.Write(c.Writer); err != nil {
		response.Error(c, fmt.Errorf("failed to write excel response: %w", err))
	}
}

// ImportTemplate 下载用户导入模板
// POST /system/user/importTemplate
func (h *UserHandler) ImportTemplate(c *gin.Context) {
	file, err := h.userService.ImportTemplate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", excelContentType)
	c.Header("Content-Disposition", `attachment; filename="user_import_template.xlsx"`)
	if err := file.Write(c.Writer); err != nil {
		response.Error(c, fmt.Errorf("failed to write excel response: %w", err))
	}
}

// ImportData 从Excel导入用户
// POST /system/user/importData
func (h *UserHandler) ImportData(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "请选择导入文件")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "导入文件读取失败")
		return
	}
	defer file.Close()

	initPassword := c.DefaultPostForm("initPassword", "123456")
	msg, err := h.userService.Import(c.Request.Context(), middleware.GetAuthContext(c), file, initPassword)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OkResultWithMessage(nil, msg))
}
