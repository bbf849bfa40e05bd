/**
 * 处理器:认证接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 登录、登出与用户信息聚合接口
 * @func: AuthHandler
 */
package auth

import (
	"strings"

	"rbacadmin/internal/app/middleware"
	"rbacadmin/internal/handler/response"
	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/utils"
	authservice "rbacadmin/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证接口处理器
type AuthHandler struct {
	sessionService    *authservice.SessionService
	permissionService *authservice.PermissionService
}

// NewAuthHandler 创建认证处理器实例
func NewAuthHandler(sessionService *authservice.SessionService, permissionService *authservice.PermissionService) *AuthHandler {
	return &AuthHandler{
		sessionService:    sessionService,
		permissionService: permissionService,
	}
}

// Login 用户登录
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "用户名或密码格式错误")
		return
	}

	loginCtx := &authservice.LoginContext{
		ClientIP:  utils.GetClientIP(c),
		UserAgent: c.Request.UserAgent(),
	}
	result, err := h.sessionService.Login(c.Request.Context(), &req, loginCtx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, result, "登录成功")
}

// Logout 用户登出
// POST /auth/logout - 对已过期令牌同样返回成功
func (h *AuthHandler) Logout(c *gin.Context) {
	token := ""
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 {
			token = strings.TrimSpace(parts[1])
		}
	}

	loginCtx := &authservice.LoginContext{
		ClientIP:  utils.GetClientIP(c),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.sessionService.Logout(c.Request.Context(), token, loginCtx); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, nil, "退出成功")
}

// GetInfo 当前用户的身份、角色与权限聚合
// GET /auth/getInfo
func (h *AuthHandler) GetInfo(c *gin.Context) {
	authCtx := middleware.GetAuthContext(c)
	if authCtx == nil {
		response.Unauthorized(c)
		return
	}

	info, err := h.permissionService.GetUserInfo(c.Request.Context(), authCtx.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}
