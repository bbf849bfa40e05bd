/**
 * 处理器:参数配置接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 系统参数CRUD与键值查询接口
 * @func: ConfigHandler
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

// ConfigHandler 参数配置接口处理器
type ConfigHandler struct {
	configService *system.ConfigService
}

// NewConfigHandler 创建参数配置处理器实例
func NewConfigHandler(configService *system.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// List 分页查询参数列表
// GET /system/config/list
func (h *ConfigHandler) List(c *gin.Context) {
	var query model.ConfigQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	configs, total, err := h.configService.List(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, configs, total)
}

// Get 获取参数详情
// GET /system/config/:configId
func (h *ConfigHandler) Get(c *gin.Context) {
	configID, err := utils.ParseID(c.Param("configId"))
	if err != nil {
		response.BadRequest(c, "参数ID格式错误")
		return
	}
	cfg, err := h.configService.GetByID(c.Request.Context(), configID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cfg)
}

// GetByKey 按参数键名查询参数值
// GET /system/config/configKey/:configKey
func (h *ConfigHandler) GetByKey(c *gin.Context) {
	configKey := c.Param("configKey")
	if configKey == "" {
		response.BadRequest(c, "参数键名不能为空")
		return
	}
	value, err := h.configService.GetValueByKey(c.Request.Context(), configKey)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, value)
}

// Create 新增参数
// POST /system/config
func (h *ConfigHandler) Create(c *gin.Context) {
	var req model.CreateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	cfg, err := h.configService.Create(c.Request.Context(), middleware.GetAuthContext(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cfg)
}

// Update 修改参数
// PUT /system/config
func (h *ConfigHandler) Update(c *gin.Context) {
	var req model.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.configService.Update(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Delete 批量删除参数，内置参数拒绝删除
// DELETE /system/config/:configIds
func (h *ConfigHandler) Delete(c *gin.Context) {
	configIDs, err := utils.ParseIDList(c.Param("configIds"))
	if err != nil {
		response.BadRequest(c, "参数ID格式错误")
		return
	}
	if err := h.configService.Delete(c.Request.Context(), configIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
