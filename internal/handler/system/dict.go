/**
 * 处理器:字典管理接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 字典类型与字典数据CRUD接口
 * @func: DictHandler
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

// DictHandler 字典管理接口处理器
type DictHandler struct {
	dictService *system.DictService
}

// NewDictHandler 创建字典处理器实例
func NewDictHandler(dictService *system.DictService) *DictHandler {
	return &DictHandler{dictService: dictService}
}

// ListTypes 分页查询字典类型列表
// GET /system/dict/type/list
func (h *DictHandler) ListTypes(c *gin.Context) {
	var query model.DictTypeQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	types, total, err := h.dictService.ListTypes(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, types, total)
}

// TypeOptionselect 字典类型下拉选项
// GET /system/dict/type/optionselect
func (h *DictHandler) TypeOptionselect(c *gin.Context) {
	types, err := h.dictService.ListAllTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, types)
}

// GetType 获取字典类型详情
// GET /system/dict/type/:dictId
func (h *DictHandler) GetType(c *gin.Context) {
	dictID, err := utils.ParseID(c.Param("dictId"))
	if err != nil {
		response.BadRequest(c, "字典ID格式错误")
		return
	}
	dictType, err := h.dictService.GetTypeByID(c.Request.Context(), dictID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dictType)
}

// CreateType 新增字典类型
// POST /system/dict/type
func (h *DictHandler) CreateType(c *gin.Context) {
	var req model.CreateDictTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	dictType, err := h.dictService.CreateType(c.Request.Context(), middleware.GetAuthContext(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dictType)
}

// UpdateType 修改字典类型，类型标识变更时同步字典数据
// PUT /system/dict/type
func (h *DictHandler) UpdateType(c *gin.Context) {
	var req model.UpdateDictTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.dictService.UpdateType(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// DeleteTypes 批量删除字典类型
// DELETE /system/dict/type/:dictIds
func (h *DictHandler) DeleteTypes(c *gin.Context) {
	dictIDs, err := utils.ParseIDList(c.Param("dictIds"))
	if err != nil {
		response.BadRequest(c, "字典ID格式错误")
		return
	}
	if err := h.dictService.DeleteTypes(c.Request.Context(), dictIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// ListData 分页查询字典数据列表
// GET /system/dict/data/list
func (h *DictHandler) ListData(c *gin.Context) {
	var query model.DictDataQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	data, total, err := h.dictService.ListData(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, data, total)
}

// ListDataByType 按字典类型查询正常状态的字典数据
// GET /system/dict/data/type/:dictType
func (h *DictHandler) ListDataByType(c *gin.Context) {
	dictType := c.Param("dictType")
	if dictType == "" {
		response.BadRequest(c, "字典类型不能为空")
		return
	}
	data, err := h.dictService.ListDataByType(c.Request.Context(), dictType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// GetData 获取字典数据详情
// GET /system/dict/data/:dictCode
func (h *DictHandler) GetData(c *gin.Context) {
	dictCode, err := utils.ParseID(c.Param("dictCode"))
	if err != nil {
		response.BadRequest(c, "字典编码格式错误")
		return
	}
	data, err := h.dictService.GetDataByCode(c.Request.Context(), dictCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// CreateData 新增字典数据
// POST /system/dict/data
func (h *DictHandler) CreateData(c *gin.Context) {
	var req model.CreateDictDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	data, err := h.dictService.CreateData(c.Request.Context(), middleware.GetAuthContext(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// UpdateData 修改字典数据
// PUT /system/dict/data
func (h *DictHandler) UpdateData(c *gin.Context) {
	var req model.UpdateDictDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.dictService.UpdateData(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// DeleteData 批量删除字典数据
// DELETE /system/dict/data/:dictCodes
func (h *DictHandler) DeleteData(c *gin.Context) {
	dictCodes, err := utils.ParseIDList(c.Param("dictCodes"))
	if err != nil {
		response.BadRequest(c, "字典编码格式错误")
		return
	}
	if err := h.dictService.DeleteData(c.Request.Context(), dictCodes); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
