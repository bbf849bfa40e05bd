/**
 * 处理器:岗位管理接口
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 岗位CRUD接口
 * @func: PostHandler
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

// PostHandler 岗位管理接口处理器
type PostHandler struct {
	postService *system.PostService
}

// NewPostHandler 创建岗位处理器实例
func NewPostHandler(postService *system.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List 分页查询岗位列表
// GET /system/post/list
func (h *PostHandler) List(c *gin.Context) {
	var query model.PostQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数格式错误")
		return
	}
	posts, total, err := h.postService.List(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, posts, total)
}

// Optionselect 岗位下拉选项
// GET /system/post/optionselect
func (h *PostHandler) Optionselect(c *gin.Context) {
	posts, err := h.postService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, posts)
}

// Get 获取岗位详情
// GET /system/post/:postId
func (h *PostHandler) Get(c *gin.Context) {
	postID, err := utils.ParseID(c.Param("postId"))
	if err != nil {
		response.BadRequest(c, "岗位ID格式错误")
		return
	}
	post, err := h.postService.GetByID(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, post)
}

// Create 新增岗位
// POST /system/post
func (h *PostHandler) Create(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	post, err := h.postService.Create(c.Request.Context(), middleware.GetAuthContext(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, post)
}

// Update 修改岗位
// PUT /system/post
func (h *PostHandler) Update(c *gin.Context) {
	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数格式错误")
		return
	}
	if err := h.postService.Update(c.Request.Context(), middleware.GetAuthContext(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Delete 批量删除岗位
// DELETE /system/post/:postIds
func (h *PostHandler) Delete(c *gin.Context) {
	postIDs, err := utils.ParseIDList(c.Param("postIds"))
	if err != nil {
		response.BadRequest(c, "岗位ID格式错误")
		return
	}
	if err := h.postService.Delete(c.Request.Context(), postIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
