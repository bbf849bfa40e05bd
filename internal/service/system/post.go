/**
 * 服务:岗位管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 岗位CRUD，编码唯一，被用户引用时拒绝删除
 * @func: PostService
 */
package system

import (
	"context"

	"rbacadmin/internal/model"
)

// PostRepo 岗位服务依赖的数据访问接口
type PostRepo interface {
	GetByID(ctx context.Context, postID int64) (*model.SysPost, error)
	GetByCode(ctx context.Context, postCode string) (*model.SysPost, error)
	List(ctx context.Context, query *model.PostQueryRequest) ([]model.SysPost, int64, error)
	ListAll(ctx context.Context) ([]model.SysPost, error)
	ListByIDs(ctx context.Context, postIDs []int64) ([]model.SysPost, error)
	Create(ctx context.Context, post *model.SysPost) error
	Update(ctx context.Context, post *model.SysPost) error
	Delete(ctx context.Context, postIDs []int64) error
	CountUserRefs(ctx context.Context, postID int64) (int64, error)
}

// PostService 岗位服务
type PostService struct {
	postRepo PostRepo
}

// NewPostService 创建岗位服务实例
func NewPostService(postRepo PostRepo) *PostService {
	return &PostService{postRepo: postRepo}
}

// List 分页查询岗位列表
func (s *PostService) List(ctx context.Context, query *model.PostQueryRequest) ([]model.SysPost, int64, error) {
	return s.postRepo.List(ctx, query)
}

// ListAll 查询全部岗位
func (s *PostService) ListAll(ctx context.Context) ([]model.SysPost, error) {
	return s.postRepo.ListAll(ctx)
}

// GetByID 获取岗位详情
func (s *PostService) GetByID(ctx context.Context, postID int64) (*model.SysPost, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, model.NewBizErrorf("岗位不存在: %d", postID)
	}
	return post, nil
}

// Create 新增岗位，编码唯一
func (s *PostService) Create(ctx context.Context, authCtx *model.AuthContext, req *model.CreatePostRequest) (*model.SysPost, error) {
	existing, err := s.postRepo.GetByCode(ctx, req.PostCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewBizErrorf("岗位编码已存在: %s", req.PostCode)
	}

	status := req.Status
	if status == "" {
		status = model.StatusNormal
	}

	post := &model.SysPost{
		TenantID:     authCtx.TenantID,
		DeptID:       req.DeptID,
		PostCode:     req.PostCode,
		PostName:     req.PostName,
		PostCategory: req.PostCategory,
		PostSort:     req.PostSort,
		Status:       status,
	}
	post.CreateBy = authCtx.Username
	post.Remark = req.Remark

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update 修改岗位
func (s *PostService) Update(ctx context.Context, authCtx *model.AuthContext, req *model.UpdatePostRequest) error {
	post, err := s.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}
	if req.PostCode != post.PostCode {
		existing, err := s.postRepo.GetByCode(ctx, req.PostCode)
		if err != nil {
			return err
		}
		if existing != nil && existing.PostID != post.PostID {
			return model.NewBizErrorf("岗位编码已存在: %s", req.PostCode)
		}
	}

	post.DeptID = req.DeptID
	post.PostCode = req.PostCode
	post.PostName = req.PostName
	post.PostCategory = req.PostCategory
	post.PostSort = req.PostSort
	if req.Status != "" {
		post.Status = req.Status
	}
	post.Remark = req.Remark
	post.UpdateBy = authCtx.Username

	return s.postRepo.Update(ctx, post)
}

// Delete 批量删除岗位，被用户引用时拒绝
func (s *PostService) Delete(ctx context.Context, postIDs []int64) error {
	for _, postID := range postIDs {
		post, err := s.GetByID(ctx, postID)
		if err != nil {
			return err
		}
		count, err := s.postRepo.CountUserRefs(ctx, postID)
		if err != nil {
			return err
		}
		if count > 0 {
			return model.NewBizErrorf("岗位已分配用户,不允许删除: %s", post.PostName)
		}
	}
	return s.postRepo.Delete(ctx, postIDs)
}
