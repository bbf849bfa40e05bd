/**
 * 仓储:岗位数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 岗位表数据访问
 * @func: PostRepository
 */
package mysql

import (
	"context"
	"errors"
	"fmt"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// PostRepository 岗位数据仓库
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建岗位仓库实例
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// GetByID 根据ID获取岗位，未找到返回nil
func (r *PostRepository) GetByID(ctx context.Context, postID int64) (*model.SysPost, error) {
	var post model.SysPost
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}
	return &post, nil
}

// GetByCode 根据编码获取岗位，未找到返回nil
func (r *PostRepository) GetByCode(ctx context.Context, postCode string) (*model.SysPost, error) {
	var post model.SysPost
	err := r.db.WithContext(ctx).
		Where("post_code = ?", postCode).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post by code: %w", err)
	}
	return &post, nil
}

// List 分页查询岗位列表
func (r *PostRepository) List(ctx context.Context, query *model.PostQueryRequest) ([]model.SysPost, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SysPost{})

	if query.PostCode != "" {
		db = db.Where("post_code LIKE ?", "%"+query.PostCode+"%")
	}
	if query.PostName != "" {
		db = db.Where("post_name LIKE ?", "%"+query.PostName+"%")
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	var posts []model.SysPost
	err := db.Order("post_sort ASC").
		Offset(query.Offset()).Limit(query.Limit()).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}

// ListAll 查询全部岗位
func (r *PostRepository) ListAll(ctx context.Context) ([]model.SysPost, error) {
	var posts []model.SysPost
	err := r.db.WithContext(ctx).Order("post_sort ASC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list all posts: %w", err)
	}
	return posts, nil
}

// ListByIDs 查询指定ID的岗位
func (r *PostRepository) ListByIDs(ctx context.Context, postIDs []int64) ([]model.SysPost, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var posts []model.SysPost
	err := r.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by ids: %w", err)
	}
	return posts, nil
}

// Create 创建岗位
func (r *PostRepository) Create(ctx context.Context, post *model.SysPost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update 更新岗位
func (r *PostRepository) Update(ctx context.Context, post *model.SysPost) error {
	err := r.db.WithContext(ctx).Model(&model.SysPost{}).
		Where("post_id = ?", post.PostID).
		Updates(post).Error
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// Delete 删除岗位
func (r *PostRepository) Delete(ctx context.Context, postIDs []int64) error {
	if len(postIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Delete(&model.SysPost{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete posts: %w", err)
	}
	return nil
}

// CountUserRefs 统计岗位被用户引用的数量
func (r *PostRepository) CountUserRefs(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SysUserPost{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count post user refs: %w", err)
	}
	return count, nil
}
