/**
 * 仓储:通知公告数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 通知公告表数据访问
 * @func: NoticeRepository
 */
package mysql

import (
	"context"
	"errors"
	"fmt"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// NoticeRepository 通知公告数据仓库
type NoticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository 创建通知公告仓库实例
func NewNoticeRepository(db *gorm.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// GetByID 根据ID获取通知公告，未找到返回nil
func (r *NoticeRepository) GetByID(ctx context.Context, noticeID int64) (*model.SysNotice, error) {
	var notice model.SysNotice
	err := r.db.WithContext(ctx).
		Where("notice_id = ?", noticeID).
		First(&notice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notice by id: %w", err)
	}
	return &notice, nil
}

// List 分页查询通知公告
func (r *NoticeRepository) List(ctx context.Context, query *model.NoticeQueryRequest) ([]model.SysNotice, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SysNotice{})
	if query.NoticeTitle != "" {
		db = db.Where("notice_title LIKE ?", "%"+query.NoticeTitle+"%")
	}
	if query.NoticeType != "" {
		db = db.Where("notice_type = ?", query.NoticeType)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notices: %w", err)
	}

	var notices []model.SysNotice
	err := db.Order("notice_id DESC").
		Offset(query.Offset()).Limit(query.Limit()).
		Find(&notices).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notices: %w", err)
	}
	return notices, total, nil
}

// Create 创建通知公告
func (r *NoticeRepository) Create(ctx context.Context, notice *model.SysNotice) error {
	if err := r.db.WithContext(ctx).Create(notice).Error; err != nil {
		return fmt.Errorf("failed to create notice: %w", err)
	}
	return nil
}

// Update 更新通知公告
func (r *NoticeRepository) Update(ctx context.Context, notice *model.SysNotice) error {
	err := r.db.WithContext(ctx).Model(&model.SysNotice{}).
		Where("notice_id = ?", notice.NoticeID).
		Updates(notice).Error
	if err != nil {
		return fmt.Errorf("failed to update notice: %w", err)
	}
	return nil
}

// Delete 删除通知公告
func (r *NoticeRepository) Delete(ctx context.Context, noticeIDs []int64) error {
	if len(noticeIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("notice_id IN ?", noticeIDs).
		Delete(&model.SysNotice{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete notices: %w", err)
	}
	return nil
}
