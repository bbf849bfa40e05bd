/**
 * 仓储:操作日志数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 操作日志表数据访问，只增不改，支持批量清理
 * @func: OperLogRepository
 */
package mysql

import (
	"context"
	"fmt"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// OperLogRepository 操作日志数据仓库
type OperLogRepository struct {
	db *gorm.DB
}

// NewOperLogRepository 创建操作日志仓库实例
func NewOperLogRepository(db *gorm.DB) *OperLogRepository {
	return &OperLogRepository{db: db}
}

// Create 写入一条操作日志
func (r *OperLogRepository) Create(ctx context.Context, log *model.SysOperLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create oper log: %w", err)
	}
	return nil
}

// List 分页查询操作日志
func (r *OperLogRepository) List(ctx context.Context, query *model.OperLogQueryRequest) ([]model.SysOperLog, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SysOperLog{})
	if query.Title != "" {
		db = db.Where("title LIKE ?", "%"+query.Title+"%")
	}
	if query.OperName != "" {
		db = db.Where("oper_name LIKE ?", "%"+query.OperName+"%")
	}
	if query.BusinessType > 0 {
		db = db.Where("business_type = ?", query.BusinessType)
	}
	if query.Status != nil {
		db = db.Where("status = ?", *query.Status)
	}
	if query.RequestMethod != "" {
		db = db.Where("request_method = ?", query.RequestMethod)
	}
	if query.BeginTime != "" && query.EndTime != "" {
		db = db.Where("oper_time BETWEEN ? AND ?", query.BeginTime, query.EndTime)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count oper logs: %w", err)
	}

	var logs []model.SysOperLog
	err := db.Order("oper_time DESC").
		Offset(query.Offset()).Limit(query.Limit()).
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list oper logs: %w", err)
	}
	return logs, total, nil
}

// Delete 删除指定操作日志
func (r *OperLogRepository) Delete(ctx context.Context, operIDs []int64) error {
	if len(operIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("oper_id IN ?", operIDs).
		Delete(&model.SysOperLog{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete oper logs: %w", err)
	}
	return nil
}

// Clean 清空全部操作日志
func (r *OperLogRepository) Clean(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.SysOperLog{}).Error
	if err != nil {
		return fmt.Errorf("failed to clean oper logs: %w", err)
	}
	return nil
}
