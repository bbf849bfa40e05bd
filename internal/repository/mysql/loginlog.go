/**
 * 仓储:登录日志数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 登录日志表数据访问，只增不改，支持批量清理
 * @func: LoginLogRepository
 */
package mysql

import (
	"context"
	"fmt"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// LoginLogRepository 登录日志数据仓库
type LoginLogRepository struct {
	db *gorm.DB
}

// NewLoginLogRepository 创建登录日志仓库实例
func NewLoginLogRepository(db *gorm.DB) *LoginLogRepository {
	return &LoginLogRepository{db: db}
}

// Create 写入一条登录日志
func (r *LoginLogRepository) Create(ctx context.Context, log *model.SysLogininfor) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create login log: %w", err)
	}
	return nil
}

// List 分页查询登录日志
func (r *LoginLogRepository) List(ctx context.Context, query *model.LoginLogQueryRequest) ([]model.SysLogininfor, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SysLogininfor{})
	if query.UserName != "" {
		db = db.Where("user_name LIKE ?", "%"+query.UserName+"%")
	}
	if query.IPAddr != "" {
		db = db.Where("ipaddr LIKE ?", "%"+query.IPAddr+"%")
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.BeginTime != "" && query.EndTime != "" {
		db = db.Where("login_time BETWEEN ? AND ?", query.BeginTime, query.EndTime)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count login logs: %w", err)
	}

	var logs []model.SysLogininfor
	err := db.Order("login_time DESC").
		Offset(query.Offset()).Limit(query.Limit()).
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list login logs: %w", err)
	}
	return logs, total, nil
}

// Delete 删除指定登录日志
func (r *LoginLogRepository) Delete(ctx context.Context, infoIDs []int64) error {
	if len(infoIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("info_id IN ?", infoIDs).
		Delete(&model.SysLogininfor{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete login logs: %w", err)
	}
	return nil
}

// Clean 清空全部登录日志
func (r *LoginLogRepository) Clean(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.SysLogininfor{}).Error
	if err != nil {
		return fmt.Errorf("failed to clean login logs: %w", err)
	}
	return nil
}
