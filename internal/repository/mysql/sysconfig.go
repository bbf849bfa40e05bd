/**
 * 仓储:参数配置数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 参数配置表数据访问
 * @func: ConfigRepository
 */
package mysql

import (
	"context"
	"errors"
	"fmt"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// ConfigRepository 参数配置数据仓库
type ConfigRepository struct {
	db *gorm.DB
}

// NewConfigRepository 创建参数配置仓库实例
func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// GetByID 根据ID获取参数配置，未找到返回nil
func (r *ConfigRepository) GetByID(ctx context.Context, configID int64) (*model.SysConfig, error) {
	var cfg model.SysConfig
	err := r.db.WithContext(ctx).
		Where("config_id = ?", configID).
		First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get config by id: %w", err)
	}
	return &cfg, nil
}

// GetByKey 根据键获取参数配置，未找到返回nil
func (r *ConfigRepository) GetByKey(ctx context.Context, configKey string) (*model.SysConfig, error) {
	var cfg model.SysConfig
	err := r.db.WithContext(ctx).
		Where("config_key = ?", configKey).
		First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get config by key: %w", err)
	}
	return &cfg, nil
}

// List 分页查询参数配置
func (r *ConfigRepository) List(ctx context.Context, query *model.ConfigQueryRequest) ([]model.SysConfig, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SysConfig{})
	if query.ConfigName != "" {
		db = db.Where("config_name LIKE ?", "%"+query.ConfigName+"%")
	}
	if query.ConfigKey != "" {
		db = db.Where("config_key LIKE ?", "%"+query.ConfigKey+"%")
	}
	if query.ConfigType != "" {
		db = db.Where("config_type = ?", query.ConfigType)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count configs: %w", err)
	}

	var configs []model.SysConfig
	err := db.Order("config_id ASC").
		Offset(query.Offset()).Limit(query.Limit()).
		Find(&configs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list configs: %w", err)
	}
	return configs, total, nil
}

// Create 创建参数配置
func (r *ConfigRepository) Create(ctx context.Context, cfg *model.SysConfig) error {
	if err := r.db.WithContext(ctx).Create(cfg).Error; err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	return nil
}

// Update 更新参数配置
func (r *ConfigRepository) Update(ctx context.Context, cfg *model.SysConfig) error {
	err := r.db.WithContext(ctx).Model(&model.SysConfig{}).
		Where("config_id = ?", cfg.ConfigID).
		Updates(cfg).Error
	if err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}
	return nil
}

// Delete 删除参数配置
func (r *ConfigRepository) Delete(ctx context.Context, configIDs []int64) error {
	if len(configIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("config_id IN ?", configIDs).
		Delete(&model.SysConfig{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete configs: %w", err)
	}
	return nil
}
