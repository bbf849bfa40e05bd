/**
 * 仓储:字典数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 字典类型与字典数据的数据访问
 * @func: DictRepository
 */
package mysql

import (
	"context"
	"errors"
	"fmt"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// DictRepository 字典数据仓库
type DictRepository struct {
	db *gorm.DB
}

// NewDictRepository 创建字典仓库实例
func NewDictRepository(db *gorm.DB) *DictRepository {
	return &DictRepository{db: db}
}

// GetTypeByID 根据ID获取字典类型，未找到返回nil
func (r *DictRepository) GetTypeByID(ctx context.Context, dictID int64) (*model.SysDictType, error) {
	var dictType model.SysDictType
	err := r.db.WithContext(ctx).
		Where("dict_id = ?", dictID).
		First(&dictType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dict type by id: %w", err)
	}
	return &dictType, nil
}

// GetTypeByType 根据类型字符串获取字典类型，未找到返回nil
func (r *DictRepository) GetTypeByType(ctx context.Context, dictType string) (*model.SysDictType, error) {
	var record model.SysDictType
	err := r.db.WithContext(ctx).
		Where("dict_type = ?", dictType).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dict type: %w", err)
	}
	return &record, nil
}

// ListTypes 分页查询字典类型
func (r *DictRepository) ListTypes(ctx context.Context, query *model.DictTypeQueryRequest) ([]model.SysDictType, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SysDictType{})
	if query.DictName != "" {
		db = db.Where("dict_name LIKE ?", "%"+query.DictName+"%")
	}
	if query.DictType != "" {
		db = db.Where("dict_type LIKE ?", "%"+query.DictType+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count dict types: %w", err)
	}

	var types []model.SysDictType
	err := db.Order("dict_id ASC").
		Offset(query.Offset()).Limit(query.Limit()).
		Find(&types).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list dict types: %w", err)
	}
	return types, total, nil
}

// ListAllTypes 查询全部字典类型
func (r *DictRepository) ListAllTypes(ctx context.Context) ([]model.SysDictType, error) {
	var types []model.SysDictType
	err := r.db.WithContext(ctx).Order("dict_id ASC").Find(&types).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list all dict types: %w", err)
	}
	return types, nil
}

// CreateType 创建字典类型
func (r *DictRepository) CreateType(ctx context.Context, dictType *model.SysDictType) error {
	if err := r.db.WithContext(ctx).Create(dictType).Error; err != nil {
		return fmt.Errorf("failed to create dict type: %w", err)
	}
	return nil
}

// UpdateType 更新字典类型，类型字符串变化时同步字典数据
func (r *DictRepository) UpdateType(ctx context.Context, dictType *model.SysDictType, oldDictType string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SysDictType{}).
			Where("dict_id = ?", dictType.DictID).
			Updates(dictType).Error; err != nil {
			return fmt.Errorf("failed to update dict type: %w", err)
		}
		if oldDictType != "" && oldDictType != dictType.DictType {
			if err := tx.Model(&model.SysDictData{}).
				Where("dict_type = ?", oldDictType).
				Update("dict_type", dictType.DictType).Error; err != nil {
				return fmt.Errorf("failed to sync dict data type: %w", err)
			}
		}
		return nil
	})
}

// DeleteTypes 删除字典类型
func (r *DictRepository) DeleteTypes(ctx context.Context, dictIDs []int64) error {
	if len(dictIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("dict_id IN ?", dictIDs).
		Delete(&model.SysDictType{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete dict types: %w", err)
	}
	return nil
}

// CountDataByType 统计指定类型下的字典数据数量
func (r *DictRepository) CountDataByType(ctx context.Context, dictType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SysDictData{}).
		Where("dict_type = ?", dictType).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count dict data: %w", err)
	}
	return count, nil
}

// GetDataByCode 根据编码获取字典数据，未找到返回nil
func (r *DictRepository) GetDataByCode(ctx context.Context, dictCode int64) (*model.SysDictData, error) {
	var data model.SysDictData
	err := r.db.WithContext(ctx).
		Where("dict_code = ?", dictCode).
		First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dict data by code: %w", err)
	}
	return &data, nil
}

// ListData 分页查询字典数据
func (r *DictRepository) ListData(ctx context.Context, query *model.DictDataQueryRequest) ([]model.SysDictData, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SysDictData{})
	if query.DictType != "" {
		db = db.Where("dict_type = ?", query.DictType)
	}
	if query.DictLabel != "" {
		db = db.Where("dict_label LIKE ?", "%"+query.DictLabel+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count dict data: %w", err)
	}

	var data []model.SysDictData
	err := db.Order("dict_sort ASC").
		Offset(query.Offset()).Limit(query.Limit()).
		Find(&data).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list dict data: %w", err)
	}
	return data, total, nil
}

// ListDataByType 查询指定类型的全部字典数据
func (r *DictRepository) ListDataByType(ctx context.Context, dictType string) ([]model.SysDictData, error) {
	var data []model.SysDictData
	err := r.db.WithContext(ctx).
		Where("dict_type = ?", dictType).
		Order("dict_sort ASC").
		Find(&data).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dict data by type: %w", err)
	}
	return data, nil
}

// CreateData 创建字典数据
func (r *DictRepository) CreateData(ctx context.Context, data *model.SysDictData) error {
	if err := r.db.WithContext(ctx).Create(data).Error; err != nil {
		return fmt.Errorf("failed to create dict data: %w", err)
	}
	return nil
}

// UpdateData 更新字典数据
func (r *DictRepository) UpdateData(ctx context.Context, data *model.SysDictData) error {
	err := r.db.WithContext(ctx).Model(&model.SysDictData{}).
		Where("dict_code = ?", data.DictCode).
		Updates(data).Error
	if err != nil {
		return fmt.Errorf("failed to update dict data: %w", err)
	}
	return nil
}

// DeleteData 删除字典数据
func (r *DictRepository) DeleteData(ctx context.Context, dictCodes []int64) error {
	if len(dictCodes) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("dict_code IN ?", dictCodes).
		Delete(&model.SysDictData{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete dict data: %w", err)
	}
	return nil
}
