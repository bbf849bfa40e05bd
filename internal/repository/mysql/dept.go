/**
 * 仓储:部门数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 部门表数据访问，子树ancestors重写在单个事务内完成
 * @func: DeptRepository
 */
package mysql

import (
	"context"
	"errors"
	"fmt"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// DeptRepository 部门数据仓库
type DeptRepository struct {
	db *gorm.DB
}

// NewDeptRepository 创建部门仓库实例
func NewDeptRepository(db *gorm.DB) *DeptRepository {
	return &DeptRepository{db: db}
}

// GetByID 根据ID获取部门，未找到返回nil
func (r *DeptRepository) GetByID(ctx context.Context, deptID int64) (*model.SysDept, error) {
	var dept model.SysDept
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("dept_id = ?", deptID).
		First(&dept).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dept by id: %w", err)
	}
	return &dept, nil
}

// ListAll 查询全部未删除部门，按层级与排序号排列
func (r *DeptRepository) ListAll(ctx context.Context) ([]model.SysDept, error) {
	var depts []model.SysDept
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Order("parent_id ASC, order_num ASC").
		Find(&depts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list all depts: %w", err)
	}
	return depts, nil
}

// ListByQuery 按名称和状态过滤查询部门
func (r *DeptRepository) ListByQuery(ctx context.Context, query *model.DeptQueryRequest) ([]model.SysDept, error) {
	db := r.db.WithContext(ctx).Model(&model.SysDept{}).Scopes(NotDeleted)
	if query.DeptName != "" {
		db = db.Where("dept_name LIKE ?", "%"+query.DeptName+"%")
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var depts []model.SysDept
	err := db.Order("parent_id ASC, order_num ASC").Find(&depts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list depts: %w", err)
	}
	return depts, nil
}

// ListByIDs 查询指定ID的未删除部门
func (r *DeptRepository) ListByIDs(ctx context.Context, deptIDs []int64) ([]model.SysDept, error) {
	if len(deptIDs) == 0 {
		return nil, nil
	}
	var depts []model.SysDept
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("dept_id IN ?", deptIDs).
		Order("order_num ASC").
		Find(&depts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list depts by ids: %w", err)
	}
	return depts, nil
}

// GetByNameAndParent 按名称与父ID查询未删除部门，未找到返回nil
func (r *DeptRepository) GetByNameAndParent(ctx context.Context, deptName string, parentID int64) (*model.SysDept, error) {
	var dept model.SysDept
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("dept_name = ? AND parent_id = ?", deptName, parentID).
		First(&dept).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dept by name and parent: %w", err)
	}
	return &dept, nil
}

// CountChildren 统计直接子部门数量
func (r *DeptRepository) CountChildren(ctx context.Context, deptID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SysDept{}).Scopes(NotDeleted).
		Where("parent_id = ?", deptID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count dept children: %w", err)
	}
	return count, nil
}

// Create 创建部门
func (r *DeptRepository) Create(ctx context.Context, dept *model.SysDept) error {
	if err := r.db.WithContext(ctx).Create(dept).Error; err != nil {
		return fmt.Errorf("failed to create dept: %w", err)
	}
	return nil
}

// Update 更新部门
func (r *DeptRepository) Update(ctx context.Context, dept *model.SysDept) error {
	err := r.db.WithContext(ctx).Model(&model.SysDept{}).
		Where("dept_id = ?", dept.DeptID).
		Updates(dept).Error
	if err != nil {
		return fmt.Errorf("failed to update dept: %w", err)
	}
	return nil
}

// UpdateWithDescendants 在单个事务内更新部门并重写所有后代的ancestors
// updates 是按部门ID分组的列更新集合，并发的交叉换父不会交错出半新半旧的路径
func (r *DeptRepository) UpdateWithDescendants(ctx context.Context, dept *model.SysDept, descendantAncestors map[int64]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SysDept{}).
			Where("dept_id = ?", dept.DeptID).
			Updates(map[string]interface{}{
				"parent_id":     dept.ParentID,
				"ancestors":     dept.Ancestors,
				"dept_name":     dept.DeptName,
				"dept_category": dept.DeptCategory,
				"order_num":     dept.OrderNum,
				"leader":        dept.Leader,
				"phone":         dept.Phone,
				"email":         dept.Email,
				"status":        dept.Status,
				"update_by":     dept.UpdateBy,
			}).Error; err != nil {
			return fmt.Errorf("failed to update dept: %w", err)
		}
		for deptID, ancestors := range descendantAncestors {
			if err := tx.Model(&model.SysDept{}).
				Where("dept_id = ?", deptID).
				Update("ancestors", ancestors).Error; err != nil {
				return fmt.Errorf("failed to rewrite ancestors of dept %d: %w", deptID, err)
			}
		}
		return nil
	})
}

// SoftDelete 批量软删除部门
func (r *DeptRepository) SoftDelete(ctx context.Context, deptIDs []int64) error {
	if len(deptIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&model.SysDept{}).
		Where("dept_id IN ?", deptIDs).
		Update("del_flag", model.DelFlagDeleted).Error
	if err != nil {
		return fmt.Errorf("failed to soft delete depts: %w", err)
	}
	return nil
}
