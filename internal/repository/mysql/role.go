/**
 * 仓储:角色数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 角色表及角色-菜单关联的数据访问
 * @func: RoleRepository
 */
package mysql

import (
	"context"
	"errors"
	"fmt"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// RoleRepository 角色数据仓库
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建角色仓库实例
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByID 根据ID获取角色，未找到返回nil
func (r *RoleRepository) GetByID(ctx context.Context, roleID int64) (*model.SysRole, error) {
	var role model.SysRole
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("role_id = ?", roleID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by id: %w", err)
	}
	return &role, nil
}

// GetActiveByIDs 获取指定ID中状态正常且未删除的角色
func (r *RoleRepository) GetActiveByIDs(ctx context.Context, roleIDs []int64) ([]model.SysRole, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}
	var roles []model.SysRole
	err := r.db.WithContext(ctx).Scopes(NotDeleted, StatusNormal).
		Where("role_id IN ?", roleIDs).
		Order("role_sort ASC").
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get roles by ids: %w", err)
	}
	return roles, nil
}

// GetByName 按角色名称查询，未找到返回nil
func (r *RoleRepository) GetByName(ctx context.Context, roleName string) (*model.SysRole, error) {
	var role model.SysRole
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("role_name = ?", roleName).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}
	return &role, nil
}

// GetByKey 按权限字符查询，未找到返回nil
func (r *RoleRepository) GetByKey(ctx context.Context, roleKey string) (*model.SysRole, error) {
	var role model.SysRole
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("role_key = ?", roleKey).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by key: %w", err)
	}
	return &role, nil
}

// List 分页查询角色列表
func (r *RoleRepository) List(ctx context.Context, query *model.RoleQueryRequest) ([]model.SysRole, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SysRole{}).Scopes(NotDeleted)

	if query.RoleName != "" {
		db = db.Where("role_name LIKE ?", "%"+query.RoleName+"%")
	}
	if query.RoleKey != "" {
		db = db.Where("role_key LIKE ?", "%"+query.RoleKey+"%")
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count roles: %w", err)
	}

	var roles []model.SysRole
	err := db.Order("role_sort ASC").
		Offset(query.Offset()).Limit(query.Limit()).
		Find(&roles).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, total, nil
}

// ListAll 查询全部未删除角色
func (r *RoleRepository) ListAll(ctx context.Context) ([]model.SysRole, error) {
	var roles []model.SysRole
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Order("role_sort ASC").
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list all roles: %w", err)
	}
	return roles, nil
}

// Create 创建角色
func (r *RoleRepository) Create(ctx context.Context, role *model.SysRole) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

// Update 更新角色
func (r *RoleRepository) Update(ctx context.Context, role *model.SysRole) error {
	err := r.db.WithContext(ctx).Model(&model.SysRole{}).
		Where("role_id = ?", role.RoleID).
		Updates(role).Error
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

// UpdateColumns 按列更新角色
func (r *RoleRepository) UpdateColumns(ctx context.Context, roleID int64, values map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&model.SysRole{}).
		Where("role_id = ?", roleID).
		Updates(values).Error
	if err != nil {
		return fmt.Errorf("failed to update role columns: %w", err)
	}
	return nil
}

// SoftDelete 软删除角色并移除其菜单关联
func (r *RoleRepository) SoftDelete(ctx context.Context, roleIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SysRole{}).
			Where("role_id IN ?", roleIDs).
			Update("del_flag", model.DelFlagDeleted).Error; err != nil {
			return fmt.Errorf("failed to soft delete roles: %w", err)
		}
		if err := tx.Where("role_id IN ?", roleIDs).
			Delete(&model.SysRoleMenu{}).Error; err != nil {
			return fmt.Errorf("failed to delete role menus: %w", err)
		}
		return nil
	})
}

// GetMenuIDsByRoleID 获取角色关联的菜单ID列表
func (r *RoleRepository) GetMenuIDsByRoleID(ctx context.Context, roleID int64) ([]int64, error) {
	var menuIDs []int64
	err := r.db.WithContext(ctx).Model(&model.SysRoleMenu{}).
		Where("role_id = ?", roleID).
		Pluck("menu_id", &menuIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get menu ids by role: %w", err)
	}
	return menuIDs, nil
}

// GetMenuIDsByRoleIDs 获取多个角色关联菜单ID的并集
func (r *RoleRepository) GetMenuIDsByRoleIDs(ctx context.Context, roleIDs []int64) ([]int64, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}
	var menuIDs []int64
	err := r.db.WithContext(ctx).Model(&model.SysRoleMenu{}).
		Where("role_id IN ?", roleIDs).
		Distinct("menu_id").
		Pluck("menu_id", &menuIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get menu ids by roles: %w", err)
	}
	return menuIDs, nil
}

// ReplaceRoleMenus 重建角色的菜单关联（先删后插）
func (r *RoleRepository) ReplaceRoleMenus(ctx context.Context, roleID int64, menuIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).
			Delete(&model.SysRoleMenu{}).Error; err != nil {
			return fmt.Errorf("failed to clear role menus: %w", err)
		}
		if len(menuIDs) == 0 {
			return nil
		}
		rows := make([]model.SysRoleMenu, 0, len(menuIDs))
		for _, menuID := range menuIDs {
			rows = append(rows, model.SysRoleMenu{RoleID: roleID, MenuID: menuID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert role menus: %w", err)
		}
		return nil
	})
}

// CountMenuRefs 统计引用了指定菜单的角色数量
func (r *RoleRepository) CountMenuRefs(ctx context.Context, menuID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SysRoleMenu{}).
		Where("menu_id = ?", menuID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count menu refs: %w", err)
	}
	return count, nil
}
