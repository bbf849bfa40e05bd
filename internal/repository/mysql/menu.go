/**
 * 仓储:菜单数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 菜单表数据访问，含路由构建与级联删除需要的批量查询
 * @func: MenuRepository
 */
package mysql

import (
	"context"
	"errors"
	"fmt"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// MenuRepository 菜单数据仓库
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository 创建菜单仓库实例
func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// GetByID 根据ID获取菜单，未找到返回nil
func (r *MenuRepository) GetByID(ctx context.Context, menuID int64) (*model.SysMenu, error) {
	var menu model.SysMenu
	err := r.db.WithContext(ctx).
		Where("menu_id = ?", menuID).
		First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu by id: %w", err)
	}
	return &menu, nil
}

// ListAll 查询全部菜单
func (r *MenuRepository) ListAll(ctx context.Context) ([]model.SysMenu, error) {
	var menus []model.SysMenu
	err := r.db.WithContext(ctx).
		Order("parent_id ASC, order_num ASC").
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list all menus: %w", err)
	}
	return menus, nil
}

// ListByQuery 按名称和状态过滤查询菜单
func (r *MenuRepository) ListByQuery(ctx context.Context, query *model.MenuQueryRequest) ([]model.SysMenu, error) {
	db := r.db.WithContext(ctx).Model(&model.SysMenu{})
	if query.MenuName != "" {
		db = db.Where("menu_name LIKE ?", "%"+query.MenuName+"%")
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var menus []model.SysMenu
	err := db.Order("parent_id ASC, order_num ASC").Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

// ListVisibleNormal 查询状态正常且可见的菜单，用于路由构建
func (r *MenuRepository) ListVisibleNormal(ctx context.Context) ([]model.SysMenu, error) {
	var menus []model.SysMenu
	err := r.db.WithContext(ctx).Scopes(StatusNormal).
		Where("visible = ?", model.StatusNormal).
		Order("parent_id ASC, order_num ASC").
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visible menus: %w", err)
	}
	return menus, nil
}

// ListNormalByIDs 查询指定ID中状态正常的菜单
func (r *MenuRepository) ListNormalByIDs(ctx context.Context, menuIDs []int64) ([]model.SysMenu, error) {
	if len(menuIDs) == 0 {
		return nil, nil
	}
	var menus []model.SysMenu
	err := r.db.WithContext(ctx).Scopes(StatusNormal).
		Where("menu_id IN ?", menuIDs).
		Order("parent_id ASC, order_num ASC").
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menus by ids: %w", err)
	}
	return menus, nil
}

// ListByIDs 查询指定ID的菜单
func (r *MenuRepository) ListByIDs(ctx context.Context, menuIDs []int64) ([]model.SysMenu, error) {
	if len(menuIDs) == 0 {
		return nil, nil
	}
	var menus []model.SysMenu
	err := r.db.WithContext(ctx).
		Where("menu_id IN ?", menuIDs).
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menus by ids: %w", err)
	}
	return menus, nil
}

// CountChildren 统计直接子菜单数量
func (r *MenuRepository) CountChildren(ctx context.Context, menuID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SysMenu{}).
		Where("parent_id = ?", menuID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count menu children: %w", err)
	}
	return count, nil
}

// GetByNameAndParent 按名称与父ID查询，未找到返回nil
func (r *MenuRepository) GetByNameAndParent(ctx context.Context, menuName string, parentID int64) (*model.SysMenu, error) {
	var menu model.SysMenu
	err := r.db.WithContext(ctx).
		Where("menu_name = ? AND parent_id = ?", menuName, parentID).
		First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu by name and parent: %w", err)
	}
	return &menu, nil
}

// Create 创建菜单
func (r *MenuRepository) Create(ctx context.Context, menu *model.SysMenu) error {
	if err := r.db.WithContext(ctx).Create(menu).Error; err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}
	return nil
}

// Update 更新菜单
func (r *MenuRepository) Update(ctx context.Context, menu *model.SysMenu) error {
	err := r.db.WithContext(ctx).Model(&model.SysMenu{}).
		Where("menu_id = ?", menu.MenuID).
		Updates(menu).Error
	if err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}
	return nil
}

// Delete 物理删除菜单及其角色关联
func (r *MenuRepository) Delete(ctx context.Context, menuIDs []int64) error {
	if len(menuIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id IN ?", menuIDs).
			Delete(&model.SysMenu{}).Error; err != nil {
			return fmt.Errorf("failed to delete menus: %w", err)
		}
		if err := tx.Where("menu_id IN ?", menuIDs).
			Delete(&model.SysRoleMenu{}).Error; err != nil {
			return fmt.Errorf("failed to delete menu role refs: %w", err)
		}
		return nil
	})
}
