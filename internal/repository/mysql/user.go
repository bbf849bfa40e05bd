/**
 * 仓储:用户数据访问
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 用户表及用户-角色、用户-岗位关联的数据访问
 * @func: UserRepository
 */
package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户数据仓库
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据ID获取用户，未找到返回nil
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("user_id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetByUsername 根据用户名获取用户，未找到返回nil
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("user_name = ?", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// List 分页查询用户列表
func (r *UserRepository) List(ctx context.Context, query *model.UserQueryRequest, deptIDs []int64) ([]model.SysUser, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SysUser{}).Scopes(NotDeleted)

	if query.UserName != "" {
		db = db.Where("user_name LIKE ?", "%"+query.UserName+"%")
	}
	if query.NickName != "" {
		db = db.Where("nick_name LIKE ?", "%"+query.NickName+"%")
	}
	if query.Phonenumber != "" {
		db = db.Where("phonenumber LIKE ?", "%"+query.Phonenumber+"%")
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if len(deptIDs) > 0 {
		db = db.Where("dept_id IN ?", deptIDs)
	}
	if query.BeginTime != "" && query.EndTime != "" {
		db = db.Where("create_time BETWEEN ? AND ?", query.BeginTime, query.EndTime)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var users []model.SysUser
	err := db.Order("user_id ASC").
		Offset(query.Offset()).Limit(query.Limit()).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// Create 创建用户
func (r *UserRepository) Create(ctx context.Context, user *model.SysUser) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update 更新用户非零字段
func (r *UserRepository) Update(ctx context.Context, user *model.SysUser) error {
	err := r.db.WithContext(ctx).Model(&model.SysUser{}).
		Where("user_id = ?", user.UserID).
		Updates(user).Error
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateColumns 按列更新用户
func (r *UserRepository) UpdateColumns(ctx context.Context, userID int64, values map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&model.SysUser{}).
		Where("user_id = ?", userID).
		Updates(values).Error
	if err != nil {
		return fmt.Errorf("failed to update user columns: %w", err)
	}
	return nil
}

// UpdateLoginInfo 更新最近登录IP与时间
func (r *UserRepository) UpdateLoginInfo(ctx context.Context, userID int64, loginIP string, loginDate time.Time) error {
	err := r.db.WithContext(ctx).Model(&model.SysUser{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"login_ip":   loginIP,
			"login_date": loginDate,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update login info: %w", err)
	}
	return nil
}

// SoftDelete 软删除用户并移除其角色、岗位关联
func (r *UserRepository) SoftDelete(ctx context.Context, userIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SysUser{}).
			Where("user_id IN ?", userIDs).
			Update("del_flag", model.DelFlagDeleted).Error; err != nil {
			return fmt.Errorf("failed to soft delete users: %w", err)
		}
		if err := tx.Where("user_id IN ?", userIDs).
			Delete(&model.SysUserRole{}).Error; err != nil {
			return fmt.Errorf("failed to delete user roles: %w", err)
		}
		if err := tx.Where("user_id IN ?", userIDs).
			Delete(&model.SysUserPost{}).Error; err != nil {
			return fmt.Errorf("failed to delete user posts: %w", err)
		}
		return nil
	})
}

// GetRoleIDsByUserID 获取用户关联的角色ID列表
func (r *UserRepository) GetRoleIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	var roleIDs []int64
	err := r.db.WithContext(ctx).Model(&model.SysUserRole{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &roleIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get role ids by user: %w", err)
	}
	return roleIDs, nil
}

// GetPostIDsByUserID 获取用户关联的岗位ID列表
func (r *UserRepository) GetPostIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	var postIDs []int64
	err := r.db.WithContext(ctx).Model(&model.SysUserPost{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &postIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get post ids by user: %w", err)
	}
	return postIDs, nil
}

// CreateWithAssociations 在单个事务内创建用户并写入角色、岗位关联
func (r *UserRepository) CreateWithAssociations(ctx context.Context, user *model.SysUser, roleIDs, postIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := replaceUserRoles(tx, user.UserID, roleIDs); err != nil {
			return err
		}
		return replaceUserPosts(tx, user.UserID, postIDs)
	})
}

// UpdateWithAssociations 在单个事务内更新用户并重建关联
// replaceRoles为false时保留现有角色关联（管理员账号的角色不可改）
func (r *UserRepository) UpdateWithAssociations(ctx context.Context, userID int64, values map[string]interface{}, roleIDs, postIDs []int64, replaceRoles bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SysUser{}).
			Where("user_id = ?", userID).
			Updates(values).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		if replaceRoles {
			if err := replaceUserRoles(tx, userID, roleIDs); err != nil {
				return err
			}
		}
		return replaceUserPosts(tx, userID, postIDs)
	})
}

// replaceUserRoles 重建用户的角色关联（先删后插）
func replaceUserRoles(tx *gorm.DB, userID int64, roleIDs []int64) error {
	if err := tx.Where("user_id = ?", userID).Delete(&model.SysUserRole{}).Error; err != nil {
		return fmt.Errorf("failed to clear user roles: %w", err)
	}
	if len(roleIDs) == 0 {
		return nil
	}
	rows := make([]model.SysUserRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		rows = append(rows, model.SysUserRole{UserID: userID, RoleID: roleID})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert user roles: %w", err)
	}
	return nil
}

// replaceUserPosts 重建用户的岗位关联（先删后插）
func replaceUserPosts(tx *gorm.DB, userID int64, postIDs []int64) error {
	if err := tx.Where("user_id = ?", userID).Delete(&model.SysUserPost{}).Error; err != nil {
		return fmt.Errorf("failed to clear user posts: %w", err)
	}
	if len(postIDs) == 0 {
		return nil
	}
	rows := make([]model.SysUserPost, 0, len(postIDs))
	for _, postID := range postIDs {
		rows = append(rows, model.SysUserPost{UserID: userID, PostID: postID})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert user posts: %w", err)
	}
	return nil
}

// CountByRoleID 统计分配了指定角色的用户数量
func (r *UserRepository) CountByRoleID(ctx context.Context, roleID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SysUserRole{}).
		Where("role_id = ?", roleID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}

// CountByDeptID 统计归属指定部门的未删除用户数量
func (r *UserRepository) CountByDeptID(ctx context.Context, deptID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SysUser{}).Scopes(NotDeleted).
		Where("dept_id = ?", deptID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users by dept: %w", err)
	}
	return count, nil
}
