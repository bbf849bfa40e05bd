/**
 * 服务:角色管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 角色CRUD与角色-菜单分配，分配时自动补全祖先目录保证树形一致
 * @func: RoleService
 */
package system

import (
	"context"

	"rbacadmin/internal/model"
)

// RoleRepo 角色服务依赖的数据访问接口
type RoleRepo interface {
	GetByID(ctx context.Context, roleID int64) (*model.SysRole, error)
	GetByName(ctx context.Context, roleName string) (*model.SysRole, error)
	GetByKey(ctx context.Context, roleKey string) (*model.SysRole, error)
	List(ctx context.Context, query *model.RoleQueryRequest) ([]model.SysRole, int64, error)
	ListAll(ctx context.Context) ([]model.SysRole, error)
	Create(ctx context.Context, role *model.SysRole) error
	Update(ctx context.Context, role *model.SysRole) error
	UpdateColumns(ctx context.Context, roleID int64, values map[string]interface{}) error
	SoftDelete(ctx context.Context, roleIDs []int64) error
	GetMenuIDsByRoleID(ctx context.Context, roleID int64) ([]int64, error)
	ReplaceRoleMenus(ctx context.Context, roleID int64, menuIDs []int64) error
}

// RoleUserCounter 角色删除前的用户引用检查接口
type RoleUserCounter interface {
	CountByRoleID(ctx context.Context, roleID int64) (int64, error)
}

// RoleMenuLookup 分配菜单时的菜单快照查询接口
type RoleMenuLookup interface {
	ListAll(ctx context.Context) ([]model.SysMenu, error)
}

// RoleService 角色服务
type RoleService struct {
	roleRepo RoleRepo
	userRepo RoleUserCounter
	menuRepo RoleMenuLookup
}

// NewRoleService 创建角色服务实例
func NewRoleService(roleRepo RoleRepo, userRepo RoleUserCounter, menuRepo RoleMenuLookup) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
		menuRepo: menuRepo,
	}
}

// List 分页查询角色列表
func (s *RoleService) List(ctx context.Context, query *model.RoleQueryRequest) ([]model.SysRole, int64, error) {
	return s.roleRepo.List(ctx, query)
}

// ListAll 查询全部角色，用户分配角色的下拉数据
func (s *RoleService) ListAll(ctx context.Context) ([]model.SysRole, error) {
	return s.roleRepo.ListAll(ctx)
}

// GetByID 获取角色详情
func (s *RoleService) GetByID(ctx context.Context, roleID int64) (*model.SysRole, error) {
	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, model.NewBizErrorf("角色不存在: %d", roleID)
	}
	return role, nil
}

// Create 新增角色，名称与权限字符唯一，同时分配菜单
func (s *RoleService) Create(ctx context.Context, authCtx *model.AuthContext, req *model.CreateRoleRequest) (*model.SysRole, error) {
	if err := s.checkRoleUnique(ctx, req.RoleName, req.RoleKey, 0); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusNormal
	}
	dataScope := req.DataScope
	if dataScope == "" {
		dataScope = model.DataScopeAll
	}

	role := &model.SysRole{
		TenantID:          authCtx.TenantID,
		RoleName:          req.RoleName,
		RoleKey:           req.RoleKey,
		RoleSort:          req.RoleSort,
		DataScope:         dataScope,
		MenuCheckStrictly: boolOrDefault(req.MenuCheckStrictly, true),
		DeptCheckStrictly: boolOrDefault(req.DeptCheckStrictly, true),
		Status:            status,
		DelFlag:           model.DelFlagNormal,
	}
	role.CreateBy = authCtx.Username
	role.Remark = req.Remark

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	if len(req.MenuIDs) > 0 {
		if err := s.AssignMenus(ctx, role.RoleID, req.MenuIDs); err != nil {
			return nil, err
		}
	}
	return role, nil
}

// Update 修改角色及其菜单分配
func (s *RoleService) Update(ctx context.Context, authCtx *model.AuthContext, req *model.UpdateRoleRequest) error {
	role, err := s.GetByID(ctx, req.RoleID)
	if err != nil {
		return err
	}
	if role.IsSuperAdmin() {
		return model.NewBizError("不允许修改超级管理员角色")
	}
	if err := s.checkRoleUnique(ctx, req.RoleName, req.RoleKey, req.RoleID); err != nil {
		return err
	}

	role.RoleName = req.RoleName
	role.RoleKey = req.RoleKey
	role.RoleSort = req.RoleSort
	if req.DataScope != "" {
		role.DataScope = req.DataScope
	}
	role.MenuCheckStrictly = boolOrDefault(req.MenuCheckStrictly, role.MenuCheckStrictly)
	role.DeptCheckStrictly = boolOrDefault(req.DeptCheckStrictly, role.DeptCheckStrictly)
	if req.Status != "" {
		role.Status = req.Status
	}
	role.Remark = req.Remark
	role.UpdateBy = authCtx.Username

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return err
	}
	return s.AssignMenus(ctx, role.RoleID, req.MenuIDs)
}

// checkRoleUnique 名称与权限字符的唯一性校验，excludeID排除自身
func (s *RoleService) checkRoleUnique(ctx context.Context, roleName, roleKey string, excludeID int64) error {
	byName, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return err
	}
	if byName != nil && byName.RoleID != excludeID {
		return model.NewBizErrorf("角色名称已存在: %s", roleName)
	}
	byKey, err := s.roleRepo.GetByKey(ctx, roleKey)
	if err != nil {
		return err
	}
	if byKey != nil && byKey.RoleID != excludeID {
		return model.NewBizErrorf("角色权限字符已存在: %s", roleKey)
	}
	return nil
}

// AssignMenus 重建角色的菜单分配
// 自动补全所选菜单的全部祖先目录，保证前端树形勾选状态一致
func (s *RoleService) AssignMenus(ctx context.Context, roleID int64, menuIDs []int64) error {
	role, err := s.GetByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role.IsSuperAdmin() {
		return model.NewBizError("超级管理员角色不需要分配菜单")
	}

	menus, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	menuByID := make(map[int64]*model.SysMenu, len(menus))
	for i := range menus {
		menuByID[menus[i].MenuID] = &menus[i]
	}

	full := make(map[int64]struct{}, len(menuIDs))
	for _, menuID := range menuIDs {
		menu, ok := menuByID[menuID]
		if !ok {
			return model.NewBizErrorf("菜单不存在: %d", menuID)
		}
		full[menuID] = struct{}{}
		// 沿父指针补全祖先链
		for parentID := menu.ParentID; parentID != model.RootParentID; {
			parent, ok := menuByID[parentID]
			if !ok {
				break
			}
			if _, seen := full[parent.MenuID]; seen {
				break
			}
			full[parent.MenuID] = struct{}{}
			parentID = parent.ParentID
		}
	}

	ids := make([]int64, 0, len(full))
	for id := range full {
		ids = append(ids, id)
	}
	return s.roleRepo.ReplaceRoleMenus(ctx, roleID, ids)
}

// ChangeStatus 切换角色状态
func (s *RoleService) ChangeStatus(ctx context.Context, authCtx *model.AuthContext, roleID int64, status string) error {
	role, err := s.GetByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role.IsSuperAdmin() {
		return model.NewBizError("不允许停用超级管理员角色")
	}
	return s.roleRepo.UpdateColumns(ctx, roleID, map[string]interface{}{
		"status":    status,
		"update_by": authCtx.Username,
	})
}

// Delete 批量软删除角色
// 角色仍分配给用户时拒绝删除，菜单关联随删除一并移除
func (s *RoleService) Delete(ctx context.Context, roleIDs []int64) error {
	for _, roleID := range roleIDs {
		role, err := s.GetByID(ctx, roleID)
		if err != nil {
			return err
		}
		if role.IsSuperAdmin() {
			return model.NewBizError("不允许删除超级管理员角色")
		}
		count, err := s.userRepo.CountByRoleID(ctx, roleID)
		if err != nil {
			return err
		}
		if count > 0 {
			return model.NewBizErrorf("角色已分配用户,不允许删除: %s", role.RoleName)
		}
	}
	return s.roleRepo.SoftDelete(ctx, roleIDs)
}

// GetMenuIDs 获取角色已分配的菜单ID列表
func (s *RoleService) GetMenuIDs(ctx context.Context, roleID int64) ([]int64, error) {
	return s.roleRepo.GetMenuIDsByRoleID(ctx, roleID)
}

// boolOrDefault 指针布尔取值，nil时使用默认值
func boolOrDefault(v *bool, defaultValue bool) bool {
	if v == nil {
		return defaultValue
	}
	return *v
}
