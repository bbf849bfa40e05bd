/**
 * 服务:菜单层级管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 菜单树维护，目录/菜单/按钮三类节点，删除前做子节点与角色引用检查
 * @func: MenuService
 */
package system

import (
	"context"
	"strconv"

	"rbacadmin/internal/model"
)

// MenuRepo 菜单服务依赖的数据访问接口
type MenuRepo interface {
	GetByID(ctx context.Context, menuID int64) (*model.SysMenu, error)
	ListAll(ctx context.Context) ([]model.SysMenu, error)
	ListByQuery(ctx context.Context, query *model.MenuQueryRequest) ([]model.SysMenu, error)
	CountChildren(ctx context.Context, menuID int64) (int64, error)
	GetByNameAndParent(ctx context.Context, menuName string, parentID int64) (*model.SysMenu, error)
	Create(ctx context.Context, menu *model.SysMenu) error
	Update(ctx context.Context, menu *model.SysMenu) error
	Delete(ctx context.Context, menuIDs []int64) error
}

// MenuRoleRefs 菜单服务需要的角色关联查询接口
type MenuRoleRefs interface {
	CountMenuRefs(ctx context.Context, menuID int64) (int64, error)
	GetMenuIDsByRoleID(ctx context.Context, roleID int64) ([]int64, error)
}

// MenuService 菜单层级服务
type MenuService struct {
	menuRepo MenuRepo
	roleRefs MenuRoleRefs
}

// NewMenuService 创建菜单服务实例
func NewMenuService(menuRepo MenuRepo, roleRefs MenuRoleRefs) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		roleRefs: roleRefs,
	}
}

// List 按条件查询菜单平铺列表
func (s *MenuService) List(ctx context.Context, query *model.MenuQueryRequest) ([]model.SysMenu, error) {
	return s.menuRepo.ListByQuery(ctx, query)
}

// GetByID 获取菜单详情
func (s *MenuService) GetByID(ctx context.Context, menuID int64) (*model.SysMenu, error) {
	menu, err := s.menuRepo.GetByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, model.NewBizErrorf("菜单不存在: %d", menuID)
	}
	return menu, nil
}

// FindMenuTree 构建完整菜单树形选项
func (s *MenuService) FindMenuTree(ctx context.Context) ([]*model.TreeOption, error) {
	menus, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildMenuOptionTree(menus, model.RootParentID), nil
}

// FindRoleMenuTree 返回完整菜单树与角色已勾选的菜单ID，树形选择器回显用
func (s *MenuService) FindRoleMenuTree(ctx context.Context, roleID int64) (*model.RoleMenuTree, error) {
	menus, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	checkedKeys, err := s.roleRefs.GetMenuIDsByRoleID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if checkedKeys == nil {
		checkedKeys = []int64{}
	}
	return &model.RoleMenuTree{
		Menus:       buildMenuOptionTree(menus, model.RootParentID),
		CheckedKeys: checkedKeys,
	}, nil
}

// FindChildMenus 获取指定菜单的全部后代
func (s *MenuService) FindChildMenus(ctx context.Context, menuID int64) ([]model.SysMenu, error) {
	menus, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return collectMenuDescendants(menus, menuID), nil
}

// collectMenuDescendants 从平铺快照中收集menuID的所有后代
func collectMenuDescendants(all []model.SysMenu, menuID int64) []model.SysMenu {
	childIndex := make(map[int64][]int, len(all))
	for i := range all {
		childIndex[all[i].ParentID] = append(childIndex[all[i].ParentID], i)
	}

	var result []model.SysMenu
	stack := []int64{menuID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, idx := range childIndex[current] {
			result = append(result, all[idx])
			stack = append(stack, all[idx].MenuID)
		}
	}
	return result
}

// Create 新增菜单，布尔样式字段入库前归一化
func (s *MenuService) Create(ctx context.Context, authCtx *model.AuthContext, req *model.CreateMenuRequest) (*model.SysMenu, error) {
	existing, err := s.menuRepo.GetByNameAndParent(ctx, req.MenuName, req.ParentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewBizErrorf("菜单名称已存在: %s", req.MenuName)
	}

	if req.ParentID != model.RootParentID {
		parent, err := s.menuRepo.GetByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, model.NewBizErrorf("上级菜单不存在: %d", req.ParentID)
		}
	}

	menu := s.buildMenuFromRequest(req)
	menu.CreateBy = authCtx.Username

	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// buildMenuFromRequest 归一化请求字段并构建菜单实体
func (s *MenuService) buildMenuFromRequest(req *model.CreateMenuRequest) *model.SysMenu {
	icon := req.Icon
	if icon == "" {
		icon = "#"
	}
	return &model.SysMenu{
		MenuName:   req.MenuName,
		ParentID:   req.ParentID,
		OrderNum:   req.OrderNum,
		Path:       req.Path,
		Component:  req.Component,
		QueryParam: req.QueryParam,
		IsFrame:    normalizeIntFlag(req.IsFrame, 1),
		IsCache:    normalizeIntFlag(req.IsCache, 0),
		MenuType:   req.MenuType,
		Visible:    normalizeStatusFlag(req.Visible),
		Status:     normalizeStatusFlag(req.Status),
		Perms:      req.Perms,
		Icon:       icon,
		BaseEntity: model.BaseEntity{Remark: req.Remark},
	}
}

// Update 修改菜单，换父时做自引用与环检查
func (s *MenuService) Update(ctx context.Context, authCtx *model.AuthContext, req *model.UpdateMenuRequest) error {
	menu, err := s.menuRepo.GetByID(ctx, req.MenuID)
	if err != nil {
		return err
	}
	if menu == nil {
		return model.NewBizErrorf("菜单不存在: %d", req.MenuID)
	}

	if req.ParentID != menu.ParentID {
		if req.ParentID == menu.MenuID {
			return model.NewBizError("上级菜单不能是自己")
		}
		descendants, err := s.FindChildMenus(ctx, menu.MenuID)
		if err != nil {
			return err
		}
		for _, child := range descendants {
			if child.MenuID == req.ParentID {
				return model.NewBizError("上级菜单不能是自己的下级菜单")
			}
		}
	}

	if req.MenuName != menu.MenuName {
		existing, err := s.menuRepo.GetByNameAndParent(ctx, req.MenuName, req.ParentID)
		if err != nil {
			return err
		}
		if existing != nil && existing.MenuID != menu.MenuID {
			return model.NewBizErrorf("菜单名称已存在: %s", req.MenuName)
		}
	}

	updated := s.buildMenuFromRequest(&req.CreateMenuRequest)
	updated.MenuID = menu.MenuID
	updated.UpdateBy = authCtx.Username

	return s.menuRepo.Update(ctx, updated)
}

// Delete 删除单个菜单
// 存在子菜单或被角色引用时拒绝，必须先删叶子
func (s *MenuService) Delete(ctx context.Context, menuID int64) error {
	menu, err := s.menuRepo.GetByID(ctx, menuID)
	if err != nil {
		return err
	}
	if menu == nil {
		return model.NewBizErrorf("菜单不存在: %d", menuID)
	}

	childCount, err := s.menuRepo.CountChildren(ctx, menuID)
	if err != nil {
		return err
	}
	if childCount > 0 {
		return model.NewBizErrorf("存在子菜单,不允许删除: %s", menu.MenuName)
	}

	refCount, err := s.roleRefs.CountMenuRefs(ctx, menuID)
	if err != nil {
		return err
	}
	if refCount > 0 {
		return model.NewBizErrorf("菜单已分配角色,不允许删除: %s", menu.MenuName)
	}

	return s.menuRepo.Delete(ctx, []int64{menuID})
}

// CascadeDelete 级联删除菜单及其整个后代子树
// 唯一不要求调用方先删叶子的删除操作
func (s *MenuService) CascadeDelete(ctx context.Context, menuIDs []int64) error {
	menus, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	toDelete := make(map[int64]struct{})
	for _, menuID := range menuIDs {
		toDelete[menuID] = struct{}{}
		for _, child := range collectMenuDescendants(menus, menuID) {
			toDelete[child.MenuID] = struct{}{}
		}
	}

	ids := make([]int64, 0, len(toDelete))
	for id := range toDelete {
		ids = append(ids, id)
	}
	return s.menuRepo.Delete(ctx, ids)
}

// buildMenuOptionTree 从平铺列表递归构建菜单树形选项
func buildMenuOptionTree(menus []model.SysMenu, parentID int64) []*model.TreeOption {
	var nodes []*model.TreeOption
	for i := range menus {
		if menus[i].ParentID != parentID {
			continue
		}
		nodes = append(nodes, &model.TreeOption{
			ID:       menus[i].MenuID,
			Label:    menus[i].MenuName,
			ParentID: menus[i].ParentID,
			Weight:   menus[i].OrderNum,
			Children: buildMenuOptionTree(menus, menus[i].MenuID),
		})
	}
	return nodes
}

// normalizeIntFlag 将0/1标志字段归一化为整数，兼容数字与字符串两种提交形式
func normalizeIntFlag(v interface{}, defaultValue int) int {
	switch value := v.(type) {
	case nil:
		return defaultValue
	case int:
		return clampFlag(value, defaultValue)
	case int64:
		return clampFlag(int(value), defaultValue)
	case float64:
		return clampFlag(int(value), defaultValue)
	case string:
		if value == "" {
			return defaultValue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return clampFlag(parsed, defaultValue)
	default:
		return defaultValue
	}
}

// clampFlag 标志位只允许0或1
func clampFlag(v, defaultValue int) int {
	if v == 0 || v == 1 {
		return v
	}
	return defaultValue
}

// normalizeStatusFlag 将可见性/状态字段归一化为'0'或'1'
func normalizeStatusFlag(v string) string {
	if v == model.StatusDisabled {
		return model.StatusDisabled
	}
	return model.StatusNormal
}
