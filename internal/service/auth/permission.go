/**
 * 服务:权限解析引擎
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 给定用户解析其可见导航树与权限字符串集合
 *   路由树:用户→角色→菜单并集→树化→路由描述,超级管理员直接取全量正常菜单
 *   权限集:角色关联菜单的perms逗号分词去重,目录类型递归子树,三级排序
 * @func: PermissionService
 */
package auth

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"rbacadmin/internal/model"
)

// PermissionUserLookup 权限解析需要的用户查询接口
type PermissionUserLookup interface {
	GetByUsername(ctx context.Context, username string) (*model.SysUser, error)
	GetRoleIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
	GetPostIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
}

// PermissionRoleLookup 权限解析需要的角色查询接口
type PermissionRoleLookup interface {
	GetActiveByIDs(ctx context.Context, roleIDs []int64) ([]model.SysRole, error)
	GetMenuIDsByRoleID(ctx context.Context, roleID int64) ([]int64, error)
	GetMenuIDsByRoleIDs(ctx context.Context, roleIDs []int64) ([]int64, error)
}

// PermissionMenuLookup 权限解析需要的菜单查询接口
type PermissionMenuLookup interface {
	ListAll(ctx context.Context) ([]model.SysMenu, error)
	ListVisibleNormal(ctx context.Context) ([]model.SysMenu, error)
	ListNormalByIDs(ctx context.Context, menuIDs []int64) ([]model.SysMenu, error)
}

// PermissionService 权限解析服务
type PermissionService struct {
	userRepo PermissionUserLookup
	roleRepo PermissionRoleLookup
	menuRepo PermissionMenuLookup
}

// NewPermissionService 创建权限解析服务实例
func NewPermissionService(userRepo PermissionUserLookup, roleRepo PermissionRoleLookup, menuRepo PermissionMenuLookup) *PermissionService {
	return &PermissionService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		menuRepo: menuRepo,
	}
}

// GetRouters 解析用户的前端导航路由树
// 用户、角色、菜单任一环节解析为空都返回空列表而非报错
func (s *PermissionService) GetRouters(ctx context.Context, username string) ([]*model.RouterVo, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []*model.RouterVo{}, nil
	}

	roleIDs, err := s.userRepo.GetRoleIDsByUserID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if len(roleIDs) == 0 {
		return []*model.RouterVo{}, nil
	}

	roles, err := s.roleRepo.GetActiveByIDs(ctx, roleIDs)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return []*model.RouterVo{}, nil
	}

	var menus []model.SysMenu
	if hasSuperAdmin(roles) {
		// 超级管理员跳过菜单ID过滤，取全量正常菜单
		menus, err = s.menuRepo.ListVisibleNormal(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		activeRoleIDs := make([]int64, 0, len(roles))
		for i := range roles {
			activeRoleIDs = append(activeRoleIDs, roles[i].RoleID)
		}
		menuIDs, err := s.roleRepo.GetMenuIDsByRoleIDs(ctx, activeRoleIDs)
		if err != nil {
			return nil, err
		}
		if len(menuIDs) == 0 {
			return []*model.RouterVo{}, nil
		}
		menus, err = s.menuRepo.ListNormalByIDs(ctx, menuIDs)
		if err != nil {
			return nil, err
		}
	}

	return BuildRouteTree(menus), nil
}

// GetUserInfo 聚合用户的身份、角色与权限字符串集合
func (s *PermissionService) GetUserInfo(ctx context.Context, username string) (*model.UserInfoResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NewAuthError("用户不存在")
	}

	roleIDs, err := s.userRepo.GetRoleIDsByUserID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	roles, err := s.roleRepo.GetActiveByIDs(ctx, roleIDs)
	if err != nil {
		return nil, err
	}

	roleKeys := make([]string, 0, len(roles))
	for i := range roles {
		// 前端勾选标志默认关闭
		roles[i].Flag = false
		roleKeys = append(roleKeys, roles[i].RoleKey)
	}
	user.Roles = roles

	permissions, err := s.resolvePermissions(ctx, roles)
	if err != nil {
		return nil, err
	}

	postIDs, err := s.userRepo.GetPostIDsByUserID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if postIDs == nil {
		postIDs = []int64{}
	}
	activeRoleIDs := make([]int64, 0, len(roles))
	for i := range roles {
		activeRoleIDs = append(activeRoleIDs, roles[i].RoleID)
	}
	var primaryRoleID int64
	if len(activeRoleIDs) > 0 {
		primaryRoleID = activeRoleIDs[0]
	}

	return &model.UserInfoResult{
		User: &model.UserInfoUser{
			SysUser: user,
			RoleIDs: activeRoleIDs,
			PostIDs: postIDs,
			RoleID:  primaryRoleID,
		},
		Permissions: permissions,
		Roles:       roleKeys,
	}, nil
}

// resolvePermissions 解析角色集合的权限字符串
// 超级管理员短路为全量通配；否则取各角色菜单的perms并集，目录类型递归子树
func (s *PermissionService) resolvePermissions(ctx context.Context, roles []model.SysRole) ([]string, error) {
	if hasSuperAdmin(roles) {
		return []string{model.AllPermission}, nil
	}
	if len(roles) == 0 {
		return []string{}, nil
	}

	allMenus, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	menuByID := make(map[int64]*model.SysMenu, len(allMenus))
	childIndex := make(map[int64][]*model.SysMenu, len(allMenus))
	for i := range allMenus {
		menuByID[allMenus[i].MenuID] = &allMenus[i]
		childIndex[allMenus[i].ParentID] = append(childIndex[allMenus[i].ParentID], &allMenus[i])
	}

	permSet := make(map[string]struct{})
	for i := range roles {
		menuIDs, err := s.roleRepo.GetMenuIDsByRoleID(ctx, roles[i].RoleID)
		if err != nil {
			return nil, err
		}
		for _, menuID := range menuIDs {
			menu, ok := menuByID[menuID]
			if !ok {
				continue
			}
			collectMenuPerms(menu, childIndex, permSet)
		}
	}

	permissions := make([]string, 0, len(permSet))
	for perm := range permSet {
		permissions = append(permissions, perm)
	}
	SortPermissions(permissions)
	return permissions, nil
}

// collectMenuPerms 收集单个菜单的权限字符串
// 按钮的授权经常挂在目录节点下，目录类型需要递归子树才能聚齐
func collectMenuPerms(menu *model.SysMenu, childIndex map[int64][]*model.SysMenu, permSet map[string]struct{}) {
	for _, token := range strings.Split(menu.Perms, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			permSet[token] = struct{}{}
		}
	}
	if menu.IsDir() {
		for _, child := range childIndex[menu.MenuID] {
			collectMenuPerms(child, childIndex, permSet)
		}
	}
}

// hasSuperAdmin 角色集合中是否包含超级管理员
func hasSuperAdmin(roles []model.SysRole) bool {
	for i := range roles {
		if roles[i].IsSuperAdmin() {
			return true
		}
	}
	return false
}

// actionOrder 权限动作的固定优先级
var actionOrder = map[string]int{
	"add":    0,
	"edit":   1,
	"remove": 2,
	"list":   3,
	"query":  4,
	"export": 5,
}

// SortPermissions 对权限字符串做三级排序
// 按冒号拆为[模块,资源,动作]:模块、资源字典序,动作按固定优先级
// 已知动作排在未知动作前面,未知动作之间字典序,保证比较器是全序
func SortPermissions(permissions []string) {
	sort.Slice(permissions, func(i, j int) bool {
		return comparePermission(permissions[i], permissions[j]) < 0
	})
}

// comparePermission 比较两个权限字符串
func comparePermission(a, b string) int {
	partsA := splitPermission(a)
	partsB := splitPermission(b)

	if c := strings.Compare(partsA[0], partsB[0]); c != 0 {
		return c
	}
	if c := strings.Compare(partsA[1], partsB[1]); c != 0 {
		return c
	}
	return compareAction(partsA[2], partsB[2])
}

// splitPermission 按冒号拆分权限字符串，缺失的段补空串
func splitPermission(perm string) [3]string {
	var parts [3]string
	for i, p := range strings.SplitN(perm, ":", 3) {
		parts[i] = p
	}
	return parts
}

// compareAction 按固定优先级比较动作段
func compareAction(a, b string) int {
	orderA, knownA := actionOrder[a]
	orderB, knownB := actionOrder[b]
	switch {
	case knownA && knownB:
		return orderA - orderB
	case knownA:
		return -1
	case knownB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// BuildRouteTree 将平铺菜单列表构建为前端路由树
// 按钮类型不可路由，进入子树前被过滤，但仍参与权限集合计算
func BuildRouteTree(menus []model.SysMenu) []*model.RouterVo {
	menuByID := make(map[int64]*model.SysMenu, len(menus))
	childIndex := make(map[int64][]*model.SysMenu, len(menus))
	for i := range menus {
		menuByID[menus[i].MenuID] = &menus[i]
		childIndex[menus[i].ParentID] = append(childIndex[menus[i].ParentID], &menus[i])
	}

	routes := make([]*model.RouterVo, 0)
	for _, menu := range childIndex[model.RootParentID] {
		if menu.IsButton() {
			continue
		}
		routes = append(routes, menuToRoute(menu, childIndex, true))
	}
	return routes
}

// menuToRoute 将单个菜单节点映射为路由描述
func menuToRoute(menu *model.SysMenu, childIndex map[int64][]*model.SysMenu, isRoot bool) *model.RouterVo {
	route := &model.RouterVo{
		// 路径拼接菜单ID保证重复path下路由名仍然唯一
		Name:      capitalize(menu.Path) + strconv.FormatInt(menu.MenuID, 10),
		Path:      routePath(menu.Path, isRoot),
		Hidden:    menu.Visible == model.StatusDisabled,
		Component: routeComponent(menu),
		Meta: &model.MetaVo{
			Title:   menu.MenuName,
			Icon:    menu.Icon,
			NoCache: menu.IsCache == 1,
		},
	}

	if menu.QueryParam != "" {
		var query map[string]string
		if err := json.Unmarshal([]byte(menu.QueryParam), &query); err == nil {
			route.Query = query
		}
	}
	if menu.IsFrame == 1 {
		route.Meta.Link = menu.Path
	}

	var children []*model.RouterVo
	for _, child := range childIndex[menu.MenuID] {
		if child.IsButton() {
			continue
		}
		children = append(children, menuToRoute(child, childIndex, false))
	}
	route.Children = children

	// 根级目录强制展开，单个子节点也显示层级
	if isRoot && menu.IsDir() {
		route.Redirect = model.NoRedirect
		route.AlwaysShow = true
	}

	return route
}

// routePath 根级节点的path加前导斜杠，子级保持相对路径
// 外链菜单的path是完整URL，保持原样
func routePath(path string, isRoot bool) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if isRoot && !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// routeComponent 根据菜单类型解析前端组件标识
func routeComponent(menu *model.SysMenu) string {
	switch {
	case menu.IsDir():
		return model.ComponentLayout
	case menu.IsMenu():
		if menu.Component != "" {
			return menu.Component
		}
		return model.ComponentParentView
	default:
		if menu.Component != "" {
			return menu.Component
		}
		return model.ComponentLayout
	}
}

// capitalize 首字母大写
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
