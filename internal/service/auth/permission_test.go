/**
 * 测试:权限解析引擎
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 路由树构建、权限字符串聚合与排序的单元测试
 * @func: TestPermissionService
 */
package auth

import (
	"context"
	"encoding/json"
	"testing"

	"rbacadmin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPermUserRepo 手写用户查询mock
type mockPermUserRepo struct {
	users   map[string]*model.SysUser
	roleIDs map[int64][]int64
	postIDs map[int64][]int64
}

func (m *mockPermUserRepo) GetByUsername(ctx context.Context, username string) (*model.SysUser, error) {
	return m.users[username], nil
}

func (m *mockPermUserRepo) GetRoleIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	return m.roleIDs[userID], nil
}

func (m *mockPermUserRepo) GetPostIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	return m.postIDs[userID], nil
}

// mockPermRoleRepo 手写角色查询mock
type mockPermRoleRepo struct {
	roles       map[int64]model.SysRole
	roleMenuIDs map[int64][]int64
}

func (m *mockPermRoleRepo) GetActiveByIDs(ctx context.Context, roleIDs []int64) ([]model.SysRole, error) {
	result := make([]model.SysRole, 0, len(roleIDs))
	for _, id := range roleIDs {
		if role, ok := m.roles[id]; ok && role.Status == model.StatusNormal {
			result = append(result, role)
		}
	}
	return result, nil
}

func (m *mockPermRoleRepo) GetMenuIDsByRoleID(ctx context.Context, roleID int64) ([]int64, error) {
	return m.roleMenuIDs[roleID], nil
}

func (m *mockPermRoleRepo) GetMenuIDsByRoleIDs(ctx context.Context, roleIDs []int64) ([]int64, error) {
	seen := make(map[int64]struct{})
	var result []int64
	for _, roleID := range roleIDs {
		for _, menuID := range m.roleMenuIDs[roleID] {
			if _, ok := seen[menuID]; !ok {
				seen[menuID] = struct{}{}
				result = append(result, menuID)
			}
		}
	}
	return result, nil
}

// mockPermMenuRepo 手写菜单查询mock
type mockPermMenuRepo struct {
	menus []model.SysMenu
}

func (m *mockPermMenuRepo) ListAll(ctx context.Context) ([]model.SysMenu, error) {
	return m.menus, nil
}

func (m *mockPermMenuRepo) ListVisibleNormal(ctx context.Context) ([]model.SysMenu, error) {
	result := make([]model.SysMenu, 0, len(m.menus))
	for _, menu := range m.menus {
		if menu.Status == model.StatusNormal && menu.Visible == model.StatusNormal {
			result = append(result, menu)
		}
	}
	return result, nil
}

func (m *mockPermMenuRepo) ListNormalByIDs(ctx context.Context, menuIDs []int64) ([]model.SysMenu, error) {
	idSet := make(map[int64]struct{}, len(menuIDs))
	for _, id := range menuIDs {
		idSet[id] = struct{}{}
	}
	result := make([]model.SysMenu, 0, len(menuIDs))
	for _, menu := range m.menus {
		if _, ok := idSet[menu.MenuID]; ok && menu.Status == model.StatusNormal {
			result = append(result, menu)
		}
	}
	return result, nil
}

// newTestMenus 构造典型菜单树:系统管理目录下挂用户管理页面,页面下挂按钮
func newTestMenus() []model.SysMenu {
	return []model.SysMenu{
		{MenuID: 1, MenuName: "系统管理", ParentID: 0, Path: "system", MenuType: model.MenuTypeDir, Visible: "0", Status: "0", Icon: "system"},
		{MenuID: 100, MenuName: "用户管理", ParentID: 1, Path: "user", Component: "system/user/index", MenuType: model.MenuTypeMenu, Visible: "0", Status: "0", Perms: "sys:user:list", Icon: "user"},
		{MenuID: 1001, MenuName: "用户新增", ParentID: 100, MenuType: model.MenuTypeButton, Visible: "0", Status: "0", Perms: "sys:user:add"},
		{MenuID: 1002, MenuName: "用户修改", ParentID: 100, MenuType: model.MenuTypeButton, Visible: "0", Status: "0", Perms: "sys:user:edit"},
	}
}

func newTestPermissionService(userRepo *mockPermUserRepo, roleRepo *mockPermRoleRepo, menuRepo *mockPermMenuRepo) *PermissionService {
	return NewPermissionService(userRepo, roleRepo, menuRepo)
}

func TestGetUserInfoSuperAdmin(t *testing.T) {
	userRepo := &mockPermUserRepo{
		users: map[string]*model.SysUser{
			"admin": {UserID: 1, UserName: "admin", Status: model.StatusNormal},
		},
		roleIDs: map[int64][]int64{1: {1}},
		postIDs: map[int64][]int64{1: {1}},
	}
	roleRepo := &mockPermRoleRepo{
		roles: map[int64]model.SysRole{
			1: {RoleID: 1, RoleKey: "superadmin", RoleName: "超级管理员", Status: model.StatusNormal, SuperAdmin: true},
		},
	}
	menuRepo := &mockPermMenuRepo{menus: newTestMenus()}
	svc := newTestPermissionService(userRepo, roleRepo, menuRepo)

	info, err := svc.GetUserInfo(context.Background(), "admin")
	require.NoError(t, err)
	// 超级管理员短路为全量通配,不展开具体权限
	assert.Equal(t, []string{model.AllPermission}, info.Permissions)
	assert.Equal(t, []string{"superadmin"}, info.Roles)
	assert.Equal(t, []int64{1}, info.User.RoleIDs)
	assert.Equal(t, []int64{1}, info.User.PostIDs)
	assert.Equal(t, int64(1), info.User.RoleID)
}

func TestGetUserInfoJSONShape(t *testing.T) {
	userRepo := &mockPermUserRepo{
		users: map[string]*model.SysUser{
			"alice": {UserID: 2, UserName: "alice", Status: model.StatusNormal},
		},
		roleIDs: map[int64][]int64{2: {2}},
		postIDs: map[int64][]int64{2: {3}},
	}
	roleRepo := &mockPermRoleRepo{
		roles: map[int64]model.SysRole{
			2: {RoleID: 2, RoleKey: "editor", Status: model.StatusNormal},
		},
		roleMenuIDs: map[int64][]int64{2: {1}},
	}
	menuRepo := &mockPermMenuRepo{menus: newTestMenus()}
	svc := newTestPermissionService(userRepo, roleRepo, menuRepo)

	info, err := svc.GetUserInfo(context.Background(), "alice")
	require.NoError(t, err)

	raw, err := json.Marshal(info)
	require.NoError(t, err)
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope))

	// 角色岗位ID嵌在user对象内,不出现在顶层
	assert.NotContains(t, envelope, "roleIds")
	assert.NotContains(t, envelope, "postIds")

	var userObj map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope["user"], &userObj))
	assert.Equal(t, "alice", userObj["userName"])
	assert.Equal(t, []interface{}{float64(2)}, userObj["roleIds"])
	assert.Equal(t, []interface{}{float64(3)}, userObj["postIds"])
	assert.Equal(t, float64(2), userObj["roleId"])
}

func TestGetUserInfoSuperAdminByFlag(t *testing.T) {
	userRepo := &mockPermUserRepo{
		users: map[string]*model.SysUser{
			"ops": {UserID: 5, UserName: "ops", Status: model.StatusNormal},
		},
		roleIDs: map[int64][]int64{5: {9}},
	}
	// 角色键不是superadmin,但超管标志位开启,同样短路
	roleRepo := &mockPermRoleRepo{
		roles: map[int64]model.SysRole{
			9: {RoleID: 9, RoleKey: "ops_admin", Status: model.StatusNormal, SuperAdmin: true},
		},
	}
	menuRepo := &mockPermMenuRepo{menus: newTestMenus()}
	svc := newTestPermissionService(userRepo, roleRepo, menuRepo)

	info, err := svc.GetUserInfo(context.Background(), "ops")
	require.NoError(t, err)
	assert.Equal(t, []string{model.AllPermission}, info.Permissions)
}

func TestGetUserInfoEditorPermissions(t *testing.T) {
	userRepo := &mockPermUserRepo{
		users: map[string]*model.SysUser{
			"alice": {UserID: 2, UserName: "alice", Status: model.StatusNormal},
		},
		roleIDs: map[int64][]int64{2: {2}},
	}
	roleRepo := &mockPermRoleRepo{
		roles: map[int64]model.SysRole{
			2: {RoleID: 2, RoleKey: "editor", Status: model.StatusNormal},
		},
		// 角色只挂了目录节点,按钮权限靠目录递归聚齐
		roleMenuIDs: map[int64][]int64{2: {1}},
	}
	menuRepo := &mockPermMenuRepo{menus: newTestMenus()}
	svc := newTestPermissionService(userRepo, roleRepo, menuRepo)

	info, err := svc.GetUserInfo(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"sys:user:add", "sys:user:edit", "sys:user:list"}, info.Permissions)
}

func TestGetUserInfoNoRoles(t *testing.T) {
	userRepo := &mockPermUserRepo{
		users: map[string]*model.SysUser{
			"bob": {UserID: 3, UserName: "bob", Status: model.StatusNormal},
		},
		roleIDs: map[int64][]int64{},
	}
	roleRepo := &mockPermRoleRepo{roles: map[int64]model.SysRole{}}
	menuRepo := &mockPermMenuRepo{menus: newTestMenus()}
	svc := newTestPermissionService(userRepo, roleRepo, menuRepo)

	info, err := svc.GetUserInfo(context.Background(), "bob")
	require.NoError(t, err)
	assert.Empty(t, info.Permissions)
	assert.Empty(t, info.Roles)
}

func TestGetUserInfoUserNotFound(t *testing.T) {
	svc := newTestPermissionService(
		&mockPermUserRepo{users: map[string]*model.SysUser{}},
		&mockPermRoleRepo{},
		&mockPermMenuRepo{},
	)

	_, err := svc.GetUserInfo(context.Background(), "ghost")
	require.Error(t, err)
	var authErr *model.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestGetRoutersSuperAdmin(t *testing.T) {
	userRepo := &mockPermUserRepo{
		users: map[string]*model.SysUser{
			"admin": {UserID: 1, UserName: "admin", Status: model.StatusNormal},
		},
		roleIDs: map[int64][]int64{1: {1}},
	}
	roleRepo := &mockPermRoleRepo{
		roles: map[int64]model.SysRole{
			1: {RoleID: 1, RoleKey: "superadmin", Status: model.StatusNormal, SuperAdmin: true},
		},
	}
	menuRepo := &mockPermMenuRepo{menus: newTestMenus()}
	svc := newTestPermissionService(userRepo, roleRepo, menuRepo)

	routes, err := svc.GetRouters(context.Background(), "admin")
	require.NoError(t, err)
	require.Len(t, routes, 1)

	root := routes[0]
	assert.Equal(t, "System1", root.Name)
	assert.Equal(t, "/system", root.Path)
	assert.Equal(t, model.ComponentLayout, root.Component)
	// 根级目录强制展开
	assert.Equal(t, model.NoRedirect, root.Redirect)
	assert.True(t, root.AlwaysShow)

	require.Len(t, root.Children, 1)
	child := root.Children[0]
	assert.Equal(t, "User100", child.Name)
	assert.Equal(t, "user", child.Path)
	assert.Equal(t, "system/user/index", child.Component)
	// 按钮节点不进入路由树
	assert.Empty(t, child.Children)
}

func TestGetRoutersNoRoles(t *testing.T) {
	userRepo := &mockPermUserRepo{
		users: map[string]*model.SysUser{
			"bob": {UserID: 3, UserName: "bob", Status: model.StatusNormal},
		},
		roleIDs: map[int64][]int64{},
	}
	svc := newTestPermissionService(userRepo, &mockPermRoleRepo{}, &mockPermMenuRepo{})

	routes, err := svc.GetRouters(context.Background(), "bob")
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestGetRoutersUnknownUser(t *testing.T) {
	svc := newTestPermissionService(
		&mockPermUserRepo{users: map[string]*model.SysUser{}},
		&mockPermRoleRepo{},
		&mockPermMenuRepo{},
	)

	routes, err := svc.GetRouters(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestBuildRouteTreeDuplicatePathNames(t *testing.T) {
	// 两个同path的根级菜单,路由名依靠菜单ID后缀保持唯一
	menus := []model.SysMenu{
		{MenuID: 10, MenuName: "报表A", ParentID: 0, Path: "report", Component: "report/a/index", MenuType: model.MenuTypeMenu, Visible: "0", Status: "0"},
		{MenuID: 20, MenuName: "报表B", ParentID: 0, Path: "report", Component: "report/b/index", MenuType: model.MenuTypeMenu, Visible: "0", Status: "0"},
	}

	routes := BuildRouteTree(menus)
	require.Len(t, routes, 2)
	names := map[string]struct{}{}
	for _, route := range routes {
		names[route.Name] = struct{}{}
	}
	assert.Len(t, names, 2)
	assert.Contains(t, names, "Report10")
	assert.Contains(t, names, "Report20")
}

func TestBuildRouteTreeHiddenAndCache(t *testing.T) {
	menus := []model.SysMenu{
		{MenuID: 1, MenuName: "隐藏页", ParentID: 0, Path: "secret", Component: "secret/index", MenuType: model.MenuTypeMenu, Visible: "1", Status: "0", IsCache: 1},
	}

	routes := BuildRouteTree(menus)
	require.Len(t, routes, 1)
	assert.True(t, routes[0].Hidden)
	assert.True(t, routes[0].Meta.NoCache)
}

func TestBuildRouteTreeExternalLink(t *testing.T) {
	menus := []model.SysMenu{
		{MenuID: 1, MenuName: "官网", ParentID: 0, Path: "https://example.com", MenuType: model.MenuTypeMenu, Visible: "0", Status: "0", IsFrame: 1},
	}

	routes := BuildRouteTree(menus)
	require.Len(t, routes, 1)
	assert.Equal(t, "https://example.com", routes[0].Meta.Link)
	// 已带协议前缀的path不再追加斜杠以外的处理
	assert.Equal(t, "https://example.com", routes[0].Path)
}

func TestBuildRouteTreeMenuWithoutComponent(t *testing.T) {
	menus := []model.SysMenu{
		{MenuID: 1, MenuName: "占位页", ParentID: 0, Path: "blank", MenuType: model.MenuTypeMenu, Visible: "0", Status: "0"},
	}

	routes := BuildRouteTree(menus)
	require.Len(t, routes, 1)
	assert.Equal(t, model.ComponentParentView, routes[0].Component)
}

func TestSortPermissionsThreeLevels(t *testing.T) {
	perms := []string{
		"sys:user:list",
		"sys:dept:add",
		"app:user:add",
		"sys:user:add",
		"sys:user:export",
		"sys:user:edit",
		"sys:user:remove",
		"sys:user:query",
	}

	SortPermissions(perms)

	assert.Equal(t, []string{
		"app:user:add",
		"sys:dept:add",
		"sys:user:add",
		"sys:user:edit",
		"sys:user:remove",
		"sys:user:list",
		"sys:user:query",
		"sys:user:export",
	}, perms)
}

func TestSortPermissionsUnknownActions(t *testing.T) {
	// 已知动作排在未知动作前面,未知动作之间按字典序,整体保持全序
	perms := []string{
		"sys:user:zeta",
		"sys:user:export",
		"sys:user:approve",
		"sys:user:add",
	}

	SortPermissions(perms)

	assert.Equal(t, []string{
		"sys:user:add",
		"sys:user:export",
		"sys:user:approve",
		"sys:user:zeta",
	}, perms)
}

func TestComparePermissionMissingSegments(t *testing.T) {
	// 缺段补空串,不会因为格式不规整而崩溃
	assert.Negative(t, comparePermission("sys", "sys:user"))
	assert.Zero(t, comparePermission("sys:user:add", "sys:user:add"))
	assert.Positive(t, comparePermission("sys:user:list", "sys:user:add"))
}
