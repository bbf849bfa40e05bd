/**
 * 测试:角色管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 角色CRUD、超管保护与菜单分配祖先补全的单元测试
 * @func: TestRoleService
 */
package system

import (
	"context"
	"sort"
	"testing"

	"rbacadmin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRoleRepo 手写角色数据访问mock
type mockRoleRepo struct {
	roles         map[int64]*model.SysRole
	nextID        int64
	roleMenuIDs   map[int64][]int64
	replacedRole  int64
	replacedMenus []int64
	softDeleted   []int64
	updatedCols   map[string]interface{}
}

func newMockRoleRepo(roles ...*model.SysRole) *mockRoleRepo {
	repo := &mockRoleRepo{
		roles:       make(map[int64]*model.SysRole),
		nextID:      100,
		roleMenuIDs: make(map[int64][]int64),
	}
	for _, role := range roles {
		repo.roles[role.RoleID] = role
	}
	return repo
}

func (m *mockRoleRepo) GetByID(ctx context.Context, roleID int64) (*model.SysRole, error) {
	if role, ok := m.roles[roleID]; ok {
		copied := *role
		return &copied, nil
	}
	return nil, nil
}

func (m *mockRoleRepo) GetByName(ctx context.Context, roleName string) (*model.SysRole, error) {
	for _, role := range m.roles {
		if role.RoleName == roleName {
			copied := *role
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockRoleRepo) GetByKey(ctx context.Context, roleKey string) (*model.SysRole, error) {
	for _, role := range m.roles {
		if role.RoleKey == roleKey {
			copied := *role
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockRoleRepo) List(ctx context.Context, query *model.RoleQueryRequest) ([]model.SysRole, int64, error) {
	all, _ := m.ListAll(ctx)
	return all, int64(len(all)), nil
}

func (m *mockRoleRepo) ListAll(ctx context.Context) ([]model.SysRole, error) {
	ids := make([]int64, 0, len(m.roles))
	for id := range m.roles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.SysRole, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.roles[id])
	}
	return result, nil
}

func (m *mockRoleRepo) Create(ctx context.Context, role *model.SysRole) error {
	m.nextID++
	role.RoleID = m.nextID
	copied := *role
	m.roles[role.RoleID] = &copied
	return nil
}

func (m *mockRoleRepo) Update(ctx context.Context, role *model.SysRole) error {
	copied := *role
	m.roles[role.RoleID] = &copied
	return nil
}

func (m *mockRoleRepo) UpdateColumns(ctx context.Context, roleID int64, values map[string]interface{}) error {
	m.updatedCols = values
	return nil
}

func (m *mockRoleRepo) SoftDelete(ctx context.Context, roleIDs []int64) error {
	m.softDeleted = append(m.softDeleted, roleIDs...)
	for _, id := range roleIDs {
		delete(m.roles, id)
	}
	return nil
}

func (m *mockRoleRepo) GetMenuIDsByRoleID(ctx context.Context, roleID int64) ([]int64, error) {
	return m.roleMenuIDs[roleID], nil
}

func (m *mockRoleRepo) ReplaceRoleMenus(ctx context.Context, roleID int64, menuIDs []int64) error {
	m.replacedRole = roleID
	m.replacedMenus = menuIDs
	m.roleMenuIDs[roleID] = menuIDs
	return nil
}

// mockRoleUserCounter 角色用户数mock
type mockRoleUserCounter struct {
	counts map[int64]int64
}

func (m *mockRoleUserCounter) CountByRoleID(ctx context.Context, roleID int64) (int64, error) {
	return m.counts[roleID], nil
}

// mockRoleMenuLookup 菜单快照mock
type mockRoleMenuLookup struct {
	menus []model.SysMenu
}

func (m *mockRoleMenuLookup) ListAll(ctx context.Context) ([]model.SysMenu, error) {
	return m.menus, nil
}

func newRoleFixture() *mockRoleRepo {
	return newMockRoleRepo(
		&model.SysRole{RoleID: 1, RoleName: "超级管理员", RoleKey: "superadmin", Status: "0", SuperAdmin: true},
		&model.SysRole{RoleID: 2, RoleName: "普通角色", RoleKey: "common", Status: "0"},
	)
}

// 三级菜单链:目录1 -> 菜单100 -> 按钮1001
func roleMenuFixture() *mockRoleMenuLookup {
	return &mockRoleMenuLookup{menus: []model.SysMenu{
		{MenuID: 1, MenuName: "系统管理", ParentID: 0, MenuType: model.MenuTypeDir},
		{MenuID: 100, MenuName: "用户管理", ParentID: 1, MenuType: model.MenuTypeMenu},
		{MenuID: 1001, MenuName: "用户新增", ParentID: 100, MenuType: model.MenuTypeButton},
	}}
}

func TestRoleCreateWithDefaults(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{}, roleMenuFixture())

	role, err := svc.Create(context.Background(), testAuthCtx(), &model.CreateRoleRequest{
		RoleName: "运营",
		RoleKey:  "operator",
		RoleSort: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNormal, role.Status)
	assert.Equal(t, model.DataScopeAll, role.DataScope)
	assert.True(t, role.MenuCheckStrictly)
	assert.True(t, role.DeptCheckStrictly)
}

func TestRoleCreateDuplicateKey(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{}, roleMenuFixture())

	_, err := svc.Create(context.Background(), testAuthCtx(), &model.CreateRoleRequest{
		RoleName: "新角色",
		RoleKey:  "common",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "角色权限字符已存在")
}

func TestRoleUpdateSuperAdminRejected(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{}, roleMenuFixture())

	err := svc.Update(context.Background(), testAuthCtx(), &model.UpdateRoleRequest{
		RoleID:   1,
		RoleName: "改名",
		RoleKey:  "superadmin",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不允许修改超级管理员角色")
}

func TestRoleAssignMenusCompletesAncestors(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{}, roleMenuFixture())

	// 只勾按钮1001,祖先链100和1被自动补全
	err := svc.AssignMenus(context.Background(), 2, []int64{1001})
	require.NoError(t, err)
	assert.Equal(t, int64(2), repo.replacedRole)
	sort.Slice(repo.replacedMenus, func(i, j int) bool { return repo.replacedMenus[i] < repo.replacedMenus[j] })
	assert.Equal(t, []int64{1, 100, 1001}, repo.replacedMenus)
}

func TestRoleAssignMenusSuperAdminRejected(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{}, roleMenuFixture())

	err := svc.AssignMenus(context.Background(), 1, []int64{100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "超级管理员角色不需要分配菜单")
}

func TestRoleAssignMenusUnknownMenu(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{}, roleMenuFixture())

	err := svc.AssignMenus(context.Background(), 2, []int64{999})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "菜单不存在")
}

func TestRoleChangeStatusSuperAdminRejected(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{}, roleMenuFixture())

	err := svc.ChangeStatus(context.Background(), testAuthCtx(), 1, model.StatusDisabled)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不允许停用超级管理员角色")
}

func TestRoleDeleteWithUsersRejected(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{counts: map[int64]int64{2: 5}}, roleMenuFixture())

	err := svc.Delete(context.Background(), []int64{2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "角色已分配用户")
	assert.Empty(t, repo.softDeleted)
}

func TestRoleDeleteSuperAdminRejected(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{}, roleMenuFixture())

	err := svc.Delete(context.Background(), []int64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不允许删除超级管理员角色")
}

func TestRoleDelete(t *testing.T) {
	repo := newRoleFixture()
	svc := NewRoleService(repo, &mockRoleUserCounter{}, roleMenuFixture())

	err := svc.Delete(context.Background(), []int64{2})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, repo.softDeleted)
}
