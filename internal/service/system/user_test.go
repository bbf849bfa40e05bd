/**
 * 测试:用户管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 用户CRUD、管理员保护、密码维护与部门子树过滤的单元测试
 * @func: TestUserService
 */
package system

import (
	"context"
	"testing"

	"rbacadmin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserRepo 手写用户数据访问mock
type mockUserRepo struct {
	users        map[int64]*model.SysUser
	nextID       int64
	listDeptIDs  []int64
	updatedCols  map[string]interface{}
	softDeleted  []int64
	createdRoles []int64
	createdPosts []int64
	updateRoles  []int64
	replaceRoles bool
}

func newMockUserRepo(users ...*model.SysUser) *mockUserRepo {
	repo := &mockUserRepo{users: make(map[int64]*model.SysUser), nextID: 100}
	for _, user := range users {
		repo.users[user.UserID] = user
	}
	return repo
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID int64) (*model.SysUser, error) {
	if user, ok := m.users[userID]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.SysUser, error) {
	for _, user := range m.users {
		if user.UserName == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context, query *model.UserQueryRequest, deptIDs []int64) ([]model.SysUser, int64, error) {
	m.listDeptIDs = deptIDs
	result := make([]model.SysUser, 0, len(m.users))
	for _, user := range m.users {
		result = append(result, *user)
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.SysUser) error {
	m.nextID++
	user.UserID = m.nextID
	copied := *user
	m.users[user.UserID] = &copied
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.SysUser) error {
	copied := *user
	m.users[user.UserID] = &copied
	return nil
}

func (m *mockUserRepo) UpdateColumns(ctx context.Context, userID int64, values map[string]interface{}) error {
	m.updatedCols = values
	return nil
}

func (m *mockUserRepo) SoftDelete(ctx context.Context, userIDs []int64) error {
	m.softDeleted = append(m.softDeleted, userIDs...)
	return nil
}

func (m *mockUserRepo) GetRoleIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	return nil, nil
}

func (m *mockUserRepo) GetPostIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	return nil, nil
}

func (m *mockUserRepo) CreateWithAssociations(ctx context.Context, user *model.SysUser, roleIDs, postIDs []int64) error {
	if err := m.Create(ctx, user); err != nil {
		return err
	}
	m.createdRoles = roleIDs
	m.createdPosts = postIDs
	return nil
}

func (m *mockUserRepo) UpdateWithAssociations(ctx context.Context, userID int64, values map[string]interface{}, roleIDs, postIDs []int64, replaceRoles bool) error {
	m.updatedCols = values
	m.updateRoles = roleIDs
	m.replaceRoles = replaceRoles
	return nil
}

// mockUserDeptLookup 部门查询mock
type mockUserDeptLookup struct {
	depts    map[int64]*model.SysDept
	children map[int64][]model.SysDept
}

func (m *mockUserDeptLookup) GetByID(ctx context.Context, deptID int64) (*model.SysDept, error) {
	return m.depts[deptID], nil
}

func (m *mockUserDeptLookup) FindChildDepts(ctx context.Context, deptID int64) ([]model.SysDept, error) {
	return m.children[deptID], nil
}

// fakeHasher 可预测的哈希mock，避免测试里反复跑bcrypt
type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) VerifyPassword(hashedPassword, password string) bool {
	return hashedPassword == "hashed:"+password
}

func newUserFixture() *mockUserRepo {
	return newMockUserRepo(
		&model.SysUser{UserID: 1, UserName: "admin", NickName: "管理员", Password: "hashed:admin123", Status: "0", DelFlag: "0"},
		&model.SysUser{UserID: 2, UserName: "alice", NickName: "爱丽丝", Password: "hashed:alice123", Status: "0", DelFlag: "0"},
	)
}

func TestUserCreateHashesPassword(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, nil, fakeHasher{})

	user, err := svc.Create(context.Background(), testAuthCtx(), &model.CreateUserRequest{
		UserName: "bob",
		NickName: "鲍勃",
		Password: "bob12345",
		RoleIDs:  []int64{2},
		PostIDs:  []int64{1},
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed:bob12345", user.Password)
	assert.Equal(t, model.StatusNormal, user.Status)
	assert.Equal(t, []int64{2}, repo.createdRoles)
	assert.Equal(t, []int64{1}, repo.createdPosts)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	svc := NewUserService(newUserFixture(), nil, fakeHasher{})

	_, err := svc.Create(context.Background(), testAuthCtx(), &model.CreateUserRequest{
		UserName: "alice",
		NickName: "重名",
		Password: "pass123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "用户名已存在")
}

func TestUserUpdateAdminDisableRejected(t *testing.T) {
	svc := NewUserService(newUserFixture(), nil, fakeHasher{})

	err := svc.Update(context.Background(), testAuthCtx(), &model.UpdateUserRequest{
		UserID:   1,
		NickName: "管理员",
		Status:   model.StatusDisabled,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不允许停用管理员账号")
}

func TestUserUpdateAdminRolesNotReplaced(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, nil, fakeHasher{})

	err := svc.Update(context.Background(), testAuthCtx(), &model.UpdateUserRequest{
		UserID:   1,
		NickName: "管理员",
		RoleIDs:  []int64{5},
	})
	require.NoError(t, err)
	// 管理员账号的角色分配不动
	assert.False(t, repo.replaceRoles)
}

func TestUserUpdateNormalUserRolesReplaced(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, nil, fakeHasher{})

	err := svc.Update(context.Background(), testAuthCtx(), &model.UpdateUserRequest{
		UserID:   2,
		NickName: "爱丽丝",
		RoleIDs:  []int64{5},
	})
	require.NoError(t, err)
	assert.True(t, repo.replaceRoles)
	assert.Equal(t, []int64{5}, repo.updateRoles)
}

func TestUserDeleteAdminRejected(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, nil, fakeHasher{})

	err := svc.Delete(context.Background(), testAuthCtx(), []int64{1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不允许删除管理员账号")
	assert.Empty(t, repo.softDeleted)
}

func TestUserDeleteSelfRejected(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, nil, fakeHasher{})

	authCtx := &model.AuthContext{UserID: 2, Username: "alice"}
	err := svc.Delete(context.Background(), authCtx, []int64{2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不允许删除当前登录用户")
}

func TestUserUpdatePasswordVerifiesOld(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, nil, fakeHasher{})

	authCtx := &model.AuthContext{UserID: 2, Username: "alice"}
	err := svc.UpdatePassword(context.Background(), authCtx, &model.UpdatePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newpass1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "旧密码错误")
}

func TestUserUpdatePasswordRejectsSame(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, nil, fakeHasher{})

	authCtx := &model.AuthContext{UserID: 2, Username: "alice"}
	err := svc.UpdatePassword(context.Background(), authCtx, &model.UpdatePasswordRequest{
		OldPassword: "alice123",
		NewPassword: "alice123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "新密码不能与旧密码相同")
}

func TestUserUpdatePasswordSuccess(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, nil, fakeHasher{})

	authCtx := &model.AuthContext{UserID: 2, Username: "alice"}
	err := svc.UpdatePassword(context.Background(), authCtx, &model.UpdatePasswordRequest{
		OldPassword: "alice123",
		NewPassword: "newpass1",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed:newpass1", repo.updatedCols["password"])
}

func TestUserListExpandsDeptSubtree(t *testing.T) {
	repo := newUserFixture()
	deptLookup := &mockUserDeptLookup{
		children: map[int64][]model.SysDept{
			3: {{DeptID: 7}, {DeptID: 9}},
		},
	}
	svc := NewUserService(repo, deptLookup, fakeHasher{})

	_, _, err := svc.List(context.Background(), &model.UserQueryRequest{DeptID: 3})
	require.NoError(t, err)
	// 部门过滤展开为部门自身及其全部后代
	assert.Equal(t, []int64{3, 7, 9}, repo.listDeptIDs)
}

func TestUserChangeStatusAdminRejected(t *testing.T) {
	svc := NewUserService(newUserFixture(), nil, fakeHasher{})

	err := svc.ChangeStatus(context.Background(), testAuthCtx(), 1, model.StatusDisabled)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不允许停用管理员账号")
}

func TestUserImportSummary(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, nil, fakeHasher{})

	template, err := svc.ImportTemplate(context.Background())
	require.NoError(t, err)

	// 往模板里写两行:一行新用户,一行与已有用户重名
	require.NoError(t, template.SetSheetRow("用户数据", "A2", &[]interface{}{"carol", "卡罗尔", 0, "13800000000", "carol@example.com", "1", "0"}))
	require.NoError(t, template.SetSheetRow("用户数据", "A3", &[]interface{}{"alice", "重名", 0, "", "", "", ""}))

	buf, err := template.WriteToBuffer()
	require.NoError(t, err)

	msg, err := svc.Import(context.Background(), testAuthCtx(), buf, "init123")
	require.NoError(t, err)
	assert.Contains(t, msg, "成功1条")
	assert.Contains(t, msg, "失败1条")

	created, err := svc.GetByID(context.Background(), repo.nextID)
	require.NoError(t, err)
	assert.Equal(t, "carol", created.UserName)
	assert.Equal(t, "hashed:init123", created.Password)
}
