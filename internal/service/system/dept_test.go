/**
 * 测试:部门层级管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: ancestors物化路径推导、换父前缀重写与删除保护的单元测试
 * @func: TestDeptService
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

// mockDeptRepo 手写部门数据访问mock
type mockDeptRepo struct {
	depts            map[int64]*model.SysDept
	nextID           int64
	updatedDept      *model.SysDept
	updatedAncestors map[int64]string
	softDeleted      []int64
}

func newMockDeptRepo(depts ...*model.SysDept) *mockDeptRepo {
	repo := &mockDeptRepo{depts: make(map[int64]*model.SysDept), nextID: 100}
	for _, dept := range depts {
		repo.depts[dept.DeptID] = dept
	}
	return repo
}

func (m *mockDeptRepo) GetByID(ctx context.Context, deptID int64) (*model.SysDept, error) {
	if dept, ok := m.depts[deptID]; ok {
		copied := *dept
		return &copied, nil
	}
	return nil, nil
}

func (m *mockDeptRepo) ListAll(ctx context.Context) ([]model.SysDept, error) {
	ids := make([]int64, 0, len(m.depts))
	for id := range m.depts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.SysDept, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.depts[id])
	}
	return result, nil
}

func (m *mockDeptRepo) ListByQuery(ctx context.Context, query *model.DeptQueryRequest) ([]model.SysDept, error) {
	return m.ListAll(ctx)
}

func (m *mockDeptRepo) ListByIDs(ctx context.Context, deptIDs []int64) ([]model.SysDept, error) {
	result := make([]model.SysDept, 0, len(deptIDs))
	for _, id := range deptIDs {
		if dept, ok := m.depts[id]; ok {
			result = append(result, *dept)
		}
	}
	return result, nil
}

func (m *mockDeptRepo) GetByNameAndParent(ctx context.Context, deptName string, parentID int64) (*model.SysDept, error) {
	for _, dept := range m.depts {
		if dept.DeptName == deptName && dept.ParentID == parentID {
			copied := *dept
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockDeptRepo) CountChildren(ctx context.Context, deptID int64) (int64, error) {
	var count int64
	for _, dept := range m.depts {
		if dept.ParentID == deptID {
			count++
		}
	}
	return count, nil
}

func (m *mockDeptRepo) Create(ctx context.Context, dept *model.SysDept) error {
	m.nextID++
	dept.DeptID = m.nextID
	copied := *dept
	m.depts[dept.DeptID] = &copied
	return nil
}

func (m *mockDeptRepo) UpdateWithDescendants(ctx context.Context, dept *model.SysDept, descendantAncestors map[int64]string) error {
	m.updatedDept = dept
	m.updatedAncestors = descendantAncestors
	copied := *dept
	m.depts[dept.DeptID] = &copied
	for deptID, ancestors := range descendantAncestors {
		if child, ok := m.depts[deptID]; ok {
			child.Ancestors = ancestors
		}
	}
	return nil
}

func (m *mockDeptRepo) SoftDelete(ctx context.Context, deptIDs []int64) error {
	m.softDeleted = append(m.softDeleted, deptIDs...)
	for _, id := range deptIDs {
		delete(m.depts, id)
	}
	return nil
}

// mockDeptUserCounter 部门用户数mock
type mockDeptUserCounter struct {
	counts map[int64]int64
}

func (m *mockDeptUserCounter) CountByDeptID(ctx context.Context, deptID int64) (int64, error) {
	return m.counts[deptID], nil
}

// newDeptFixture 四级部门链:总公司(1) -> 研发中心(3) -> 平台组(7) -> 内核小组(9),外加兄弟节点市场部(5)
func newDeptFixture() *mockDeptRepo {
	return newMockDeptRepo(
		&model.SysDept{DeptID: 1, TenantID: "000000", ParentID: 0, Ancestors: "", DeptName: "总公司", Status: "0"},
		&model.SysDept{DeptID: 3, TenantID: "000000", ParentID: 1, Ancestors: "1", DeptName: "研发中心", Status: "0"},
		&model.SysDept{DeptID: 5, TenantID: "000000", ParentID: 1, Ancestors: "1", DeptName: "市场部", Status: "0"},
		&model.SysDept{DeptID: 7, TenantID: "000000", ParentID: 3, Ancestors: "1,3", DeptName: "平台组", Status: "0"},
		&model.SysDept{DeptID: 9, TenantID: "000000", ParentID: 7, Ancestors: "1,3,7", DeptName: "内核小组", Status: "0"},
	)
}

func testAuthCtx() *model.AuthContext {
	return &model.AuthContext{UserID: 1, Username: "admin", TenantID: "000000"}
}

func TestDeptCreateAncestorsDerivation(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	// 挂在 ancestors="1,3" 的部门7下,新节点的ancestors应为 "1,3,7"
	dept, err := svc.Create(context.Background(), testAuthCtx(), &model.CreateDeptRequest{
		ParentID: 7,
		DeptName: "存储小组",
	})
	require.NoError(t, err)
	assert.Equal(t, "1,3,7", dept.Ancestors)
	assert.Equal(t, "000000", dept.TenantID)
	assert.Equal(t, model.StatusNormal, dept.Status)
}

func TestDeptCreateUnderRoot(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	dept, err := svc.Create(context.Background(), testAuthCtx(), &model.CreateDeptRequest{
		ParentID: 0,
		DeptName: "分公司",
	})
	require.NoError(t, err)
	assert.Equal(t, "", dept.Ancestors)
}

func TestDeptCreateDuplicateName(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	_, err := svc.Create(context.Background(), testAuthCtx(), &model.CreateDeptRequest{
		ParentID: 1,
		DeptName: "研发中心",
	})
	require.Error(t, err)
	var bizErr *model.BizError
	assert.ErrorAs(t, err, &bizErr)
}

func TestDeptCreateMissingParent(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	_, err := svc.Create(context.Background(), testAuthCtx(), &model.CreateDeptRequest{
		ParentID: 999,
		DeptName: "幽灵部门",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "上级部门不存在")
}

func TestDeptFindChildDeptsDeepChain(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	descendants, err := svc.FindChildDepts(context.Background(), 3)
	require.NoError(t, err)
	ids := make([]int64, 0, len(descendants))
	for _, d := range descendants {
		ids = append(ids, d.DeptID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	// 不含自身、祖先(1)与兄弟(5)
	assert.Equal(t, []int64{7, 9}, ids)
}

func TestDeptUpdateRejectSelfParent(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	err := svc.Update(context.Background(), testAuthCtx(), &model.UpdateDeptRequest{
		DeptID: 3,
		CreateDeptRequest: model.CreateDeptRequest{
			ParentID: 3,
			DeptName: "研发中心",
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "上级部门不能是自己")
	// 校验失败不落库
	assert.Nil(t, repo.updatedDept)
}

func TestDeptUpdateRejectCycle(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	// 把部门3挂到自己的后代9下面会成环
	err := svc.Update(context.Background(), testAuthCtx(), &model.UpdateDeptRequest{
		DeptID: 3,
		CreateDeptRequest: model.CreateDeptRequest{
			ParentID: 9,
			DeptName: "研发中心",
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "上级部门不能是自己的下级部门")
	assert.Nil(t, repo.updatedDept)
}

func TestDeptUpdateReparentRewritesSubtree(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	// 把研发中心(3)从总公司(1)移到市场部(5)下
	err := svc.Update(context.Background(), testAuthCtx(), &model.UpdateDeptRequest{
		DeptID: 3,
		CreateDeptRequest: model.CreateDeptRequest{
			ParentID: 5,
			DeptName: "研发中心",
		},
	})
	require.NoError(t, err)

	require.NotNil(t, repo.updatedDept)
	assert.Equal(t, "1,5", repo.updatedDept.Ancestors)
	// 整个子树的ancestors前缀同步替换
	assert.Equal(t, map[int64]string{
		7: "1,5,3",
		9: "1,5,3,7",
	}, repo.updatedAncestors)
}

func TestDeptUpdateSameParentNoRewrite(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	err := svc.Update(context.Background(), testAuthCtx(), &model.UpdateDeptRequest{
		DeptID: 3,
		CreateDeptRequest: model.CreateDeptRequest{
			ParentID: 1,
			DeptName: "研发平台中心",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updatedDept)
	assert.Equal(t, "研发平台中心", repo.updatedDept.DeptName)
	assert.Empty(t, repo.updatedAncestors)
}

func TestDeptDeleteWithChildrenRejected(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	err := svc.Delete(context.Background(), []int64{3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "存在下级部门")
	assert.Empty(t, repo.softDeleted)
}

func TestDeptDeleteWithUsersRejected(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{counts: map[int64]int64{9: 2}})

	err := svc.Delete(context.Background(), []int64{9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "部门存在用户")
	assert.Empty(t, repo.softDeleted)
}

func TestDeptDeleteLeaf(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	err := svc.Delete(context.Background(), []int64{9})
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, repo.softDeleted)
}

func TestDeptFindListExcludeChild(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	depts, err := svc.FindListExcludeChild(context.Background(), 3)
	require.NoError(t, err)
	ids := make([]int64, 0, len(depts))
	for _, d := range depts {
		ids = append(ids, d.DeptID)
	}
	assert.Equal(t, []int64{1, 5}, ids)
}

func TestDeptGetTree(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	tree, err := svc.GetTree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, int64(1), tree[0].DeptID)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, int64(3), tree[0].Children[0].DeptID)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, int64(7), tree[0].Children[0].Children[0].DeptID)
}

func TestDeptTreeOptionsDisabledFlag(t *testing.T) {
	repo := newMockDeptRepo(
		&model.SysDept{DeptID: 1, ParentID: 0, DeptName: "总公司", Status: "0"},
		&model.SysDept{DeptID: 2, ParentID: 1, DeptName: "停用部门", Status: "1"},
	)
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	options, err := svc.BuildDeptTreeOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.False(t, options[0].Disabled)
	require.Len(t, options[0].Children, 1)
	assert.True(t, options[0].Children[0].Disabled)
}

func TestDeptSubtreeDeptIDs(t *testing.T) {
	repo := newDeptFixture()
	svc := NewDeptService(repo, &mockDeptUserCounter{})

	ids, err := svc.SubtreeDeptIDs(context.Background(), 3)
	require.NoError(t, err)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.Equal(t, []int64{3, 7, 9}, ids)
}
