/**
 * 服务:部门层级管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 部门树维护，ancestors物化路径的计算与子树换父时的前缀重写
 * @func: DeptService
 */
package system

import (
	"context"
	"strconv"
	"strings"

	"rbacadmin/internal/model"
)

// DeptRepo 部门服务依赖的数据访问接口
type DeptRepo interface {
	GetByID(ctx context.Context, deptID int64) (*model.SysDept, error)
	ListAll(ctx context.Context) ([]model.SysDept, error)
	ListByQuery(ctx context.Context, query *model.DeptQueryRequest) ([]model.SysDept, error)
	ListByIDs(ctx context.Context, deptIDs []int64) ([]model.SysDept, error)
	GetByNameAndParent(ctx context.Context, deptName string, parentID int64) (*model.SysDept, error)
	CountChildren(ctx context.Context, deptID int64) (int64, error)
	Create(ctx context.Context, dept *model.SysDept) error
	UpdateWithDescendants(ctx context.Context, dept *model.SysDept, descendantAncestors map[int64]string) error
	SoftDelete(ctx context.Context, deptIDs []int64) error
}

// DeptUserCounter 部门删除前的用户引用检查接口
type DeptUserCounter interface {
	CountByDeptID(ctx context.Context, deptID int64) (int64, error)
}

// DeptService 部门层级服务
type DeptService struct {
	deptRepo DeptRepo
	userRepo DeptUserCounter
}

// NewDeptService 创建部门服务实例
func NewDeptService(deptRepo DeptRepo, userRepo DeptUserCounter) *DeptService {
	return &DeptService{
		deptRepo: deptRepo,
		userRepo: userRepo,
	}
}

// GetTree 获取完整部门树，每层按排序号升序
func (s *DeptService) GetTree(ctx context.Context) ([]*model.SysDept, error) {
	depts, err := s.deptRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildDeptTree(depts, model.RootParentID), nil
}

// List 按条件查询部门平铺列表
func (s *DeptService) List(ctx context.Context, query *model.DeptQueryRequest) ([]model.SysDept, error) {
	return s.deptRepo.ListByQuery(ctx, query)
}

// GetByID 获取部门详情
func (s *DeptService) GetByID(ctx context.Context, deptID int64) (*model.SysDept, error) {
	dept, err := s.deptRepo.GetByID(ctx, deptID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, model.NewBizErrorf("部门不存在: %d", deptID)
	}
	return dept, nil
}

// FindChildDepts 获取指定部门的全部后代（含多级）
// 基于全量快照做递归过滤，结果不含自身、祖先和兄弟节点
func (s *DeptService) FindChildDepts(ctx context.Context, deptID int64) ([]model.SysDept, error) {
	depts, err := s.deptRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return collectDescendants(depts, deptID), nil
}

// collectDescendants 从平铺快照中收集deptID的所有后代
func collectDescendants(all []model.SysDept, deptID int64) []model.SysDept {
	// id -> 直接子节点索引，把O(n²)的反复过滤降为一次建表
	childIndex := make(map[int64][]int, len(all))
	for i := range all {
		childIndex[all[i].ParentID] = append(childIndex[all[i].ParentID], i)
	}

	var result []model.SysDept
	stack := []int64{deptID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, idx := range childIndex[current] {
			result = append(result, all[idx])
			stack = append(stack, all[idx].DeptID)
		}
	}
	return result
}

// Create 新增部门
// 同父级下名称唯一，ancestors由父节点推导
func (s *DeptService) Create(ctx context.Context, authCtx *model.AuthContext, req *model.CreateDeptRequest) (*model.SysDept, error) {
	existing, err := s.deptRepo.GetByNameAndParent(ctx, req.DeptName, req.ParentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewBizErrorf("部门名称已存在: %s", req.DeptName)
	}

	ancestors, tenantID, err := s.resolveAncestors(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}
	if tenantID == "" {
		tenantID = authCtx.TenantID
	}

	status := req.Status
	if status == "" {
		status = model.StatusNormal
	}

	dept := &model.SysDept{
		TenantID:     tenantID,
		ParentID:     req.ParentID,
		Ancestors:    ancestors,
		DeptName:     req.DeptName,
		DeptCategory: req.DeptCategory,
		OrderNum:     req.OrderNum,
		Leader:       req.Leader,
		Phone:        req.Phone,
		Email:        req.Email,
		Status:       status,
		DelFlag:      model.DelFlagNormal,
	}
	dept.CreateBy = authCtx.Username

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// resolveAncestors 根据父部门计算ancestors路径，根节点为空串
func (s *DeptService) resolveAncestors(ctx context.Context, parentID int64) (string, string, error) {
	if parentID == model.RootParentID {
		return "", "", nil
	}
	parent, err := s.deptRepo.GetByID(ctx, parentID)
	if err != nil {
		return "", "", err
	}
	if parent == nil {
		return "", "", model.NewBizErrorf("上级部门不存在: %d", parentID)
	}
	if parent.Ancestors == "" {
		return strconv.FormatInt(parent.DeptID, 10), parent.TenantID, nil
	}
	return parent.Ancestors + "," + strconv.FormatInt(parent.DeptID, 10), parent.TenantID, nil
}

// Update 修改部门
// 换父时校验自引用与环，并重写整个子树的ancestors前缀，全部变更在单个事务内落库
func (s *DeptService) Update(ctx context.Context, authCtx *model.AuthContext, req *model.UpdateDeptRequest) error {
	dept, err := s.deptRepo.GetByID(ctx, req.DeptID)
	if err != nil {
		return err
	}
	if dept == nil {
		return model.NewBizErrorf("部门不存在: %d", req.DeptID)
	}

	descendantAncestors := make(map[int64]string)

	if req.ParentID != dept.ParentID {
		if req.ParentID == dept.DeptID {
			return model.NewBizError("上级部门不能是自己")
		}
		descendants, err := s.FindChildDepts(ctx, dept.DeptID)
		if err != nil {
			return err
		}
		for _, child := range descendants {
			if child.DeptID == req.ParentID {
				return model.NewBizError("上级部门不能是自己的下级部门")
			}
		}

		newAncestors, _, err := s.resolveAncestors(ctx, req.ParentID)
		if err != nil {
			return err
		}

		// 旧前缀是本部门在后代ancestors中的片段：自身ancestors加自身id，根节点只有自身id
		oldPrefix := strconv.FormatInt(dept.DeptID, 10)
		if dept.Ancestors != "" {
			oldPrefix = dept.Ancestors + "," + oldPrefix
		}
		newPrefix := strconv.FormatInt(dept.DeptID, 10)
		if newAncestors != "" {
			newPrefix = newAncestors + "," + newPrefix
		}

		// 后代的ancestors形如 oldPrefix,childId,... 必须按前缀替换而非整串相等
		for _, child := range descendants {
			if strings.HasPrefix(child.Ancestors, oldPrefix) {
				descendantAncestors[child.DeptID] = newPrefix + child.Ancestors[len(oldPrefix):]
			}
		}

		dept.Ancestors = newAncestors
	}

	if req.DeptName != dept.DeptName {
		existing, err := s.deptRepo.GetByNameAndParent(ctx, req.DeptName, req.ParentID)
		if err != nil {
			return err
		}
		if existing != nil && existing.DeptID != dept.DeptID {
			return model.NewBizErrorf("部门名称已存在: %s", req.DeptName)
		}
	}

	dept.ParentID = req.ParentID
	dept.DeptName = req.DeptName
	dept.DeptCategory = req.DeptCategory
	dept.OrderNum = req.OrderNum
	dept.Leader = req.Leader
	dept.Phone = req.Phone
	dept.Email = req.Email
	if req.Status != "" {
		dept.Status = req.Status
	}
	dept.UpdateBy = authCtx.Username

	return s.deptRepo.UpdateWithDescendants(ctx, dept, descendantAncestors)
}

// Delete 批量软删除部门
// 存在未删除子部门或仍有用户归属时拒绝，必须先删叶子
func (s *DeptService) Delete(ctx context.Context, deptIDs []int64) error {
	for _, deptID := range deptIDs {
		dept, err := s.deptRepo.GetByID(ctx, deptID)
		if err != nil {
			return err
		}
		if dept == nil {
			return model.NewBizErrorf("部门不存在: %d", deptID)
		}
		childCount, err := s.deptRepo.CountChildren(ctx, deptID)
		if err != nil {
			return err
		}
		if childCount > 0 {
			return model.NewBizErrorf("存在下级部门,不允许删除: %s", dept.DeptName)
		}
		if s.userRepo != nil {
			userCount, err := s.userRepo.CountByDeptID(ctx, deptID)
			if err != nil {
				return err
			}
			if userCount > 0 {
				return model.NewBizErrorf("部门存在用户,不允许删除: %s", dept.DeptName)
			}
		}
	}
	return s.deptRepo.SoftDelete(ctx, deptIDs)
}

// FindOptionsByIDs 按ID集合返回部门选项
func (s *DeptService) FindOptionsByIDs(ctx context.Context, deptIDs []int64) ([]*model.TreeOption, error) {
	depts, err := s.deptRepo.ListByIDs(ctx, deptIDs)
	if err != nil {
		return nil, err
	}
	options := make([]*model.TreeOption, 0, len(depts))
	for i := range depts {
		options = append(options, &model.TreeOption{
			ID:       depts[i].DeptID,
			Label:    depts[i].DeptName,
			ParentID: depts[i].ParentID,
			Weight:   depts[i].OrderNum,
		})
	}
	return options, nil
}

// FindListExcludeChild 返回全部部门中排除指定部门及其整个子树后的列表
func (s *DeptService) FindListExcludeChild(ctx context.Context, deptID int64) ([]model.SysDept, error) {
	depts, err := s.deptRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	excluded := map[int64]struct{}{deptID: {}}
	for _, child := range collectDescendants(depts, deptID) {
		excluded[child.DeptID] = struct{}{}
	}

	result := make([]model.SysDept, 0, len(depts))
	for i := range depts {
		if _, skip := excluded[depts[i].DeptID]; !skip {
			result = append(result, depts[i])
		}
	}
	return result, nil
}

// BuildDeptTreeOptions 构建部门树形选择器，停用部门标记disabled
func (s *DeptService) BuildDeptTreeOptions(ctx context.Context) ([]*model.TreeOption, error) {
	depts, err := s.deptRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildDeptOptionTree(depts, model.RootParentID), nil
}

// buildDeptTree 从平铺列表递归构建部门树
func buildDeptTree(depts []model.SysDept, parentID int64) []*model.SysDept {
	var nodes []*model.SysDept
	for i := range depts {
		if depts[i].ParentID != parentID {
			continue
		}
		node := depts[i]
		node.Children = buildDeptTree(depts, node.DeptID)
		nodes = append(nodes, &node)
	}
	return nodes
}

// buildDeptOptionTree 从平铺列表递归构建树形选项
func buildDeptOptionTree(depts []model.SysDept, parentID int64) []*model.TreeOption {
	var nodes []*model.TreeOption
	for i := range depts {
		if depts[i].ParentID != parentID {
			continue
		}
		nodes = append(nodes, &model.TreeOption{
			ID:       depts[i].DeptID,
			Label:    depts[i].DeptName,
			ParentID: depts[i].ParentID,
			Weight:   depts[i].OrderNum,
			Disabled: depts[i].Status == model.StatusDisabled,
			Children: buildDeptOptionTree(depts, depts[i].DeptID),
		})
	}
	return nodes
}

// ValidateDeptEnabled 校验部门存在且未停用，分配用户到部门时调用
func (s *DeptService) ValidateDeptEnabled(ctx context.Context, deptID int64) error {
	dept, err := s.deptRepo.GetByID(ctx, deptID)
	if err != nil {
		return err
	}
	if dept == nil {
		return model.NewBizErrorf("部门不存在: %d", deptID)
	}
	if dept.Status == model.StatusDisabled {
		return model.NewBizErrorf("部门已停用: %s", dept.DeptName)
	}
	return nil
}

// SubtreeDeptIDs 返回部门及其后代的ID集合，数据权限过滤用
func (s *DeptService) SubtreeDeptIDs(ctx context.Context, deptID int64) ([]int64, error) {
	descendants, err := s.FindChildDepts(ctx, deptID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(descendants)+1)
	ids = append(ids, deptID)
	for _, d := range descendants {
		ids = append(ids, d.DeptID)
	}
	return ids, nil
}
