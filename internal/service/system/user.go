/**
 * 服务:用户管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 用户CRUD、角色岗位分配、密码维护与Excel导入导出，管理员账号有保护
 * @func: UserService
 */
package system

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/excel"

	"github.com/xuri/excelize/v2"
)

// AdminUserID 内置管理员用户ID，不允许停用或删除
const AdminUserID int64 = 1

// UserRepo 用户服务依赖的数据访问接口
type UserRepo interface {
	GetByID(ctx context.Context, userID int64) (*model.SysUser, error)
	GetByUsername(ctx context.Context, username string) (*model.SysUser, error)
	List(ctx context.Context, query *model.UserQueryRequest, deptIDs []int64) ([]model.SysUser, int64, error)
	Create(ctx context.Context, user *model.SysUser) error
	Update(ctx context.Context, user *model.SysUser) error
	UpdateColumns(ctx context.Context, userID int64, values map[string]interface{}) error
	SoftDelete(ctx context.Context, userIDs []int64) error
	GetRoleIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
	GetPostIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
	CreateWithAssociations(ctx context.Context, user *model.SysUser, roleIDs, postIDs []int64) error
	UpdateWithAssociations(ctx context.Context, userID int64, values map[string]interface{}, roleIDs, postIDs []int64, replaceRoles bool) error
}

// PasswordHasher 密码哈希接口
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) bool
}

// UserDeptLookup 用户服务需要的部门查询接口
type UserDeptLookup interface {
	GetByID(ctx context.Context, deptID int64) (*model.SysDept, error)
	FindChildDepts(ctx context.Context, deptID int64) ([]model.SysDept, error)
}

// UserService 用户服务
type UserService struct {
	userRepo UserRepo
	deptSvc  UserDeptLookup
	hasher   PasswordHasher
}

// NewUserService 创建用户服务实例
func NewUserService(userRepo UserRepo, deptSvc UserDeptLookup, hasher PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		deptSvc:  deptSvc,
		hasher:   hasher,
	}
}

// List 分页查询用户列表，部门条件会展开为部门及其整个子树
func (s *UserService) List(ctx context.Context, query *model.UserQueryRequest) ([]model.SysUser, int64, error) {
	var deptIDs []int64
	if query.DeptID > 0 && s.deptSvc != nil {
		children, err := s.deptSvc.FindChildDepts(ctx, query.DeptID)
		if err != nil {
			return nil, 0, err
		}
		deptIDs = append(deptIDs, query.DeptID)
		for _, child := range children {
			deptIDs = append(deptIDs, child.DeptID)
		}
	}
	return s.userRepo.List(ctx, query, deptIDs)
}

// GetByID 获取用户详情，附带部门信息
func (s *UserService) GetByID(ctx context.Context, userID int64) (*model.SysUser, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NewBizErrorf("用户不存在: %d", userID)
	}
	if user.DeptID != nil && s.deptSvc != nil {
		dept, err := s.deptSvc.GetByID(ctx, *user.DeptID)
		if err == nil && dept != nil {
			user.Dept = dept
		}
	}
	return user, nil
}

// GetRoleAndPostIDs 获取用户的角色与岗位ID列表
func (s *UserService) GetRoleAndPostIDs(ctx context.Context, userID int64) ([]int64, []int64, error) {
	roleIDs, err := s.userRepo.GetRoleIDsByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	postIDs, err := s.userRepo.GetPostIDsByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return roleIDs, postIDs, nil
}

// Create 新增用户，用户名唯一，密码入库前哈希
func (s *UserService) Create(ctx context.Context, authCtx *model.AuthContext, req *model.CreateUserRequest) (*model.SysUser, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.UserName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewBizErrorf("用户名已存在: %s", req.UserName)
	}

	hashed, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	status := req.Status
	if status == "" {
		status = model.StatusNormal
	}

	user := &model.SysUser{
		TenantID:    authCtx.TenantID,
		DeptID:      req.DeptID,
		UserName:    req.UserName,
		NickName:    req.NickName,
		Email:       req.Email,
		Phonenumber: req.Phonenumber,
		Sex:         req.Sex,
		Password:    hashed,
		Status:      status,
		DelFlag:     model.DelFlagNormal,
	}
	user.CreateBy = authCtx.Username
	user.Remark = req.Remark

	if err := s.userRepo.CreateWithAssociations(ctx, user, req.RoleIDs, req.PostIDs); err != nil {
		return nil, err
	}
	return user, nil
}

// Update 修改用户及其角色、岗位分配
func (s *UserService) Update(ctx context.Context, authCtx *model.AuthContext, req *model.UpdateUserRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return model.NewBizErrorf("用户不存在: %d", req.UserID)
	}

	updates := map[string]interface{}{
		"dept_id":     req.DeptID,
		"nick_name":   req.NickName,
		"email":       req.Email,
		"phonenumber": req.Phonenumber,
		"sex":         req.Sex,
		"remark":      req.Remark,
		"update_by":   authCtx.Username,
	}
	if req.Status != "" {
		if req.UserID == AdminUserID && req.Status == model.StatusDisabled {
			return model.NewBizError("不允许停用管理员账号")
		}
		updates["status"] = req.Status
	}

	// 管理员账号的角色分配不允许变更
	replaceRoles := req.UserID != AdminUserID
	return s.userRepo.UpdateWithAssociations(ctx, req.UserID, updates, req.RoleIDs, req.PostIDs, replaceRoles)
}

// Delete 批量软删除用户，管理员与当前登录用户不允许删除
func (s *UserService) Delete(ctx context.Context, authCtx *model.AuthContext, userIDs []int64) error {
	for _, userID := range userIDs {
		if userID == AdminUserID {
			return model.NewBizError("不允许删除管理员账号")
		}
		if userID == authCtx.UserID {
			return model.NewBizError("不允许删除当前登录用户")
		}
	}
	return s.userRepo.SoftDelete(ctx, userIDs)
}

// ResetPassword 管理员重置用户密码
func (s *UserService) ResetPassword(ctx context.Context, authCtx *model.AuthContext, req *model.ResetPasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return model.NewBizErrorf("用户不存在: %d", req.UserID)
	}
	hashed, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdateColumns(ctx, req.UserID, map[string]interface{}{
		"password":  hashed,
		"update_by": authCtx.Username,
	})
}

// ChangeStatus 切换用户状态，管理员账号不允许停用
func (s *UserService) ChangeStatus(ctx context.Context, authCtx *model.AuthContext, userID int64, status string) error {
	if userID == AdminUserID && status == model.StatusDisabled {
		return model.NewBizError("不允许停用管理员账号")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return model.NewBizErrorf("用户不存在: %d", userID)
	}
	return s.userRepo.UpdateColumns(ctx, userID, map[string]interface{}{
		"status":    status,
		"update_by": authCtx.Username,
	})
}

// UpdateProfile 当前用户修改个人信息
func (s *UserService) UpdateProfile(ctx context.Context, authCtx *model.AuthContext, req *model.UpdateProfileRequest) error {
	return s.userRepo.UpdateColumns(ctx, authCtx.UserID, map[string]interface{}{
		"nick_name":   req.NickName,
		"email":       req.Email,
		"phonenumber": req.Phonenumber,
		"sex":         req.Sex,
		"update_by":   authCtx.Username,
	})
}

// UpdatePassword 当前用户修改密码，需校验旧密码
func (s *UserService) UpdatePassword(ctx context.Context, authCtx *model.AuthContext, req *model.UpdatePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, authCtx.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return model.NewBizErrorf("用户不存在: %d", authCtx.UserID)
	}
	if !s.hasher.VerifyPassword(user.Password, req.OldPassword) {
		return model.NewBizError("旧密码错误")
	}
	if req.OldPassword == req.NewPassword {
		return model.NewBizError("新密码不能与旧密码相同")
	}
	hashed, err := s.hasher.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdateColumns(ctx, authCtx.UserID, map[string]interface{}{
		"password":  hashed,
		"update_by": authCtx.Username,
	})
}

// userExportHeaders 用户导出与导入模板的表头
var userExportHeaders = []string{"用户名", "昵称", "部门编号", "手机号码", "邮箱", "性别", "状态"}

// Export 导出用户列表为Excel工作簿
func (s *UserService) Export(ctx context.Context, query *model.UserQueryRequest) (*excelize.File, error) {
	// 导出不分页，取足够大的页容量
	query.PageNum = 1
	query.PageSize = 10000
	users, _, err := s.List(ctx, query)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(users))
	for i := range users {
		deptID := int64(0)
		if users[i].DeptID != nil {
			deptID = *users[i].DeptID
		}
		rows = append(rows, []interface{}{
			users[i].UserName,
			users[i].NickName,
			deptID,
			users[i].Phonenumber,
			users[i].Email,
			users[i].Sex,
			users[i].Status,
		})
	}
	return excel.WriteSheet("用户数据", userExportHeaders, rows)
}

// ImportTemplate 生成用户导入模板
func (s *UserService) ImportTemplate(ctx context.Context) (*excelize.File, error) {
	return excel.WriteSheet("用户数据", userExportHeaders, nil)
}

// Import 从Excel导入用户
// 逐行处理，已存在的用户名跳过并计入失败，返回导入结果摘要
func (s *UserService) Import(ctx context.Context, authCtx *model.AuthContext, r io.Reader, initPassword string) (string, error) {
	rows, err := excel.ReadSheet(r)
	if err != nil {
		return "", model.NewBizError("导入文件格式错误")
	}
	if len(rows) < 2 {
		return "", model.NewBizError("导入数据不能为空")
	}

	var successCount, failCount int
	var failMsgs []string
	for i, row := range rows[1:] {
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		req := &model.CreateUserRequest{
			UserName: strings.TrimSpace(row[0]),
			NickName: strings.TrimSpace(row[1]),
			Password: initPassword,
			Status:   model.StatusNormal,
		}
		if len(row) > 3 {
			req.Phonenumber = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			req.Email = strings.TrimSpace(row[4])
		}
		if len(row) > 5 {
			req.Sex = strings.TrimSpace(row[5])
		}
		if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
			req.Status = strings.TrimSpace(row[6])
		}

		if _, err := s.Create(ctx, authCtx, req); err != nil {
			failCount++
			failMsgs = append(failMsgs, fmt.Sprintf("第%d行 %s: %v", i+2, req.UserName, err))
			continue
		}
		successCount++
	}

	msg := fmt.Sprintf("导入完成,成功%d条,失败%d条", successCount, failCount)
	if len(failMsgs) > 0 {
		msg += ": " + strings.Join(failMsgs, "; ")
	}
	return msg, nil
}

// RecordLogin 登录成功后更新最近登录信息
func (s *UserService) RecordLogin(ctx context.Context, userID int64, loginIP string) error {
	return s.userRepo.UpdateColumns(ctx, userID, map[string]interface{}{
		"login_ip":   loginIP,
		"login_date": time.Now(),
	})
}
