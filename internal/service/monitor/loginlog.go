/**
 * 服务:登录日志查询
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 登录审计日志的查询、删除与批量清空
 * @func: LoginLogService
 */
package monitor

import (
	"context"

	"rbacadmin/internal/model"
)

// LoginLogRepo 登录日志服务依赖的数据访问接口
type LoginLogRepo interface {
	List(ctx context.Context, query *model.LoginLogQueryRequest) ([]model.SysLogininfor, int64, error)
	Delete(ctx context.Context, infoIDs []int64) error
	Clean(ctx context.Context) error
}

// LoginLogService 登录日志服务
type LoginLogService struct {
	repo LoginLogRepo
}

// NewLoginLogService 创建登录日志服务实例
func NewLoginLogService(repo LoginLogRepo) *LoginLogService {
	return &LoginLogService{repo: repo}
}

// List 分页查询登录日志
func (s *LoginLogService) List(ctx context.Context, query *model.LoginLogQueryRequest) ([]model.SysLogininfor, int64, error) {
	return s.repo.List(ctx, query)
}

// Delete 删除指定登录日志
func (s *LoginLogService) Delete(ctx context.Context, infoIDs []int64) error {
	return s.repo.Delete(ctx, infoIDs)
}

// Clean 清空全部登录日志
func (s *LoginLogService) Clean(ctx context.Context) error {
	return s.repo.Clean(ctx)
}
