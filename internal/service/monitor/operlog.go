/**
 * 服务:操作日志管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 操作审计日志的写入、查询、删除与批量清空，写入失败不向调用方传播
 * @func: OperLogService
 */
package monitor

import (
	"context"

	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/logger"
)

// OperLogRepo 操作日志服务依赖的数据访问接口
type OperLogRepo interface {
	Create(ctx context.Context, log *model.SysOperLog) error
	List(ctx context.Context, query *model.OperLogQueryRequest) ([]model.SysOperLog, int64, error)
	Delete(ctx context.Context, operIDs []int64) error
	Clean(ctx context.Context) error
}

// OperLogService 操作日志服务
type OperLogService struct {
	repo OperLogRepo
}

// NewOperLogService 创建操作日志服务实例
func NewOperLogService(repo OperLogRepo) *OperLogService {
	return &OperLogService{repo: repo}
}

// Record 写入一条操作日志
// 审计写失败只记错误日志，绝不影响被记录的业务操作
func (s *OperLogService) Record(ctx context.Context, log *model.SysOperLog) {
	if err := s.repo.Create(ctx, log); err != nil {
		logger.LogError(err, "", 0, log.OperIP, log.OperURL, log.RequestMethod, map[string]interface{}{
			"operation": "record_oper_log",
			"oper_name": log.OperName,
		})
	}
}

// List 分页查询操作日志
func (s *OperLogService) List(ctx context.Context, query *model.OperLogQueryRequest) ([]model.SysOperLog, int64, error) {
	return s.repo.List(ctx, query)
}

// Delete 删除指定操作日志
func (s *OperLogService) Delete(ctx context.Context, operIDs []int64) error {
	return s.repo.Delete(ctx, operIDs)
}

// Clean 清空全部操作日志
func (s *OperLogService) Clean(ctx context.Context) error {
	return s.repo.Clean(ctx)
}
