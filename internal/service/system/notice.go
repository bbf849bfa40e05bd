/**
 * 服务:通知公告管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 通知公告CRUD
 * @func: NoticeService
 */
package system

import (
	"context"

	"rbacadmin/internal/model"
)

// NoticeRepo 通知公告服务依赖的数据访问接口
type NoticeRepo interface {
	GetByID(ctx context.Context, noticeID int64) (*model.SysNotice, error)
	List(ctx context.Context, query *model.NoticeQueryRequest) ([]model.SysNotice, int64, error)
	Create(ctx context.Context, notice *model.SysNotice) error
	Update(ctx context.Context, notice *model.SysNotice) error
	Delete(ctx context.Context, noticeIDs []int64) error
}

// NoticeService 通知公告服务
type NoticeService struct {
	noticeRepo NoticeRepo
}

// NewNoticeService 创建通知公告服务实例
func NewNoticeService(noticeRepo NoticeRepo) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo}
}

// List 分页查询通知公告
func (s *NoticeService) List(ctx context.Context, query *model.NoticeQueryRequest) ([]model.SysNotice, int64, error) {
	return s.noticeRepo.List(ctx, query)
}

// GetByID 获取通知公告详情
func (s *NoticeService) GetByID(ctx context.Context, noticeID int64) (*model.SysNotice, error) {
	notice, err := s.noticeRepo.GetByID(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, model.NewBizErrorf("通知公告不存在: %d", noticeID)
	}
	return notice, nil
}

// Create 新增通知公告
func (s *NoticeService) Create(ctx context.Context, authCtx *model.AuthContext, req *model.CreateNoticeRequest) (*model.SysNotice, error) {
	status := req.Status
	if status == "" {
		status = model.StatusNormal
	}

	notice := &model.SysNotice{
		TenantID:      authCtx.TenantID,
		NoticeTitle:   req.NoticeTitle,
		NoticeType:    req.NoticeType,
		NoticeContent: req.NoticeContent,
		Status:        status,
	}
	notice.CreateBy = authCtx.Username
	notice.Remark = req.Remark

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// Update 修改通知公告
func (s *NoticeService) Update(ctx context.Context, authCtx *model.AuthContext, req *model.UpdateNoticeRequest) error {
	notice, err := s.GetByID(ctx, req.NoticeID)
	if err != nil {
		return err
	}

	notice.NoticeTitle = req.NoticeTitle
	notice.NoticeType = req.NoticeType
	notice.NoticeContent = req.NoticeContent
	if req.Status != "" {
		notice.Status = req.Status
	}
	notice.Remark = req.Remark
	notice.UpdateBy = authCtx.Username

	return s.noticeRepo.Update(ctx, notice)
}

// Delete 批量删除通知公告
func (s *NoticeService) Delete(ctx context.Context, noticeIDs []int64) error {
	return s.noticeRepo.Delete(ctx, noticeIDs)
}
