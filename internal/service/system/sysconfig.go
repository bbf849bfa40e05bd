/**
 * 服务:参数配置管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 系统参数配置CRUD，键唯一，内置参数不允许删除
 * @func: ConfigService
 */
package system

import (
	"context"

	"rbacadmin/internal/model"
)

// ConfigRepo 参数配置服务依赖的数据访问接口
type ConfigRepo interface {
	GetByID(ctx context.Context, configID int64) (*model.SysConfig, error)
	GetByKey(ctx context.Context, configKey string) (*model.SysConfig, error)
	List(ctx context.Context, query *model.ConfigQueryRequest) ([]model.SysConfig, int64, error)
	Create(ctx context.Context, cfg *model.SysConfig) error
	Update(ctx context.Context, cfg *model.SysConfig) error
	Delete(ctx context.Context, configIDs []int64) error
}

// ConfigService 参数配置服务
type ConfigService struct {
	configRepo ConfigRepo
}

// NewConfigService 创建参数配置服务实例
func NewConfigService(configRepo ConfigRepo) *ConfigService {
	return &ConfigService{configRepo: configRepo}
}

// List 分页查询参数配置
func (s *ConfigService) List(ctx context.Context, query *model.ConfigQueryRequest) ([]model.SysConfig, int64, error) {
	return s.configRepo.List(ctx, query)
}

// GetByID 获取参数配置详情
func (s *ConfigService) GetByID(ctx context.Context, configID int64) (*model.SysConfig, error) {
	cfg, err := s.configRepo.GetByID(ctx, configID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, model.NewBizErrorf("参数配置不存在: %d", configID)
	}
	return cfg, nil
}

// GetValueByKey 根据键获取参数值，未找到返回空串
func (s *ConfigService) GetValueByKey(ctx context.Context, configKey string) (string, error) {
	cfg, err := s.configRepo.GetByKey(ctx, configKey)
	if err != nil {
		return "", err
	}
	if cfg == nil {
		return "", nil
	}
	return cfg.ConfigValue, nil
}

// Create 新增参数配置，键唯一
func (s *ConfigService) Create(ctx context.Context, authCtx *model.AuthContext, req *model.CreateConfigRequest) (*model.SysConfig, error) {
	existing, err := s.configRepo.GetByKey(ctx, req.ConfigKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewBizErrorf("参数键名已存在: %s", req.ConfigKey)
	}

	configType := req.ConfigType
	if configType == "" {
		configType = "N"
	}

	cfg := &model.SysConfig{
		TenantID:    authCtx.TenantID,
		ConfigName:  req.ConfigName,
		ConfigKey:   req.ConfigKey,
		ConfigValue: req.ConfigValue,
		ConfigType:  configType,
	}
	cfg.CreateBy = authCtx.Username
	cfg.Remark = req.Remark

	if err := s.configRepo.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Update 修改参数配置
func (s *ConfigService) Update(ctx context.Context, authCtx *model.AuthContext, req *model.UpdateConfigRequest) error {
	cfg, err := s.GetByID(ctx, req.ConfigID)
	if err != nil {
		return err
	}
	if req.ConfigKey != cfg.ConfigKey {
		existing, err := s.configRepo.GetByKey(ctx, req.ConfigKey)
		if err != nil {
			return err
		}
		if existing != nil && existing.ConfigID != cfg.ConfigID {
			return model.NewBizErrorf("参数键名已存在: %s", req.ConfigKey)
		}
	}

	cfg.ConfigName = req.ConfigName
	cfg.ConfigKey = req.ConfigKey
	cfg.ConfigValue = req.ConfigValue
	if req.ConfigType != "" {
		cfg.ConfigType = req.ConfigType
	}
	cfg.Remark = req.Remark
	cfg.UpdateBy = authCtx.Username

	return s.configRepo.Update(ctx, cfg)
}

// Delete 批量删除参数配置，内置参数拒绝删除
func (s *ConfigService) Delete(ctx context.Context, configIDs []int64) error {
	for _, configID := range configIDs {
		cfg, err := s.GetByID(ctx, configID)
		if err != nil {
			return err
		}
		if cfg.ConfigType == "Y" {
			return model.NewBizErrorf("内置参数不允许删除: %s", cfg.ConfigKey)
		}
	}
	return s.configRepo.Delete(ctx, configIDs)
}
