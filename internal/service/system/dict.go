/**
 * 服务:字典管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 字典类型与字典数据管理，类型变更时同步数据
 * @func: DictService
 */
package system

import (
	"context"

	"rbacadmin/internal/model"
)

// DictRepo 字典服务依赖的数据访问接口
type DictRepo interface {
	GetTypeByID(ctx context.Context, dictID int64) (*model.SysDictType, error)
	GetTypeByType(ctx context.Context, dictType string) (*model.SysDictType, error)
	ListTypes(ctx context.Context, query *model.DictTypeQueryRequest) ([]model.SysDictType, int64, error)
	ListAllTypes(ctx context.Context) ([]model.SysDictType, error)
	CreateType(ctx context.Context, dictType *model.SysDictType) error
	UpdateType(ctx context.Context, dictType *model.SysDictType, oldDictType string) error
	DeleteTypes(ctx context.Context, dictIDs []int64) error
	CountDataByType(ctx context.Context, dictType string) (int64, error)
	GetDataByCode(ctx context.Context, dictCode int64) (*model.SysDictData, error)
	ListData(ctx context.Context, query *model.DictDataQueryRequest) ([]model.SysDictData, int64, error)
	ListDataByType(ctx context.Context, dictType string) ([]model.SysDictData, error)
	CreateData(ctx context.Context, data *model.SysDictData) error
	UpdateData(ctx context.Context, data *model.SysDictData) error
	DeleteData(ctx context.Context, dictCodes []int64) error
}

// DictService 字典服务
type DictService struct {
	dictRepo DictRepo
}

// NewDictService 创建字典服务实例
func NewDictService(dictRepo DictRepo) *DictService {
	return &DictService{dictRepo: dictRepo}
}

// ListTypes 分页查询字典类型
func (s *DictService) ListTypes(ctx context.Context, query *model.DictTypeQueryRequest) ([]model.SysDictType, int64, error) {
	return s.dictRepo.ListTypes(ctx, query)
}

// ListAllTypes 查询全部字典类型
func (s *DictService) ListAllTypes(ctx context.Context) ([]model.SysDictType, error) {
	return s.dictRepo.ListAllTypes(ctx)
}

// GetTypeByID 获取字典类型详情
func (s *DictService) GetTypeByID(ctx context.Context, dictID int64) (*model.SysDictType, error) {
	dictType, err := s.dictRepo.GetTypeByID(ctx, dictID)
	if err != nil {
		return nil, err
	}
	if dictType == nil {
		return nil, model.NewBizErrorf("字典类型不存在: %d", dictID)
	}
	return dictType, nil
}

// CreateType 新增字典类型，类型字符串唯一
func (s *DictService) CreateType(ctx context.Context, authCtx *model.AuthContext, req *model.CreateDictTypeRequest) (*model.SysDictType, error) {
	existing, err := s.dictRepo.GetTypeByType(ctx, req.DictType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewBizErrorf("字典类型已存在: %s", req.DictType)
	}

	dictType := &model.SysDictType{
		TenantID: authCtx.TenantID,
		DictName: req.DictName,
		DictType: req.DictType,
	}
	dictType.CreateBy = authCtx.Username
	dictType.Remark = req.Remark

	if err := s.dictRepo.CreateType(ctx, dictType); err != nil {
		return nil, err
	}
	return dictType, nil
}

// UpdateType 修改字典类型，类型字符串变化时同步其下字典数据
func (s *DictService) UpdateType(ctx context.Context, authCtx *model.AuthContext, req *model.UpdateDictTypeRequest) error {
	dictType, err := s.GetTypeByID(ctx, req.DictID)
	if err != nil {
		return err
	}
	oldDictType := dictType.DictType

	if req.DictType != oldDictType {
		existing, err := s.dictRepo.GetTypeByType(ctx, req.DictType)
		if err != nil {
			return err
		}
		if existing != nil && existing.DictID != dictType.DictID {
			return model.NewBizErrorf("字典类型已存在: %s", req.DictType)
		}
	}

	dictType.DictName = req.DictName
	dictType.DictType = req.DictType
	dictType.Remark = req.Remark
	dictType.UpdateBy = authCtx.Username

	return s.dictRepo.UpdateType(ctx, dictType, oldDictType)
}

// DeleteTypes 批量删除字典类型，存在字典数据时拒绝
func (s *DictService) DeleteTypes(ctx context.Context, dictIDs []int64) error {
	for _, dictID := range dictIDs {
		dictType, err := s.GetTypeByID(ctx, dictID)
		if err != nil {
			return err
		}
		count, err := s.dictRepo.CountDataByType(ctx, dictType.DictType)
		if err != nil {
			return err
		}
		if count > 0 {
			return model.NewBizErrorf("字典类型下存在数据,不允许删除: %s", dictType.DictName)
		}
	}
	return s.dictRepo.DeleteTypes(ctx, dictIDs)
}

// ListData 分页查询字典数据
func (s *DictService) ListData(ctx context.Context, query *model.DictDataQueryRequest) ([]model.SysDictData, int64, error) {
	return s.dictRepo.ListData(ctx, query)
}

// ListDataByType 查询指定类型的全部字典数据
func (s *DictService) ListDataByType(ctx context.Context, dictType string) ([]model.SysDictData, error) {
	return s.dictRepo.ListDataByType(ctx, dictType)
}

// GetDataByCode 获取字典数据详情
func (s *DictService) GetDataByCode(ctx context.Context, dictCode int64) (*model.SysDictData, error) {
	data, err := s.dictRepo.GetDataByCode(ctx, dictCode)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, model.NewBizErrorf("字典数据不存在: %d", dictCode)
	}
	return data, nil
}

// CreateData 新增字典数据，所属类型必须存在
func (s *DictService) CreateData(ctx context.Context, authCtx *model.AuthContext, req *model.CreateDictDataRequest) (*model.SysDictData, error) {
	dictType, err := s.dictRepo.GetTypeByType(ctx, req.DictType)
	if err != nil {
		return nil, err
	}
	if dictType == nil {
		return nil, model.NewBizErrorf("字典类型不存在: %s", req.DictType)
	}

	isDefault := req.IsDefault
	if isDefault == "" {
		isDefault = "N"
	}

	data := &model.SysDictData{
		TenantID:  authCtx.TenantID,
		DictSort:  req.DictSort,
		DictLabel: req.DictLabel,
		DictValue: req.DictValue,
		DictType:  req.DictType,
		CssClass:  req.CssClass,
		ListClass: req.ListClass,
		IsDefault: isDefault,
	}
	data.CreateBy = authCtx.Username
	data.Remark = req.Remark

	if err := s.dictRepo.CreateData(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

// UpdateData 修改字典数据
func (s *DictService) UpdateData(ctx context.Context, authCtx *model.AuthContext, req *model.UpdateDictDataRequest) error {
	data, err := s.GetDataByCode(ctx, req.DictCode)
	if err != nil {
		return err
	}

	data.DictSort = req.DictSort
	data.DictLabel = req.DictLabel
	data.DictValue = req.DictValue
	data.DictType = req.DictType
	data.CssClass = req.CssClass
	data.ListClass = req.ListClass
	if req.IsDefault != "" {
		data.IsDefault = req.IsDefault
	}
	data.Remark = req.Remark
	data.UpdateBy = authCtx.Username

	return s.dictRepo.UpdateData(ctx, data)
}

// DeleteData 批量删除字典数据
func (s *DictService) DeleteData(ctx context.Context, dictCodes []int64) error {
	return s.dictRepo.DeleteData(ctx, dictCodes)
}
