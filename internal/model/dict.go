/**
 * 模型:字典实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 字典类型与字典数据实体
 * @func: SysDictType、SysDictData
 */
package model

// SysDictType 字典类型
type SysDictType struct {
	DictID   int64  `json:"dictId" gorm:"column:dict_id;primaryKey;autoIncrement"`
	TenantID string `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	DictName string `json:"dictName" gorm:"column:dict_name;size:100"`
	DictType string `json:"dictType" gorm:"column:dict_type;size:100"`
	BaseEntity
}

// TableName 指定表名
func (SysDictType) TableName() string {
	return "sys_dict_type"
}

// SysDictData 字典数据
type SysDictData struct {
	DictCode  int64  `json:"dictCode" gorm:"column:dict_code;primaryKey;autoIncrement"`
	TenantID  string `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	DictSort  int    `json:"dictSort" gorm:"column:dict_sort;default:0"`
	DictLabel string `json:"dictLabel" gorm:"column:dict_label;size:100"`
	DictValue string `json:"dictValue" gorm:"column:dict_value;size:100"`
	DictType  string `json:"dictType" gorm:"column:dict_type;size:100"`
	CssClass  string `json:"cssClass" gorm:"column:css_class;size:100"`
	ListClass string `json:"listClass" gorm:"column:list_class;size:100"`
	IsDefault string `json:"isDefault" gorm:"column:is_default;size:1;default:N"`
	BaseEntity
}

// TableName 指定表名
func (SysDictData) TableName() string {
	return "sys_dict_data"
}
