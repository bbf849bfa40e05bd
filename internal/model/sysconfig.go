/**
 * 模型:参数配置实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 系统参数配置实体
 * @func: SysConfig
 */
package model

// SysConfig 参数配置
type SysConfig struct {
	ConfigID    int64  `json:"configId" gorm:"column:config_id;primaryKey;autoIncrement"`
	TenantID    string `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	ConfigName  string `json:"configName" gorm:"column:config_name;size:100"`
	ConfigKey   string `json:"configKey" gorm:"column:config_key;size:100"`
	ConfigValue string `json:"configValue" gorm:"column:config_value;size:500"`
	ConfigType  string `json:"configType" gorm:"column:config_type;size:1;default:N"`
	BaseEntity
}

// TableName 指定表名
func (SysConfig) TableName() string {
	return "sys_config"
}
