/**
 * 模型:登录日志实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 登录/登出审计日志实体，只增不改
 * @func: SysLogininfor
 */
package model

import "time"

const (
	// LoginStatusSuccess 登录成功
	LoginStatusSuccess = "0"
	// LoginStatusFailed 登录失败
	LoginStatusFailed = "1"
)

// SysLogininfor 登录日志
type SysLogininfor struct {
	InfoID        int64      `json:"infoId" gorm:"column:info_id;primaryKey;autoIncrement"`
	TenantID      string     `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	UserName      string     `json:"userName" gorm:"column:user_name;size:50"`
	IPAddr        string     `json:"ipaddr" gorm:"column:ipaddr;size:128"`
	LoginLocation string     `json:"loginLocation" gorm:"column:login_location;size:255"`
	Browser       string     `json:"browser" gorm:"column:browser;size:50"`
	OS            string     `json:"os" gorm:"column:os;size:50"`
	Status        string     `json:"status" gorm:"column:status;size:1;default:0"`
	Msg           string     `json:"msg" gorm:"column:msg;size:255"`
	LoginTime     *time.Time `json:"loginTime" gorm:"column:login_time"`
}

// TableName 指定表名
func (SysLogininfor) TableName() string {
	return "sys_logininfor"
}
