/**
 * 模型:操作日志实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 操作审计日志实体，由请求拦截中间件自动记录
 * @func: SysOperLog
 */
package model

import "time"

const (
	// OperStatusSuccess 操作成功
	OperStatusSuccess = 0
	// OperStatusFailed 操作失败
	OperStatusFailed = 1
)

// SysOperLog 操作日志
type SysOperLog struct {
	OperID        int64      `json:"operId" gorm:"column:oper_id;primaryKey;autoIncrement"`
	TenantID      string     `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	Title         string     `json:"title" gorm:"column:title;size:50"`
	BusinessType  int        `json:"businessType" gorm:"column:business_type;default:0"`
	Method        string     `json:"method" gorm:"column:method;size:100"`
	RequestMethod string     `json:"requestMethod" gorm:"column:request_method;size:10"`
	OperName      string     `json:"operName" gorm:"column:oper_name;size:50"`
	DeptName      string     `json:"deptName" gorm:"column:dept_name;size:50"`
	OperURL       string     `json:"operUrl" gorm:"column:oper_url;size:255"`
	OperIP        string     `json:"operIp" gorm:"column:oper_ip;size:128"`
	OperLocation  string     `json:"operLocation" gorm:"column:oper_location;size:255"`
	OperParam     string     `json:"operParam" gorm:"column:oper_param;size:4000"`
	JSONResult    string     `json:"jsonResult" gorm:"column:json_result;size:4000"`
	Status        int        `json:"status" gorm:"column:status;default:0"`
	ErrorMsg      string     `json:"errorMsg" gorm:"column:error_msg;size:4000"`
	OperTime      *time.Time `json:"operTime" gorm:"column:oper_time"`
	CostTime      int64      `json:"costTime" gorm:"column:cost_time;default:0"`
}

// TableName 指定表名
func (SysOperLog) TableName() string {
	return "sys_oper_log"
}
