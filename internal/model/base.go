/**
 * 模型:公共定义
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 实体公共字段与状态、删除标志、菜单类型等枚举常量
 * @func: BaseEntity 及公共常量
 */
package model

import "time"

const (
	// StatusNormal 正常状态
	StatusNormal = "0"
	// StatusDisabled 停用状态
	StatusDisabled = "1"

	// DelFlagNormal 存在标志
	DelFlagNormal = "0"
	// DelFlagDeleted 已删除标志
	DelFlagDeleted = "2"

	// DefaultTenantID 默认租户编号
	DefaultTenantID = "000000"

	// RootParentID 树形结构根节点的父ID
	RootParentID int64 = 0
)

const (
	// MenuTypeDir 目录
	MenuTypeDir = "M"
	// MenuTypeMenu 菜单
	MenuTypeMenu = "C"
	// MenuTypeButton 按钮
	MenuTypeButton = "F"
)

const (
	// SuperAdminRoleKey 超级管理员角色权限字符
	SuperAdminRoleKey = "superadmin"
	// AllPermission 超级管理员的全量权限标识
	AllPermission = "*:*:*"
)

// BaseEntity 实体公共审计字段
type BaseEntity struct {
	CreateBy   string     `json:"createBy" gorm:"column:create_by;size:64"`
	CreateTime *time.Time `json:"createTime" gorm:"column:create_time;autoCreateTime"`
	UpdateBy   string     `json:"updateBy" gorm:"column:update_by;size:64"`
	UpdateTime *time.Time `json:"updateTime" gorm:"column:update_time;autoUpdateTime"`
	Remark     string     `json:"remark" gorm:"column:remark;size:500"`
}
