/**
 * 模型:用户实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 系统用户实体及用户-角色、用户-岗位关联
 * @func: SysUser
 */
package model

import "time"

// SysUser 系统用户
type SysUser struct {
	UserID      int64      `json:"userId" gorm:"column:user_id;primaryKey;autoIncrement"`
	TenantID    string     `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	DeptID      *int64     `json:"deptId" gorm:"column:dept_id"`
	UserName    string     `json:"userName" gorm:"column:user_name;size:30;not null"`
	NickName    string     `json:"nickName" gorm:"column:nick_name;size:30;not null"`
	UserType    string     `json:"userType" gorm:"column:user_type;size:10;default:sys_user"`
	Email       string     `json:"email" gorm:"column:email;size:50"`
	Phonenumber string     `json:"phonenumber" gorm:"column:phonenumber;size:11"`
	Sex         string     `json:"sex" gorm:"column:sex;size:1;default:0"`
	Avatar      string     `json:"avatar" gorm:"column:avatar;size:100"`
	Password    string     `json:"-" gorm:"column:password;size:100"`
	Status      string     `json:"status" gorm:"column:status;size:1;default:0"`
	DelFlag     string     `json:"delFlag" gorm:"column:del_flag;size:1;default:0"`
	LoginIP     string     `json:"loginIp" gorm:"column:login_ip;size:128"`
	LoginDate   *time.Time `json:"loginDate" gorm:"column:login_date"`
	BaseEntity

	// 关联字段，不落库
	Dept  *SysDept  `json:"dept,omitempty" gorm:"-"`
	Roles []SysRole `json:"roles,omitempty" gorm:"-"`
}

// TableName 指定表名
func (SysUser) TableName() string {
	return "sys_user"
}

// IsActive 用户是否可登录（未停用且未删除）
func (u *SysUser) IsActive() bool {
	return u.Status == StatusNormal && u.DelFlag == DelFlagNormal
}

// SysUserRole 用户-角色关联
type SysUserRole struct {
	UserID int64 `json:"userId" gorm:"column:user_id;primaryKey"`
	RoleID int64 `json:"roleId" gorm:"column:role_id;primaryKey"`
}

// TableName 指定表名
func (SysUserRole) TableName() string {
	return "sys_user_role"
}

// SysUserPost 用户-岗位关联
type SysUserPost struct {
	UserID int64 `json:"userId" gorm:"column:user_id;primaryKey"`
	PostID int64 `json:"postId" gorm:"column:post_id;primaryKey"`
}

// TableName 指定表名
func (SysUserPost) TableName() string {
	return "sys_user_post"
}
