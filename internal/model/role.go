/**
 * 模型:角色实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 系统角色实体及角色-菜单关联，超级管理员通过显式标志位判断
 * @func: SysRole
 */
package model

// 数据权限范围
const (
	DataScopeAll             = "1" // 全部数据权限
	DataScopeCustom          = "2" // 自定义数据权限
	DataScopeDept            = "3" // 本部门数据权限
	DataScopeDeptAndChild    = "4" // 本部门及以下数据权限
	DataScopeSelf            = "5" // 仅本人数据权限
	DataScopeDeptChildOrSelf = "6" // 部门及以下或本人数据权限
)

// SysRole 系统角色
type SysRole struct {
	RoleID            int64  `json:"roleId" gorm:"column:role_id;primaryKey;autoIncrement"`
	TenantID          string `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	RoleName          string `json:"roleName" gorm:"column:role_name;size:30;not null"`
	RoleKey           string `json:"roleKey" gorm:"column:role_key;size:100;not null"`
	RoleSort          int    `json:"roleSort" gorm:"column:role_sort;not null"`
	DataScope         string `json:"dataScope" gorm:"column:data_scope;size:1;default:1"`
	MenuCheckStrictly bool   `json:"menuCheckStrictly" gorm:"column:menu_check_strictly;default:true"`
	DeptCheckStrictly bool   `json:"deptCheckStrictly" gorm:"column:dept_check_strictly;default:true"`
	SuperAdmin        bool   `json:"superAdmin" gorm:"column:super_admin;default:false"`
	Status            string `json:"status" gorm:"column:status;size:1;not null"`
	DelFlag           string `json:"delFlag" gorm:"column:del_flag;size:1;default:0"`
	BaseEntity

	// Flag 前端勾选标志，不落库
	Flag bool `json:"flag" gorm:"-"`
}

// TableName 指定表名
func (SysRole) TableName() string {
	return "sys_role"
}

// IsSuperAdmin 是否超级管理员
// 显式标志位为主，权限字符等于superadmin时兼容历史数据
func (r *SysRole) IsSuperAdmin() bool {
	return r.SuperAdmin || r.RoleKey == SuperAdminRoleKey
}

// SysRoleMenu 角色-菜单关联
type SysRoleMenu struct {
	RoleID int64 `json:"roleId" gorm:"column:role_id;primaryKey"`
	MenuID int64 `json:"menuId" gorm:"column:menu_id;primaryKey"`
}

// TableName 指定表名
func (SysRoleMenu) TableName() string {
	return "sys_role_menu"
}
