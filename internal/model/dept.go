/**
 * 模型:部门实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 部门实体，ancestors字段维护从根到直接父节点的物化路径
 * @func: SysDept
 */
package model

// SysDept 部门
type SysDept struct {
	DeptID       int64  `json:"deptId" gorm:"column:dept_id;primaryKey;autoIncrement"`
	TenantID     string `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	ParentID     int64  `json:"parentId" gorm:"column:parent_id;default:0"`
	Ancestors    string `json:"ancestors" gorm:"column:ancestors;size:500"`
	DeptName     string `json:"deptName" gorm:"column:dept_name;size:30"`
	DeptCategory string `json:"deptCategory" gorm:"column:dept_category;size:100"`
	OrderNum     int    `json:"orderNum" gorm:"column:order_num;default:0"`
	Leader       string `json:"leader" gorm:"column:leader;size:20"`
	Phone        string `json:"phone" gorm:"column:phone;size:11"`
	Email        string `json:"email" gorm:"column:email;size:50"`
	Status       string `json:"status" gorm:"column:status;size:1;default:0"`
	DelFlag      string `json:"delFlag" gorm:"column:del_flag;size:1;default:0"`
	BaseEntity

	// Children 子部门，树形展示时填充，不落库
	Children []*SysDept `json:"children,omitempty" gorm:"-"`
}

// TableName 指定表名
func (SysDept) TableName() string {
	return "sys_dept"
}
