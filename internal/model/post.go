/**
 * 模型:岗位实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 岗位信息实体
 * @func: SysPost
 */
package model

// SysPost 岗位
type SysPost struct {
	PostID       int64  `json:"postId" gorm:"column:post_id;primaryKey;autoIncrement"`
	TenantID     string `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	DeptID       *int64 `json:"deptId" gorm:"column:dept_id"`
	PostCode     string `json:"postCode" gorm:"column:post_code;size:64;not null"`
	PostName     string `json:"postName" gorm:"column:post_name;size:50;not null"`
	PostCategory string `json:"postCategory" gorm:"column:post_category;size:100"`
	PostSort     int    `json:"postSort" gorm:"column:post_sort;not null"`
	Status       string `json:"status" gorm:"column:status;size:1;not null"`
	BaseEntity
}

// TableName 指定表名
func (SysPost) TableName() string {
	return "sys_post"
}
