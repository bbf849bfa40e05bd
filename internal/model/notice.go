/**
 * 模型:通知公告实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 通知公告实体
 * @func: SysNotice
 */
package model

// SysNotice 通知公告
type SysNotice struct {
	NoticeID      int64  `json:"noticeId" gorm:"column:notice_id;primaryKey;autoIncrement"`
	TenantID      string `json:"tenantId" gorm:"column:tenant_id;size:20;default:000000"`
	NoticeTitle   string `json:"noticeTitle" gorm:"column:notice_title;size:50;not null"`
	NoticeType    string `json:"noticeType" gorm:"column:notice_type;size:1"`
	NoticeContent string `json:"noticeContent" gorm:"column:notice_content;type:longtext"`
	Status        string `json:"status" gorm:"column:status;size:1;default:0"`
	BaseEntity
}

// TableName 指定表名
func (SysNotice) TableName() string {
	return "sys_notice"
}
