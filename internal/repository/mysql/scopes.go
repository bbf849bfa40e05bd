/**
 * 仓储:公共查询范围
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 软删除与状态过滤的统一gorm scope，所有带del_flag的实体在查询构造处套用
 * @func: NotDeleted、StatusNormal
 */
package mysql

import (
	"rbacadmin/internal/model"

	"gorm.io/gorm"
)

// NotDeleted 过滤软删除记录
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("del_flag = ?", model.DelFlagNormal)
}

// StatusNormal 过滤停用记录
func StatusNormal(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", model.StatusNormal)
}
