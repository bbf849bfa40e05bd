/**
 * 模型:菜单实体
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 菜单权限实体，含目录/菜单/按钮三种类型
 * @func: SysMenu
 */
package model

// SysMenu 菜单权限
type SysMenu struct {
	MenuID     int64  `json:"menuId" gorm:"column:menu_id;primaryKey;autoIncrement"`
	MenuName   string `json:"menuName" gorm:"column:menu_name;size:50;not null"`
	ParentID   int64  `json:"parentId" gorm:"column:parent_id;default:0"`
	OrderNum   int    `json:"orderNum" gorm:"column:order_num;default:0"`
	Path       string `json:"path" gorm:"column:path;size:200"`
	Component  string `json:"component" gorm:"column:component;size:255"`
	QueryParam string `json:"queryParam" gorm:"column:query_param;size:255"`
	IsFrame    int    `json:"isFrame" gorm:"column:is_frame;default:1"`
	IsCache    int    `json:"isCache" gorm:"column:is_cache;default:0"`
	MenuType   string `json:"menuType" gorm:"column:menu_type;size:1"`
	Visible    string `json:"visible" gorm:"column:visible;size:1;default:0"`
	Status     string `json:"status" gorm:"column:status;size:1;default:0"`
	Perms      string `json:"perms" gorm:"column:perms;size:100"`
	Icon       string `json:"icon" gorm:"column:icon;size:100;default:#"`
	BaseEntity
}

// TableName 指定表名
func (SysMenu) TableName() string {
	return "sys_menu"
}

// IsDir 是否目录类型
func (m *SysMenu) IsDir() bool {
	return m.MenuType == MenuTypeDir
}

// IsMenu 是否菜单类型
func (m *SysMenu) IsMenu() bool {
	return m.MenuType == MenuTypeMenu
}

// IsButton 是否按钮类型
func (m *SysMenu) IsButton() bool {
	return m.MenuType == MenuTypeButton
}
