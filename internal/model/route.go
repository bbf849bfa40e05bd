/**
 * 模型:路由与树形选项
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 前端路由描述结构与树形选择器节点结构
 * @func: RouterVo、MetaVo、TreeOption
 */
package model

// 前端路由组件的固定标识
const (
	ComponentLayout     = "Layout"
	ComponentParentView = "ParentView"
	// NoRedirect 根级目录的重定向占位值
	NoRedirect = "noRedirect"
)

// MetaVo 路由元信息
type MetaVo struct {
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	NoCache bool   `json:"noCache"`
	Link    string `json:"link,omitempty"`
}

// RouterVo 前端路由描述
type RouterVo struct {
	Name       string            `json:"name"`
	Path       string            `json:"path"`
	Hidden     bool              `json:"hidden"`
	Redirect   string            `json:"redirect,omitempty"`
	Component  string            `json:"component"`
	Query      map[string]string `json:"query,omitempty"`
	AlwaysShow bool              `json:"alwaysShow,omitempty"`
	Meta       *MetaVo           `json:"meta,omitempty"`
	Children   []*RouterVo       `json:"children,omitempty"`
}

// TreeOption 树形选择器节点
type TreeOption struct {
	ID       int64         `json:"id"`
	Label    string        `json:"label"`
	ParentID int64         `json:"parentId"`
	Weight   int           `json:"weight"`
	Disabled bool          `json:"disabled,omitempty"`
	Children []*TreeOption `json:"children,omitempty"`
}

// RoleMenuTree 角色菜单树选择结果
type RoleMenuTree struct {
	Menus       []*TreeOption `json:"menus"`
	CheckedKeys []int64       `json:"checkedKeys"`
}
