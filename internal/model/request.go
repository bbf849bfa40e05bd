/**
 * 模型:请求结构
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 各接口的请求参数结构体，binding标签做基础校验
 * @func: 各请求DTO
 */
package model

// PageQuery 分页查询基础参数
type PageQuery struct {
	PageNum  int `form:"pageNum,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

// Offset 计算分页偏移量
func (q *PageQuery) Offset() int {
	if q.PageNum < 1 {
		q.PageNum = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	return (q.PageNum - 1) * q.PageSize
}

// Limit 计算分页大小
func (q *PageQuery) Limit() int {
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	return q.PageSize
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=2,max=30"`
	Password string `json:"password" binding:"required,min=5,max=100"`
}

// UserQueryRequest 用户列表查询
type UserQueryRequest struct {
	PageQuery
	UserName    string `form:"userName"`
	NickName    string `form:"nickName"`
	Phonenumber string `form:"phonenumber"`
	Status      string `form:"status"`
	DeptID      int64  `form:"deptId"`
	BeginTime   string `form:"beginTime"`
	EndTime     string `form:"endTime"`
}

// CreateUserRequest 新增用户请求
type CreateUserRequest struct {
	DeptID      *int64  `json:"deptId"`
	UserName    string  `json:"userName" binding:"required,min=2,max=30"`
	NickName    string  `json:"nickName" binding:"required,max=30"`
	Password    string  `json:"password" binding:"required,min=5,max=100"`
	Email       string  `json:"email" binding:"omitempty,email"`
	Phonenumber string  `json:"phonenumber" binding:"omitempty,max=11"`
	Sex         string  `json:"sex"`
	Status      string  `json:"status"`
	Remark      string  `json:"remark"`
	RoleIDs     []int64 `json:"roleIds"`
	PostIDs     []int64 `json:"postIds"`
}

// UpdateUserRequest 修改用户请求
type UpdateUserRequest struct {
	UserID      int64   `json:"userId" binding:"required"`
	DeptID      *int64  `json:"deptId"`
	NickName    string  `json:"nickName" binding:"required,max=30"`
	Email       string  `json:"email" binding:"omitempty,email"`
	Phonenumber string  `json:"phonenumber" binding:"omitempty,max=11"`
	Sex         string  `json:"sex"`
	Status      string  `json:"status"`
	Remark      string  `json:"remark"`
	RoleIDs     []int64 `json:"roleIds"`
	PostIDs     []int64 `json:"postIds"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	UserID   int64  `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required,min=5,max=100"`
}

// UpdateProfileRequest 个人信息修改请求
type UpdateProfileRequest struct {
	NickName    string `json:"nickName" binding:"required,max=30"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phonenumber string `json:"phonenumber" binding:"omitempty,max=11"`
	Sex         string `json:"sex"`
}

// UpdatePasswordRequest 个人密码修改请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=5,max=100"`
}

// ChangeStatusRequest 状态切换请求
type ChangeStatusRequest struct {
	UserID int64  `json:"userId"`
	RoleID int64  `json:"roleId"`
	Status string `json:"status" binding:"required,oneof=0 1"`
}

// RoleQueryRequest 角色列表查询
type RoleQueryRequest struct {
	PageQuery
	RoleName string `form:"roleName"`
	RoleKey  string `form:"roleKey"`
	Status   string `form:"status"`
}

// CreateRoleRequest 新增角色请求
type CreateRoleRequest struct {
	RoleName          string  `json:"roleName" binding:"required,max=30"`
	RoleKey           string  `json:"roleKey" binding:"required,max=100"`
	RoleSort          int     `json:"roleSort"`
	DataScope         string  `json:"dataScope"`
	MenuCheckStrictly *bool   `json:"menuCheckStrictly"`
	DeptCheckStrictly *bool   `json:"deptCheckStrictly"`
	Status            string  `json:"status"`
	Remark            string  `json:"remark"`
	MenuIDs           []int64 `json:"menuIds"`
}

// UpdateRoleRequest 修改角色请求
type UpdateRoleRequest struct {
	RoleID            int64   `json:"roleId" binding:"required"`
	RoleName          string  `json:"roleName" binding:"required,max=30"`
	RoleKey           string  `json:"roleKey" binding:"required,max=100"`
	RoleSort          int     `json:"roleSort"`
	DataScope         string  `json:"dataScope"`
	MenuCheckStrictly *bool   `json:"menuCheckStrictly"`
	DeptCheckStrictly *bool   `json:"deptCheckStrictly"`
	Status            string  `json:"status"`
	Remark            string  `json:"remark"`
	MenuIDs           []int64 `json:"menuIds"`
}

// MenuQueryRequest 菜单列表查询
type MenuQueryRequest struct {
	MenuName string `form:"menuName"`
	Status   string `form:"status"`
}

// CreateMenuRequest 新增菜单请求
// isFrame/isCache 兼容字符串与数字两种提交方式，服务层归一化
type CreateMenuRequest struct {
	MenuName   string      `json:"menuName" binding:"required,max=50"`
	ParentID   int64       `json:"parentId"`
	OrderNum   int         `json:"orderNum"`
	Path       string      `json:"path"`
	Component  string      `json:"component"`
	QueryParam string      `json:"queryParam"`
	IsFrame    interface{} `json:"isFrame"`
	IsCache    interface{} `json:"isCache"`
	MenuType   string      `json:"menuType" binding:"required,oneof=M C F"`
	Visible    string      `json:"visible"`
	Status     string      `json:"status"`
	Perms      string      `json:"perms" binding:"max=100"`
	Icon       string      `json:"icon"`
	Remark     string      `json:"remark"`
}

// UpdateMenuRequest 修改菜单请求
type UpdateMenuRequest struct {
	MenuID int64 `json:"menuId" binding:"required"`
	CreateMenuRequest
}

// DeptQueryRequest 部门列表查询
type DeptQueryRequest struct {
	DeptName string `form:"deptName"`
	Status   string `form:"status"`
}

// CreateDeptRequest 新增部门请求
type CreateDeptRequest struct {
	ParentID     int64  `json:"parentId"`
	DeptName     string `json:"deptName" binding:"required,max=30"`
	DeptCategory string `json:"deptCategory"`
	OrderNum     int    `json:"orderNum"`
	Leader       string `json:"leader"`
	Phone        string `json:"phone" binding:"omitempty,max=11"`
	Email        string `json:"email" binding:"omitempty,email"`
	Status       string `json:"status"`
}

// UpdateDeptRequest 修改部门请求
type UpdateDeptRequest struct {
	DeptID int64 `json:"deptId" binding:"required"`
	CreateDeptRequest
}

// PostQueryRequest 岗位列表查询
type PostQueryRequest struct {
	PageQuery
	PostCode string `form:"postCode"`
	PostName string `form:"postName"`
	Status   string `form:"status"`
}

// CreatePostRequest 新增岗位请求
type CreatePostRequest struct {
	DeptID       *int64 `json:"deptId"`
	PostCode     string `json:"postCode" binding:"required,max=64"`
	PostName     string `json:"postName" binding:"required,max=50"`
	PostCategory string `json:"postCategory"`
	PostSort     int    `json:"postSort"`
	Status       string `json:"status"`
	Remark       string `json:"remark"`
}

// UpdatePostRequest 修改岗位请求
type UpdatePostRequest struct {
	PostID int64 `json:"postId" binding:"required"`
	CreatePostRequest
}

// DictTypeQueryRequest 字典类型查询
type DictTypeQueryRequest struct {
	PageQuery
	DictName string `form:"dictName"`
	DictType string `form:"dictType"`
}

// CreateDictTypeRequest 新增字典类型请求
type CreateDictTypeRequest struct {
	DictName string `json:"dictName" binding:"required,max=100"`
	DictType string `json:"dictType" binding:"required,max=100"`
	Remark   string `json:"remark"`
}

// UpdateDictTypeRequest 修改字典类型请求
type UpdateDictTypeRequest struct {
	DictID int64 `json:"dictId" binding:"required"`
	CreateDictTypeRequest
}

// DictDataQueryRequest 字典数据查询
type DictDataQueryRequest struct {
	PageQuery
	DictType  string `form:"dictType"`
	DictLabel string `form:"dictLabel"`
}

// CreateDictDataRequest 新增字典数据请求
type CreateDictDataRequest struct {
	DictSort  int    `json:"dictSort"`
	DictLabel string `json:"dictLabel" binding:"required,max=100"`
	DictValue string `json:"dictValue" binding:"required,max=100"`
	DictType  string `json:"dictType" binding:"required,max=100"`
	CssClass  string `json:"cssClass"`
	ListClass string `json:"listClass"`
	IsDefault string `json:"isDefault"`
	Remark    string `json:"remark"`
}

// UpdateDictDataRequest 修改字典数据请求
type UpdateDictDataRequest struct {
	DictCode int64 `json:"dictCode" binding:"required"`
	CreateDictDataRequest
}

// ConfigQueryRequest 参数配置查询
type ConfigQueryRequest struct {
	PageQuery
	ConfigName string `form:"configName"`
	ConfigKey  string `form:"configKey"`
	ConfigType string `form:"configType"`
}

// CreateConfigRequest 新增参数配置请求
type CreateConfigRequest struct {
	ConfigName  string `json:"configName" binding:"required,max=100"`
	ConfigKey   string `json:"configKey" binding:"required,max=100"`
	ConfigValue string `json:"configValue" binding:"required,max=500"`
	ConfigType  string `json:"configType"`
	Remark      string `json:"remark"`
}

// UpdateConfigRequest 修改参数配置请求
type UpdateConfigRequest struct {
	ConfigID int64 `json:"configId" binding:"required"`
	CreateConfigRequest
}

// NoticeQueryRequest 通知公告查询
type NoticeQueryRequest struct {
	PageQuery
	NoticeTitle string `form:"noticeTitle"`
	NoticeType  string `form:"noticeType"`
}

// CreateNoticeRequest 新增通知公告请求
type CreateNoticeRequest struct {
	NoticeTitle   string `json:"noticeTitle" binding:"required,max=50"`
	NoticeType    string `json:"noticeType" binding:"required"`
	NoticeContent string `json:"noticeContent"`
	Status        string `json:"status"`
	Remark        string `json:"remark"`
}

// UpdateNoticeRequest 修改通知公告请求
type UpdateNoticeRequest struct {
	NoticeID int64 `json:"noticeId" binding:"required"`
	CreateNoticeRequest
}

// LoginLogQueryRequest 登录日志查询
type LoginLogQueryRequest struct {
	PageQuery
	UserName  string `form:"userName"`
	IPAddr    string `form:"ipaddr"`
	Status    string `form:"status"`
	BeginTime string `form:"beginTime"`
	EndTime   string `form:"endTime"`
}

// OperLogQueryRequest 操作日志查询
type OperLogQueryRequest struct {
	PageQuery
	Title         string `form:"title"`
	OperName      string `form:"operName"`
	BusinessType  int    `form:"businessType"`
	Status        *int   `form:"status"`
	BeginTime     string `form:"beginTime"`
	EndTime       string `form:"endTime"`
	RequestMethod string `form:"requestMethod"`
}
