/**
 * 模型:统一响应结构
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 统一响应信封与分页响应结构
 * @func: Result、PageResult 及构造函数
 */
package model

// Result 统一响应信封
type Result struct {
	Code    int         `json:"code"`
	Success bool        `json:"result"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// PageResult 分页响应信封，列表接口用rows+total替代data
type PageResult struct {
	Code    int         `json:"code"`
	Success bool        `json:"result"`
	Rows    interface{} `json:"rows"`
	Total   int64       `json:"total"`
	Message string      `json:"message"`
}

// OkResult 成功响应
func OkResult(data interface{}) *Result {
	return &Result{
		Code:    200,
		Success: true,
		Data:    data,
		Message: "操作成功",
	}
}

// OkResultWithMessage 带自定义消息的成功响应
func OkResultWithMessage(data interface{}, message string) *Result {
	return &Result{
		Code:    200,
		Success: true,
		Data:    data,
		Message: message,
	}
}

// ErrResult 失败响应
func ErrResult(code int, message string) *Result {
	return &Result{
		Code:    code,
		Success: false,
		Data:    nil,
		Message: message,
	}
}

// OkPageResult 分页成功响应
func OkPageResult(rows interface{}, total int64) *PageResult {
	return &PageResult{
		Code:    200,
		Success: true,
		Rows:    rows,
		Total:   total,
		Message: "查询成功",
	}
}

// LoginResult 登录成功响应数据
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	User        *UserSummary `json:"user"`
}

// UserSummary 登录响应中的用户摘要
type UserSummary struct {
	UserID    int64  `json:"id"`
	UserName  string `json:"userName"`
	NickName  string `json:"nickName"`
	Status    string `json:"status"`
	LoginDate string `json:"loginDate"`
}

// UserInfoUser getInfo响应中的用户对象
// 角色岗位ID挂在user对象内部,roleId取首个生效角色
type UserInfoUser struct {
	*SysUser
	RoleIDs []int64 `json:"roleIds"`
	PostIDs []int64 `json:"postIds"`
	RoleID  int64   `json:"roleId"`
}

// UserInfoResult getInfo接口的聚合响应
type UserInfoResult struct {
	User        *UserInfoUser `json:"user"`
	Permissions []string      `json:"permissions"`
	Roles       []string      `json:"roles"`
}
