/**
 * 模型:认证上下文
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 令牌校验产出的请求级认证信息，显式传入服务层而非挂在请求对象上
 * @func: AuthContext
 */
package model

// AuthContext 认证上下文
// 由JWT中间件在校验令牌后构造，随调用链显式传递
type AuthContext struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	TenantID string `json:"tenantId"`
	TokenID  string `json:"tokenId"` // JWT的JTI，登出时写入黑名单
}
