/**
 * 模型:业务错误
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 业务规则错误类型，与认证错误、基础设施错误区分开
 * @func: BizError
 */
package model

import "fmt"

// BizError 业务规则错误
// 校验失败、重复键、存在引用等业务违规统一走此类型，处理层映射为400
type BizError struct {
	Code    int
	Message string
}

// Error 实现error接口
func (e *BizError) Error() string {
	return e.Message
}

// NewBizError 创建业务错误
func NewBizError(message string) *BizError {
	return &BizError{Code: 400, Message: message}
}

// NewBizErrorf 创建格式化业务错误
func NewBizErrorf(format string, args ...interface{}) *BizError {
	return &BizError{Code: 400, Message: fmt.Sprintf(format, args...)}
}

// AuthError 认证错误
// 凭证错误、账号停用、令牌无效等认证失败统一走此类型，处理层映射为401
type AuthError struct {
	Message string
}

// Error 实现error接口
func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError 创建认证错误
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}
