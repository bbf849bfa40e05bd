/**
 * 测试:JWT管理器
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 令牌签发与校验的单元测试
 * @func: TestJWTManager
 */
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager("test-secret", "rbacadmin-test", time.Hour)

	token, err := manager.GenerateAccessToken(42, "alice", "爱丽丝", "0", "000000")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "爱丽丝", claims.Nickname)
	assert.Equal(t, "0", claims.Status)
	assert.Equal(t, "000000", claims.TenantID)
	assert.Equal(t, "rbacadmin-test", claims.Issuer)
	// 每个令牌都有唯一JTI,登出黑名单依赖它
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-a", "rbacadmin-test", time.Hour)
	other := NewJWTManager("secret-b", "rbacadmin-test", time.Hour)

	token, err := manager.GenerateAccessToken(1, "admin", "管理员", "0", "000000")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", "rbacadmin-test", -time.Minute)

	token, err := manager.GenerateAccessToken(1, "admin", "管理员", "0", "000000")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", "rbacadmin-test", time.Hour)

	_, err := manager.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestGetTokenRemainingTime(t *testing.T) {
	manager := NewJWTManager("test-secret", "rbacadmin-test", time.Hour)

	token, err := manager.GenerateAccessToken(1, "admin", "管理员", "0", "000000")
	require.NoError(t, err)
	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)

	remaining := manager.GetTokenRemainingTime(claims)
	assert.Greater(t, remaining, 50*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestTokenJTIUnique(t *testing.T) {
	manager := NewJWTManager("test-secret", "rbacadmin-test", time.Hour)

	tokenA, err := manager.GenerateAccessToken(1, "admin", "管理员", "0", "000000")
	require.NoError(t, err)
	tokenB, err := manager.GenerateAccessToken(1, "admin", "管理员", "0", "000000")
	require.NoError(t, err)

	claimsA, err := manager.ValidateToken(tokenA)
	require.NoError(t, err)
	claimsB, err := manager.ValidateToken(tokenB)
	require.NoError(t, err)
	assert.NotEqual(t, claimsA.ID, claimsB.ID)
}
