/**
 * 测试:密码管理器
 * @author: tangyun
 * @date: 2025.11.03
 * @description: bcrypt密码哈希与校验的单元测试
 * @func: TestPasswordManager
 */
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	manager := NewPasswordManager(4)

	hashed, err := manager.HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hashed)

	assert.True(t, manager.VerifyPassword(hashed, "admin123"))
	assert.False(t, manager.VerifyPassword(hashed, "wrong"))
}

func TestHashPasswordEmpty(t *testing.T) {
	manager := NewPasswordManager(4)

	_, err := manager.HashPassword("")
	assert.Error(t, err)
}

func TestHashPasswordDifferentSalts(t *testing.T) {
	manager := NewPasswordManager(4)

	hashA, err := manager.HashPassword("same-password")
	require.NoError(t, err)
	hashB, err := manager.HashPassword("same-password")
	require.NoError(t, err)
	// 盐随机,同一明文两次哈希不相同
	assert.NotEqual(t, hashA, hashB)
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	manager := NewPasswordManager(4)
	assert.False(t, manager.VerifyPassword("not-a-bcrypt-hash", "anything"))
}
