/**
 * 认证:JWT令牌管理器
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 基于HS256的访问令牌签发与校验，JTI用于登出黑名单
 * @func: JWTManager
 */
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims 自定义JWT声明
type JWTClaims struct {
	UserID   int64  `json:"user_id"`  // 用户ID
	Username string `json:"username"` // 用户名
	Nickname string `json:"nickname"` // 昵称
	Status   string `json:"status"`   // 账号状态,签发时刻的快照
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// JWTManager JWT令牌管理器
type JWTManager struct {
	secret            []byte
	issuer            string
	accessTokenExpire time.Duration
}

// NewJWTManager 创建JWT管理器
func NewJWTManager(secret, issuer string, accessTokenExpire time.Duration) *JWTManager {
	return &JWTManager{
		secret:            []byte(secret),
		issuer:            issuer,
		accessTokenExpire: accessTokenExpire,
	}
}

// GenerateAccessToken 生成访问令牌
func (m *JWTManager) GenerateAccessToken(userID int64, username, nickname, status, tenantID string) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID:   userID,
		Username: username,
		Nickname: nickname,
		Status:   status,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenExpire)),
			ID:        generateJTI(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateToken 校验令牌并返回声明
// 签名无效、过期、未生效都会返回错误
func (m *JWTManager) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// GetTokenRemainingTime 获取令牌剩余有效时间，用于登出时设置黑名单TTL
func (m *JWTManager) GetTokenRemainingTime(claims *JWTClaims) time.Duration {
	if claims.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// generateJTI 生成JWT唯一标识
func generateJTI() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// 随机数读取失败时退化为纳秒时间戳
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(buf)
}
