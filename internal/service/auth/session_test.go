/**
 * 测试:会话管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 登录凭证校验、令牌签发与登录审计的单元测试
 * @func: TestSessionService
 */
package auth

import (
	"context"
	"testing"
	"time"

	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSessionUserRepo 手写会话用户mock
type mockSessionUserRepo struct {
	users          map[string]*model.SysUser
	loginInfoCalls int
}

func (m *mockSessionUserRepo) GetByUsername(ctx context.Context, username string) (*model.SysUser, error) {
	return m.users[username], nil
}

func (m *mockSessionUserRepo) UpdateLoginInfo(ctx context.Context, userID int64, loginIP string, loginDate time.Time) error {
	m.loginInfoCalls++
	return nil
}

// mockLoginLogWriter 登录日志捕获mock
type mockLoginLogWriter struct {
	entries []*model.SysLogininfor
}

func (m *mockLoginLogWriter) Create(ctx context.Context, log *model.SysLogininfor) error {
	m.entries = append(m.entries, log)
	return nil
}

func newTestSessionService(t *testing.T, userRepo *mockSessionUserRepo, logs *mockLoginLogWriter) *SessionService {
	t.Helper()
	jwtManager := auth.NewJWTManager("test-secret", "rbacadmin-test", time.Hour)
	hasher := auth.NewPasswordManager(4)
	return NewSessionService(userRepo, logs, jwtManager, hasher, nil, nil)
}

func testLoginCtx() *LoginContext {
	return &LoginContext{
		ClientIP:  "192.168.1.10",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0",
	}
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := auth.NewPasswordManager(4).HashPassword(password)
	require.NoError(t, err)
	return hashed
}

func TestLoginSuccess(t *testing.T) {
	userRepo := &mockSessionUserRepo{
		users: map[string]*model.SysUser{
			"admin": {
				UserID:   1,
				UserName: "admin",
				NickName: "管理员",
				Password: hashedPassword(t, "admin123"),
				Status:   model.StatusNormal,
				DelFlag:  model.DelFlagNormal,
				TenantID: model.DefaultTenantID,
			},
		},
	}
	logs := &mockLoginLogWriter{}
	svc := newTestSessionService(t, userRepo, logs)

	result, err := svc.Login(context.Background(), &model.LoginRequest{Username: "admin", Password: "admin123"}, testLoginCtx())
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "admin", result.User.UserName)
	assert.Equal(t, 1, userRepo.loginInfoCalls)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, model.LoginStatusSuccess, logs.entries[0].Status)
	assert.Equal(t, "登录成功", logs.entries[0].Msg)
	assert.Equal(t, "192.168.1.10", logs.entries[0].IPAddr)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := &mockSessionUserRepo{
		users: map[string]*model.SysUser{
			"admin": {
				UserID:   1,
				UserName: "admin",
				Password: hashedPassword(t, "admin123"),
				Status:   model.StatusNormal,
				DelFlag:  model.DelFlagNormal,
			},
		},
	}
	logs := &mockLoginLogWriter{}
	svc := newTestSessionService(t, userRepo, logs)

	_, err := svc.Login(context.Background(), &model.LoginRequest{Username: "admin", Password: "wrong"}, testLoginCtx())
	require.Error(t, err)
	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
	// 不向调用方泄露密码错误还是用户不存在
	assert.Equal(t, "用户名或密码错误", authErr.Message)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, model.LoginStatusFailed, logs.entries[0].Status)
	assert.Equal(t, "密码错误", logs.entries[0].Msg)
	assert.Zero(t, userRepo.loginInfoCalls)
}

func TestLoginUnknownUser(t *testing.T) {
	logs := &mockLoginLogWriter{}
	svc := newTestSessionService(t, &mockSessionUserRepo{users: map[string]*model.SysUser{}}, logs)

	_, err := svc.Login(context.Background(), &model.LoginRequest{Username: "ghost", Password: "x"}, testLoginCtx())
	require.Error(t, err)
	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "用户名或密码错误", authErr.Message)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "用户不存在", logs.entries[0].Msg)
}

func TestLoginDisabledAccount(t *testing.T) {
	userRepo := &mockSessionUserRepo{
		users: map[string]*model.SysUser{
			"frozen": {
				UserID:   2,
				UserName: "frozen",
				Password: hashedPassword(t, "pass"),
				Status:   model.StatusDisabled,
				DelFlag:  model.DelFlagNormal,
			},
		},
	}
	logs := &mockLoginLogWriter{}
	svc := newTestSessionService(t, userRepo, logs)

	_, err := svc.Login(context.Background(), &model.LoginRequest{Username: "frozen", Password: "pass"}, testLoginCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "账号已停用")

	require.Len(t, logs.entries, 1)
	assert.Equal(t, model.LoginStatusFailed, logs.entries[0].Status)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	userRepo := &mockSessionUserRepo{
		users: map[string]*model.SysUser{
			"admin": {
				UserID:   1,
				UserName: "admin",
				NickName: "管理员",
				Password: hashedPassword(t, "admin123"),
				Status:   model.StatusNormal,
				DelFlag:  model.DelFlagNormal,
				TenantID: model.DefaultTenantID,
			},
		},
	}
	svc := newTestSessionService(t, userRepo, &mockLoginLogWriter{})

	result, err := svc.Login(context.Background(), &model.LoginRequest{Username: "admin", Password: "admin123"}, testLoginCtx())
	require.NoError(t, err)

	authCtx, err := svc.ValidateToken(context.Background(), result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), authCtx.UserID)
	assert.Equal(t, "admin", authCtx.Username)
	assert.Equal(t, model.DefaultTenantID, authCtx.TenantID)
	assert.NotEmpty(t, authCtx.TokenID)
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := newTestSessionService(t, &mockSessionUserRepo{}, &mockLoginLogWriter{})

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)
	var authErr *model.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	logs := &mockLoginLogWriter{}
	svc := newTestSessionService(t, &mockSessionUserRepo{}, logs)

	// 无效令牌也返回成功并留痕
	err := svc.Logout(context.Background(), "expired-or-garbage", testLoginCtx())
	require.NoError(t, err)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, "退出成功", logs.entries[0].Msg)
}
