/**
 * 测试:路由注册
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 登出路由免认证与认证路由拦截的回归测试
 * @func: TestRouter
 */
package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rbacadmin/internal/config"
	authhandler "rbacadmin/internal/handler/auth"
	"rbacadmin/internal/model"
	pkgauth "rbacadmin/internal/pkg/auth"
	authservice "rbacadmin/internal/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLoginLogWriter 捕获登录日志写入
type mockLoginLogWriter struct {
	entries []*model.SysLogininfor
}

func (m *mockLoginLogWriter) Create(ctx context.Context, log *model.SysLogininfor) error {
	m.entries = append(m.entries, log)
	return nil
}

// newTestRouter 构造只挂认证处理器的路由,会话服务不依赖Redis与IP定位
func newTestRouter(logWriter *mockLoginLogWriter) *httptest.Server {
	jwtManager := pkgauth.NewJWTManager("router-test-secret", "rbacadmin-test", time.Hour)
	hasher := pkgauth.NewPasswordManager(4)
	sessionService := authservice.NewSessionService(nil, logWriter, jwtManager, hasher, nil, nil)
	authHandler := authhandler.NewAuthHandler(sessionService, nil)

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.App.Name = "rbacadmin"
	cfg.App.Version = "test"

	engine := NewRouter(cfg, &Handlers{Auth: authHandler}, sessionService, nil, nil)
	return httptest.NewServer(engine)
}

func TestLogoutWithExpiredToken(t *testing.T) {
	logWriter := &mockLoginLogWriter{}
	server := newTestRouter(logWriter)
	defer server.Close()

	// 过期令牌同样要走到登出处理器并留下登出日志
	expiredManager := pkgauth.NewJWTManager("router-test-secret", "rbacadmin-test", -time.Minute)
	expiredToken, err := expiredManager.GenerateAccessToken(2, "alice", "爱丽丝", "0", "000000")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/auth/logout", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+expiredToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 200, body.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "退出成功", body.Message)

	require.Len(t, logWriter.entries, 1)
	assert.Equal(t, "退出成功", logWriter.entries[0].Msg)
	assert.Equal(t, model.LoginStatusSuccess, logWriter.entries[0].Status)
}

func TestLogoutWithoutToken(t *testing.T) {
	logWriter := &mockLoginLogWriter{}
	server := newTestRouter(logWriter)
	defer server.Close()

	resp, err := http.Post(server.URL+"/auth/logout", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	// 无令牌也视为登出成功,日志用户名留空
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, logWriter.entries, 1)
	assert.Equal(t, "", logWriter.entries[0].UserName)
	assert.Equal(t, "退出成功", logWriter.entries[0].Msg)
}

func TestGetInfoRejectsExpiredToken(t *testing.T) {
	logWriter := &mockLoginLogWriter{}
	server := newTestRouter(logWriter)
	defer server.Close()

	expiredManager := pkgauth.NewJWTManager("router-test-secret", "rbacadmin-test", -time.Minute)
	expiredToken, err := expiredManager.GenerateAccessToken(2, "alice", "爱丽丝", "0", "000000")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/auth/getInfo", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+expiredToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body model.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 401, body.Code)
	assert.False(t, body.Success)
}
