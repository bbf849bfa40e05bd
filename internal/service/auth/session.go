/**
 * 服务:会话管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 登录凭证校验、令牌签发、登出黑名单与登录审计
 *   会话状态只有匿名和已认证两态,令牌过期即强制重新登录,无刷新流程
 * @func: SessionService
 */
package auth

import (
	"context"
	"fmt"
	"time"

	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/auth"
	"rbacadmin/internal/pkg/iplocation"
	"rbacadmin/internal/pkg/logger"
	"rbacadmin/internal/pkg/utils"

	"github.com/go-redis/redis/v8"
)

// tokenBlacklistPrefix 登出令牌黑名单的Redis键前缀
const tokenBlacklistPrefix = "rbacadmin:token:blacklist:"

// SessionUserRepo 会话服务需要的用户数据访问接口
type SessionUserRepo interface {
	GetByUsername(ctx context.Context, username string) (*model.SysUser, error)
	UpdateLoginInfo(ctx context.Context, userID int64, loginIP string, loginDate time.Time) error
}

// LoginLogWriter 登录日志写入接口
type LoginLogWriter interface {
	Create(ctx context.Context, log *model.SysLogininfor) error
}

// LoginContext 登录请求的客户端环境信息
type LoginContext struct {
	ClientIP  string
	UserAgent string
}

// SessionService 会话服务
type SessionService struct {
	userRepo   SessionUserRepo
	loginLogs  LoginLogWriter
	jwtManager *auth.JWTManager
	hasher     *auth.PasswordManager
	redis      *redis.Client
	ipLocator  *iplocation.Client
}

// NewSessionService 创建会话服务实例
func NewSessionService(
	userRepo SessionUserRepo,
	loginLogs LoginLogWriter,
	jwtManager *auth.JWTManager,
	hasher *auth.PasswordManager,
	redisClient *redis.Client,
	ipLocator *iplocation.Client,
) *SessionService {
	return &SessionService{
		userRepo:   userRepo,
		loginLogs:  loginLogs,
		jwtManager: jwtManager,
		hasher:     hasher,
		redis:      redisClient,
		ipLocator:  ipLocator,
	}
}

// Login 校验凭证并签发访问令牌
// 失败路径（用户不存在、账号停用、密码错误）都会留下失败登录日志
func (s *SessionService) Login(ctx context.Context, req *model.LoginRequest, loginCtx *LoginContext) (*model.LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.recordLoginLog(ctx, req.Username, loginCtx, model.LoginStatusFailed, "用户不存在")
		return nil, model.NewAuthError("用户名或密码错误")
	}
	if !user.IsActive() {
		s.recordLoginLog(ctx, req.Username, loginCtx, model.LoginStatusFailed, "账号已停用")
		return nil, model.NewAuthError("账号已停用,请联系管理员")
	}
	if !s.hasher.VerifyPassword(user.Password, req.Password) {
		s.recordLoginLog(ctx, req.Username, loginCtx, model.LoginStatusFailed, "密码错误")
		return nil, model.NewAuthError("用户名或密码错误")
	}

	now := time.Now()
	if err := s.userRepo.UpdateLoginInfo(ctx, user.UserID, loginCtx.ClientIP, now); err != nil {
		// 最近登录信息更新失败不阻断登录
		logger.Warnf("failed to update login info for user %s: %v", user.UserName, err)
	}
	s.recordLoginLog(ctx, req.Username, loginCtx, model.LoginStatusSuccess, "登录成功")

	token, err := s.jwtManager.GenerateAccessToken(user.UserID, user.UserName, user.NickName, user.Status, user.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &model.LoginResult{
		AccessToken: token,
		User: &model.UserSummary{
			UserID:    user.UserID,
			UserName:  user.UserName,
			NickName:  user.NickName,
			Status:    user.Status,
			LoginDate: now.Format("2006-01-02 15:04:05"),
		},
	}, nil
}

// Logout 登出
// 对已过期令牌同样生效：能解析出JTI就写黑名单，登出日志总是记录
func (s *SessionService) Logout(ctx context.Context, tokenString string, loginCtx *LoginContext) error {
	username := ""
	if claims, err := s.jwtManager.ValidateToken(tokenString); err == nil {
		username = claims.Username
		if err := s.blacklistToken(ctx, claims); err != nil {
			logger.Warnf("failed to blacklist token for user %s: %v", username, err)
		}
	}
	s.recordLoginLog(ctx, username, loginCtx, model.LoginStatusSuccess, "退出成功")
	return nil
}

// blacklistToken 将令牌JTI写入黑名单，TTL取令牌剩余有效期
func (s *SessionService) blacklistToken(ctx context.Context, claims *auth.JWTClaims) error {
	if s.redis == nil || claims.ID == "" {
		return nil
	}
	remaining := s.jwtManager.GetTokenRemainingTime(claims)
	if remaining <= 0 {
		return nil
	}
	return s.redis.Set(ctx, tokenBlacklistPrefix+claims.ID, "1", remaining).Err()
}

// ValidateToken 校验令牌并检查黑名单，返回认证上下文
func (s *SessionService) ValidateToken(ctx context.Context, tokenString string) (*model.AuthContext, error) {
	claims, err := s.jwtManager.ValidateToken(tokenString)
	if err != nil {
		return nil, model.NewAuthError("Token无效或已过期，请重新登录")
	}

	if s.redis != nil && claims.ID != "" {
		exists, err := s.redis.Exists(ctx, tokenBlacklistPrefix+claims.ID).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check token blacklist: %w", err)
		}
		if exists > 0 {
			return nil, model.NewAuthError("Token无效或已过期，请重新登录")
		}
	}

	return &model.AuthContext{
		UserID:   claims.UserID,
		Username: claims.Username,
		Nickname: claims.Nickname,
		TenantID: claims.TenantID,
		TokenID:  claims.ID,
	}, nil
}

// recordLoginLog 写入登录审计日志
// 审计写失败只记错误日志，绝不影响业务结果
func (s *SessionService) recordLoginLog(ctx context.Context, username string, loginCtx *LoginContext, status, msg string) {
	if s.loginLogs == nil {
		return
	}

	uaInfo := utils.ParseUserAgent(loginCtx.UserAgent)
	location := iplocation.LocationUnknown
	if s.ipLocator != nil {
		location = s.ipLocator.Lookup(ctx, loginCtx.ClientIP)
	}

	now := time.Now()
	entry := &model.SysLogininfor{
		TenantID:      model.DefaultTenantID,
		UserName:      username,
		IPAddr:        loginCtx.ClientIP,
		LoginLocation: location,
		Browser:       uaInfo.Browser,
		OS:            uaInfo.OS,
		Status:        status,
		Msg:           msg,
		LoginTime:     &now,
	}
	if err := s.loginLogs.Create(ctx, entry); err != nil {
		logger.LogError(err, "", 0, loginCtx.ClientIP, "/auth/login", "POST", map[string]interface{}{
			"operation": "record_login_log",
			"username":  username,
		})
	}
}
