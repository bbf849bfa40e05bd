/**
 * 数据库:Redis连接管理
 * @author: tangyun
 * @date: 2025.11.03
 * @description: Redis客户端初始化，用于令牌黑名单与会话缓存
 * @func: NewRedisClient
 */
package database

import (
	"context"
	"fmt"
	"time"

	"rbacadmin/internal/config"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient 创建Redis客户端并验证连通性
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddr(),
		Password:     cfg.Password,
		DB:           cfg.Database,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// CloseRedisClient 关闭Redis客户端
func CloseRedisClient(client *redis.Client) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
