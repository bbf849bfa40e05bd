/**
 * 配置:环境变量覆盖
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 使用 RBACADMIN_ 前缀的环境变量覆盖文件配置，便于容器化部署
 * @func: applyEnvOverrides
 */
package config

import (
	"os"
	"strconv"
)

// applyEnvOverrides 将环境变量覆盖到配置上
// 只覆盖部署时最常需要注入的字段，完整配置仍以文件为准
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RBACADMIN_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("RBACADMIN_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RBACADMIN_SERVER_MODE"); v != "" {
		cfg.Server.Mode = v
	}

	if v := os.Getenv("RBACADMIN_MYSQL_HOST"); v != "" {
		cfg.Database.MySQL.Host = v
	}
	if v := os.Getenv("RBACADMIN_MYSQL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.MySQL.Port = port
		}
	}
	if v := os.Getenv("RBACADMIN_MYSQL_USERNAME"); v != "" {
		cfg.Database.MySQL.Username = v
	}
	if v := os.Getenv("RBACADMIN_MYSQL_PASSWORD"); v != "" {
		cfg.Database.MySQL.Password = v
	}
	if v := os.Getenv("RBACADMIN_MYSQL_DATABASE"); v != "" {
		cfg.Database.MySQL.Database = v
	}

	if v := os.Getenv("RBACADMIN_REDIS_HOST"); v != "" {
		cfg.Database.Redis.Host = v
	}
	if v := os.Getenv("RBACADMIN_REDIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Redis.Port = port
		}
	}
	if v := os.Getenv("RBACADMIN_REDIS_PASSWORD"); v != "" {
		cfg.Database.Redis.Password = v
	}

	if v := os.Getenv("RBACADMIN_JWT_SECRET"); v != "" {
		cfg.Security.JWT.Secret = v
	}

	if v := os.Getenv("RBACADMIN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
