/**
 * 配置:配置加载器
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 基于viper的配置加载，支持按环境选择配置文件与环境变量覆盖
 * @func: LoadConfig
 */
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置文件
// configPath: 配置文件目录，如果为空则使用默认路径
// env: 环境标识，支持 development, test, production
func LoadConfig(configPath, env string) (*Config, error) {
	if env == "" {
		env = getEnvFromEnvironment()
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 根据环境选择配置文件，环境专属文件不存在时回退到 config.yaml
	configFile := filepath.Join(configPath, fmt.Sprintf("config.%s.yaml", env))
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		configFile = filepath.Join(configPath, "config.yaml")
	}
	v.SetConfigFile(configFile)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 环境变量覆盖文件配置
	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	GlobalConfig = &cfg
	return &cfg, nil
}

// getEnvFromEnvironment 从环境变量获取运行环境
func getEnvFromEnvironment() string {
	env := strings.ToLower(os.Getenv("RBACADMIN_ENV"))
	switch env {
	case "development", "test", "production":
		return env
	default:
		return "development"
	}
}

// getDefaultConfigPath 获取默认配置文件目录
func getDefaultConfigPath() string {
	if path := os.Getenv("RBACADMIN_CONFIG_PATH"); path != "" {
		return path
	}
	return "configs"
}
