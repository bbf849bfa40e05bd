/**
 * 入口:后台管理服务
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 加载配置、初始化依赖、装配路由并启动HTTP服务，支持优雅关闭与配置热更新
 * @func: main
 */
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rbacadmin/internal/app"
	"rbacadmin/internal/config"
	authhandler "rbacadmin/internal/handler/auth"
	monitorhandler "rbacadmin/internal/handler/monitor"
	systemhandler "rbacadmin/internal/handler/system"
	"rbacadmin/internal/pkg/auth"
	"rbacadmin/internal/pkg/database"
	"rbacadmin/internal/pkg/iplocation"
	"rbacadmin/internal/pkg/logger"
	"rbacadmin/internal/repository/mysql"
	authservice "rbacadmin/internal/service/auth"
	monitorservice "rbacadmin/internal/service/monitor"
	systemservice "rbacadmin/internal/service/system"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		configPath = flag.String("config", "", "配置文件目录，默认 configs")
		env        = flag.String("env", "", "运行环境: development, test, production")
	)
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig(*configPath, *env)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// 初始化日志
	loggerManager, err := logger.InitLogger(&cfg.Log)
	if err != nil {
		logrus.Fatalf("failed to init logger: %v", err)
	}
	logger.LogSystemEvent("server", "starting", "服务启动中", logrus.InfoLevel, map[string]interface{}{
		"name":    cfg.App.Name,
		"version": cfg.App.Version,
		"addr":    cfg.GetServerAddr(),
	})

	// 初始化MySQL
	db, err := database.NewMySQLConnection(&cfg.Database.MySQL)
	if err != nil {
		logger.Fatalf("failed to connect mysql: %v", err)
	}
	defer func() {
		if err := database.CloseMySQLConnection(db); err != nil {
			logger.Errorf("failed to close mysql connection: %v", err)
		}
	}()

	// 初始化Redis
	redisClient, err := database.NewRedisClient(&cfg.Database.Redis)
	if err != nil {
		logger.Fatalf("failed to connect redis: %v", err)
	}
	defer func() {
		if err := database.CloseRedisClient(redisClient); err != nil {
			logger.Errorf("failed to close redis connection: %v", err)
		}
	}()

	// 基础组件
	jwtManager := auth.NewJWTManager(cfg.Security.JWT.Secret, cfg.Security.JWT.Issuer, cfg.Security.JWT.AccessTokenExpire)
	passwordManager := auth.NewPasswordManager(cfg.Security.Password.BcryptCost)
	ipLocator := iplocation.NewClient(&cfg.Security.IPLocation)

	// 数据访问层
	userRepo := mysql.NewUserRepository(db)
	roleRepo := mysql.NewRoleRepository(db)
	menuRepo := mysql.NewMenuRepository(db)
	deptRepo := mysql.NewDeptRepository(db)
	postRepo := mysql.NewPostRepository(db)
	dictRepo := mysql.NewDictRepository(db)
	configRepo := mysql.NewConfigRepository(db)
	noticeRepo := mysql.NewNoticeRepository(db)
	loginLogRepo := mysql.NewLoginLogRepository(db)
	operLogRepo := mysql.NewOperLogRepository(db)

	// 业务服务层
	deptService := systemservice.NewDeptService(deptRepo, userRepo)
	menuService := systemservice.NewMenuService(menuRepo, roleRepo)
	roleService := systemservice.NewRoleService(roleRepo, userRepo, menuRepo)
	userService := systemservice.NewUserService(userRepo, deptService, passwordManager)
	postService := systemservice.NewPostService(postRepo)
	dictService := systemservice.NewDictService(dictRepo)
	configService := systemservice.NewConfigService(configRepo)
	noticeService := systemservice.NewNoticeService(noticeRepo)
	loginLogService := monitorservice.NewLoginLogService(loginLogRepo)
	operLogService := monitorservice.NewOperLogService(operLogRepo)
	permissionService := authservice.NewPermissionService(userRepo, roleRepo, menuRepo)
	sessionService := authservice.NewSessionService(userRepo, loginLogRepo, jwtManager, passwordManager, redisClient, ipLocator)

	// 接口处理层
	handlers := &app.Handlers{
		Auth:     authhandler.NewAuthHandler(sessionService, permissionService),
		User:     systemhandler.NewUserHandler(userService, roleService, postService),
		Role:     systemhandler.NewRoleHandler(roleService),
		Menu:     systemhandler.NewMenuHandler(menuService, permissionService),
		Dept:     systemhandler.NewDeptHandler(deptService),
		Post:     systemhandler.NewPostHandler(postService),
		Dict:     systemhandler.NewDictHandler(dictService),
		Config:   systemhandler.NewConfigHandler(configService),
		Notice:   systemhandler.NewNoticeHandler(noticeService),
		OperLog:  monitorhandler.NewOperLogHandler(operLogService),
		LoginLog: monitorhandler.NewLoginLogHandler(loginLogService),
	}

	engine := app.NewRouter(cfg, handlers, sessionService, operLogService, ipLocator)

	// 配置热更新:仅动态调整日志级别，其余变更需重启生效
	if err := config.StartConfigWatcher(*configPath, *env); err != nil {
		logger.Warnf("config watcher disabled: %v", err)
	} else {
		defer func() {
			if err := config.StopConfigWatcher(); err != nil {
				logger.Errorf("failed to stop config watcher: %v", err)
			}
		}()
		if err := config.AddConfigReloadCallback(func(old, new *config.Config) error {
			if old.Log.Level != new.Log.Level {
				if err := loggerManager.UpdateLevel(new.Log.Level); err != nil {
					return err
				}
				logger.Infof("log level updated: %s -> %s", old.Log.Level, new.Log.Level)
			}
			return nil
		}); err != nil {
			logger.Errorf("failed to register config reload callback: %v", err)
		}
	}

	server := &http.Server{
		Addr:           cfg.GetServerAddr(),
		Handler:        engine,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.LogSystemEvent("server", "started", "HTTP服务已启动", logrus.InfoLevel, map[string]interface{}{
			"addr": server.Addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("failed to start http server: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.LogSystemEvent("server", "shutting_down", "收到退出信号，开始优雅关闭", logrus.InfoLevel, map[string]interface{}{
		"signal": sig.String(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown error: %v", err)
	}
	logger.LogSystemEvent("server", "stopped", "服务已停止", logrus.InfoLevel, nil)
}
