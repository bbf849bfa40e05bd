/**
 * 应用:路由注册
 * @author: tangyun
 * @date: 2025.11.03
 * @description: gin引擎初始化、中间件装配与全部业务路由注册
 * @func: NewRouter
 */
package app

import (
	"net/http"

	"rbacadmin/internal/app/middleware"
	"rbacadmin/internal/config"
	authhandler "rbacadmin/internal/handler/auth"
	monitorhandler "rbacadmin/internal/handler/monitor"
	systemhandler "rbacadmin/internal/handler/system"
	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/iplocation"
	authservice "rbacadmin/internal/service/auth"
	monitorservice "rbacadmin/internal/service/monitor"

	"github.com/gin-gonic/gin"
)

// Handlers 路由注册所需的全部处理器
type Handlers struct {
	Auth     *authhandler.AuthHandler
	User     *systemhandler.UserHandler
	Role     *systemhandler.RoleHandler
	Menu     *systemhandler.MenuHandler
	Dept     *systemhandler.DeptHandler
	Post     *systemhandler.PostHandler
	Dict     *systemhandler.DictHandler
	Config   *systemhandler.ConfigHandler
	Notice   *systemhandler.NoticeHandler
	OperLog  *monitorhandler.OperLogHandler
	LoginLog *monitorhandler.LoginLogHandler
}

// NewRouter 创建并装配gin引擎
// 中间件顺序:恢复 -> 请求ID -> 跨域 -> 访问日志；登录登出接口外的业务路由全部要求JWT认证
func NewRouter(
	cfg *config.Config,
	handlers *Handlers,
	sessionService *authservice.SessionService,
	operLogService *monitorservice.OperLogService,
	ipLocator *iplocation.Client,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	if cfg.Security.CORS.Enabled {
		engine.Use(middleware.CORS(&cfg.Security.CORS))
	}
	engine.Use(middleware.AccessLog())

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, model.ErrResult(http.StatusNotFound, "请求的资源不存在"))
	})

	// 健康检查
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.OkResult(gin.H{
			"status":  "ok",
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
		}))
	})

	// 公开路由
	// 登出不做令牌校验:过期令牌也要能退出并留下登出日志,黑名单写入由会话服务自行处理
	engine.POST("/auth/login", handlers.Auth.Login)
	engine.POST("/auth/logout", handlers.Auth.Logout)

	// 认证路由
	authorized := engine.Group("")
	authorized.Use(middleware.JWTAuth(sessionService))
	authorized.Use(middleware.OperLogRecorder(operLogService, ipLocator))

	authorized.GET("/auth/getInfo", handlers.Auth.GetInfo)

	registerSystemRoutes(authorized, handlers)
	registerMonitorRoutes(authorized, handlers)

	return engine
}

// registerSystemRoutes 注册系统管理路由
func registerSystemRoutes(rg *gin.RouterGroup, h *Handlers) {
	user := rg.Group("/system/user")
	{
		user.GET("/list", h.User.List)
		user.GET("/profile", h.User.Profile)
		user.PUT("/profile", h.User.UpdateProfile)
		user.PUT("/profile/updatePwd", h.User.UpdatePassword)
		user.PUT("/resetPwd", h.User.ResetPassword)
		user.PUT("/changeStatus", h.User.ChangeStatus)
		user.POST("/export", h.User.Export)
		user.POST("/importTemplate", h.User.ImportTemplate)
		user.POST("/importData", h.User.ImportData)
		user.GET("/:userId", h.User.Get)
		user.POST("", h.User.Create)
		user.PUT("", h.User.Update)
		user.DELETE("/:userIds", h.User.Delete)
	}

	role := rg.Group("/system/role")
	{
		role.GET("/list", h.Role.List)
		role.PUT("/changeStatus", h.Role.ChangeStatus)
		role.GET("/:roleId", h.Role.Get)
		role.POST("", h.Role.Create)
		role.PUT("", h.Role.Update)
		role.DELETE("/:roleIds", h.Role.Delete)
	}

	menu := rg.Group("/system/menu")
	{
		menu.GET("/list", h.Menu.List)
		menu.GET("/treeselect", h.Menu.Treeselect)
		menu.GET("/roleMenuTreeselect/:roleId", h.Menu.RoleMenuTreeselect)
		menu.GET("/getRouters", h.Menu.GetRouters)
		menu.GET("/:menuId", h.Menu.Get)
		menu.POST("", h.Menu.Create)
		menu.PUT("", h.Menu.Update)
		menu.DELETE("/cascade/:menuIds", h.Menu.CascadeDelete)
		menu.DELETE("/:menuId", h.Menu.Delete)
	}

	dept := rg.Group("/system/dept")
	{
		dept.GET("/list", h.Dept.List)
		dept.GET("/list/exclude/:deptId", h.Dept.ListExcludeChild)
		dept.GET("/treeselect", h.Dept.Treeselect)
		dept.GET("/:deptId", h.Dept.Get)
		dept.POST("", h.Dept.Create)
		dept.PUT("", h.Dept.Update)
		dept.DELETE("/:deptIds", h.Dept.Delete)
	}

	post := rg.Group("/system/post")
	{
		post.GET("/list", h.Post.List)
		post.GET("/optionselect", h.Post.Optionselect)
		post.GET("/:postId", h.Post.Get)
		post.POST("", h.Post.Create)
		post.PUT("", h.Post.Update)
		post.DELETE("/:postIds", h.Post.Delete)
	}

	dictType := rg.Group("/system/dict/type")
	{
		dictType.GET("/list", h.Dict.ListTypes)
		dictType.GET("/optionselect", h.Dict.TypeOptionselect)
		dictType.GET("/:dictId", h.Dict.GetType)
		dictType.POST("", h.Dict.CreateType)
		dictType.PUT("", h.Dict.UpdateType)
		dictType.DELETE("/:dictIds", h.Dict.DeleteTypes)
	}

	dictData := rg.Group("/system/dict/data")
	{
		dictData.GET("/list", h.Dict.ListData)
		dictData.GET("/type/:dictType", h.Dict.ListDataByType)
		dictData.GET("/:dictCode", h.Dict.GetData)
		dictData.POST("", h.Dict.CreateData)
		dictData.PUT("", h.Dict.UpdateData)
		dictData.DELETE("/:dictCodes", h.Dict.DeleteData)
	}

	sysConfig := rg.Group("/system/config")
	{
		sysConfig.GET("/list", h.Config.List)
		sysConfig.GET("/configKey/:configKey", h.Config.GetByKey)
		sysConfig.GET("/:configId", h.Config.Get)
		sysConfig.POST("", h.Config.Create)
		sysConfig.PUT("", h.Config.Update)
		sysConfig.DELETE("/:configIds", h.Config.Delete)
	}

	notice := rg.Group("/system/notice")
	{
		notice.GET("/list", h.Notice.List)
		notice.GET("/:noticeId", h.Notice.Get)
		notice.POST("", h.Notice.Create)
		notice.PUT("", h.Notice.Update)
		notice.DELETE("/:noticeIds", h.Notice.Delete)
	}
}

// registerMonitorRoutes 注册系统监控路由
func registerMonitorRoutes(rg *gin.RouterGroup, h *Handlers) {
	operLog := rg.Group("/monitor/operlog")
	{
		operLog.GET("/list", h.OperLog.List)
		operLog.DELETE("/clean", h.OperLog.Clean)
		operLog.DELETE("/:operIds", h.OperLog.Delete)
	}

	loginLog := rg.Group("/monitor/logininfor")
	{
		loginLog.GET("/list", h.LoginLog.List)
		loginLog.DELETE("/clean", h.LoginLog.Clean)
		loginLog.DELETE("/:infoIds", h.LoginLog.Delete)
	}
}
