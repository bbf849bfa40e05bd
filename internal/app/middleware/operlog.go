/**
 * 中间件:操作日志拦截
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 自动记录写操作的审计日志，记录失败不影响业务响应
 * @func: OperLogRecorder
 */
package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"rbacadmin/internal/model"
	"rbacadmin/internal/pkg/iplocation"
	"rbacadmin/internal/service/monitor"

	"github.com/gin-gonic/gin"
)

// maxOperParamSize 操作参数记录的最大字节数，超长截断
const maxOperParamSize = 2000

// businessTypeByMethod HTTP方法到业务类型的映射
var businessTypeByMethod = map[string]int{
	http.MethodPost:   1, // 新增
	http.MethodPut:    2, // 修改
	http.MethodDelete: 3, // 删除
}

// OperLogRecorder 操作日志拦截中间件
// 只记录写操作（POST/PUT/DELETE），登录接口由登录日志单独覆盖
func OperLogRecorder(operLogService *monitor.OperLogService, ipLocator *iplocation.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessType, ok := businessTypeByMethod[c.Request.Method]
		if !ok {
			c.Next()
			return
		}

		// 请求体读出后回填，供后续绑定使用
		var bodyCopy []byte
		if c.Request.Body != nil {
			bodyCopy, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxOperParamSize))
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(bodyCopy), c.Request.Body))
		}

		startTime := time.Now()
		c.Next()

		operName := ""
		if authCtx := GetAuthContext(c); authCtx != nil {
			operName = authCtx.Username
		}

		status := model.OperStatusSuccess
		errorMsg := ""
		if c.Writer.Status() >= http.StatusBadRequest {
			status = model.OperStatusFailed
			if len(c.Errors) > 0 {
				errorMsg = c.Errors.String()
			}
		}

		location := iplocation.LocationUnknown
		if ipLocator != nil {
			location = ipLocator.Lookup(c.Request.Context(), c.ClientIP())
		}

		now := time.Now()
		operLogService.Record(c.Request.Context(), &model.SysOperLog{
			TenantID:      model.DefaultTenantID,
			Title:         c.FullPath(),
			BusinessType:  businessType,
			Method:        c.HandlerName(),
			RequestMethod: c.Request.Method,
			OperName:      operName,
			OperURL:       c.Request.URL.Path,
			OperIP:        c.ClientIP(),
			OperLocation:  location,
			OperParam:     string(bodyCopy),
			Status:        status,
			ErrorMsg:      errorMsg,
			OperTime:      &now,
			CostTime:      time.Since(startTime).Milliseconds(),
		})
	}
}
