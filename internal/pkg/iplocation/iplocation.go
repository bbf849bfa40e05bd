/**
 * 工具:IP归属地查询
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 通过在线接口查询IP归属地，内网IP与失败情况有固定回退值
 * @func: Client
 */
package iplocation

import (
	"context"
	"time"

	"rbacadmin/internal/config"
	"rbacadmin/internal/pkg/utils"

	"github.com/go-resty/resty/v2"
)

const (
	// LocationIntranet 内网IP的归属地标识
	LocationIntranet = "内网IP"
	// LocationUnknown 查询失败时的归属地标识
	LocationUnknown = "未知地区"

	defaultEndpoint = "https://whois.pconline.com.cn/ipJson.jsp"
	defaultTimeout  = 2 * time.Second
)

// locationResponse 在线查询接口的响应结构
type locationResponse struct {
	Addr string `json:"addr"`
	Pro  string `json:"pro"`
	City string `json:"city"`
}

// Client IP归属地查询客户端
type Client struct {
	httpClient *resty.Client
	enabled    bool
	endpoint   string
}

// NewClient 创建IP归属地查询客户端
func NewClient(cfg *config.IPLocationConfig) *Client {
	endpoint := defaultEndpoint
	timeout := defaultTimeout
	enabled := false
	if cfg != nil {
		enabled = cfg.Enabled
		if cfg.Endpoint != "" {
			endpoint = cfg.Endpoint
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetRetryCount(1)

	return &Client{
		httpClient: httpClient,
		enabled:    enabled,
		endpoint:   endpoint,
	}
}

// Lookup 查询IP归属地
// 内网IP直接返回固定标识，禁用或查询失败时返回"未知地区"，不向调用方抛错
func (c *Client) Lookup(ctx context.Context, ip string) string {
	if utils.IsPrivateIP(ip) {
		return LocationIntranet
	}
	if !c.enabled {
		return LocationUnknown
	}

	var result locationResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ip":   ip,
			"json": "true",
		}).
		SetResult(&result).
		Get(c.endpoint)
	if err != nil || !resp.IsSuccess() {
		return LocationUnknown
	}

	if result.Addr != "" {
		return result.Addr
	}
	if result.Pro != "" || result.City != "" {
		return result.Pro + result.City
	}
	return LocationUnknown
}
