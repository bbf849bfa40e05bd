/**
 * 测试:IP归属地查询
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 内网短路、禁用回退与在线查询解析的单元测试
 * @func: TestIPLocation
 */
package iplocation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rbacadmin/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLookupPrivateIPShortCircuit(t *testing.T) {
	// 内网IP不触发在线查询,启用与否结果一致
	client := NewClient(&config.IPLocationConfig{Enabled: true, Endpoint: "http://127.0.0.1:1"})

	assert.Equal(t, LocationIntranet, client.Lookup(context.Background(), "192.168.1.10"))
	assert.Equal(t, LocationIntranet, client.Lookup(context.Background(), "127.0.0.1"))
	assert.Equal(t, LocationIntranet, client.Lookup(context.Background(), "10.0.0.3"))
}

func TestLookupDisabled(t *testing.T) {
	client := NewClient(&config.IPLocationConfig{Enabled: false})

	assert.Equal(t, LocationUnknown, client.Lookup(context.Background(), "8.8.8.8"))
}

func TestLookupNilConfig(t *testing.T) {
	client := NewClient(nil)

	assert.Equal(t, LocationUnknown, client.Lookup(context.Background(), "8.8.8.8"))
	assert.Equal(t, LocationIntranet, client.Lookup(context.Background(), "172.16.0.1"))
}

func TestLookupOnlineAddr(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "8.8.8.8", r.URL.Query().Get("ip"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"addr":"美国 加利福尼亚","pro":"","city":""}`))
	}))
	defer server.Close()

	client := NewClient(&config.IPLocationConfig{
		Enabled:  true,
		Endpoint: server.URL,
		Timeout:  2 * time.Second,
	})

	assert.Equal(t, "美国 加利福尼亚", client.Lookup(context.Background(), "8.8.8.8"))
}

func TestLookupOnlineProCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"addr":"","pro":"浙江省","city":"杭州市"}`))
	}))
	defer server.Close()

	client := NewClient(&config.IPLocationConfig{Enabled: true, Endpoint: server.URL})

	assert.Equal(t, "浙江省杭州市", client.Lookup(context.Background(), "8.8.8.8"))
}

func TestLookupServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&config.IPLocationConfig{Enabled: true, Endpoint: server.URL})

	assert.Equal(t, LocationUnknown, client.Lookup(context.Background(), "8.8.8.8"))
}
