/**
 * 测试:通用工具
 * @author: tangyun
 * @date: 2025.11.03
 * @description: IP判断、User-Agent解析与ID解析的单元测试
 * @func: TestUtils
 */
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrivateIP(t *testing.T) {
	assert.True(t, IsPrivateIP("127.0.0.1"))
	assert.True(t, IsPrivateIP("10.0.0.8"))
	assert.True(t, IsPrivateIP("172.16.1.1"))
	assert.True(t, IsPrivateIP("192.168.1.100"))
	assert.True(t, IsPrivateIP("169.254.0.1"))
	assert.True(t, IsPrivateIP("::1"))

	assert.False(t, IsPrivateIP("8.8.8.8"))
	assert.False(t, IsPrivateIP("114.114.114.114"))
	assert.False(t, IsPrivateIP("not-an-ip"))
	assert.False(t, IsPrivateIP(""))
}

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name    string
		ua      string
		browser string
		os      string
	}{
		{
			name:    "chrome on windows 10",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
			browser: "Chrome",
			os:      "Windows 10",
		},
		{
			name:    "edge identified before chrome",
			ua:      "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
			browser: "Edge",
			os:      "Windows 10",
		},
		{
			name:    "firefox on linux",
			ua:      "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			browser: "Firefox",
			os:      "Linux",
		},
		{
			name:    "safari on macos",
			ua:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 Version/17.0 Safari/605.1.15",
			browser: "Safari",
			os:      "macOS",
		},
		{
			name:    "curl",
			ua:      "curl/8.4.0",
			browser: "curl",
			os:      "Unknown",
		},
		{
			name:    "empty",
			ua:      "",
			browser: "Unknown",
			os:      "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseUserAgent(tt.ua)
			assert.Equal(t, tt.browser, info.Browser)
			assert.Equal(t, tt.os, info.OS)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("0")
	assert.Error(t, err)
	_, err = ParseID("-1")
	assert.Error(t, err)
	_, err = ParseID("abc")
	assert.Error(t, err)
}

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("1,2,3")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	ids, err = ParseIDList(" 7 , 9 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, ids)

	_, err = ParseIDList("")
	assert.Error(t, err)
	_, err = ParseIDList("1,x,3")
	assert.Error(t, err)
}
