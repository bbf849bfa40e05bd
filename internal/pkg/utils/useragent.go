/**
 * 工具:User-Agent解析
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 从User-Agent中提取浏览器与操作系统信息，用于登录日志
 * @func: ParseUserAgent
 */
package utils

import "strings"

// UserAgentInfo User-Agent解析结果
type UserAgentInfo struct {
	Browser string // 浏览器名称
	OS      string // 操作系统
}

// ParseUserAgent 解析User-Agent字符串
// 只做常见浏览器/系统的关键字识别，识别不出时返回 Unknown
func ParseUserAgent(ua string) UserAgentInfo {
	info := UserAgentInfo{Browser: "Unknown", OS: "Unknown"}
	if ua == "" {
		return info
	}
	lower := strings.ToLower(ua)

	// 浏览器识别顺序有讲究：Edge/Opera的UA同时包含Chrome标识
	switch {
	case strings.Contains(lower, "edg/") || strings.Contains(lower, "edge/"):
		info.Browser = "Edge"
	case strings.Contains(lower, "opr/") || strings.Contains(lower, "opera"):
		info.Browser = "Opera"
	case strings.Contains(lower, "firefox"):
		info.Browser = "Firefox"
	case strings.Contains(lower, "chrome"):
		info.Browser = "Chrome"
	case strings.Contains(lower, "safari"):
		info.Browser = "Safari"
	case strings.Contains(lower, "msie") || strings.Contains(lower, "trident"):
		info.Browser = "IE"
	case strings.Contains(lower, "curl"):
		info.Browser = "curl"
	case strings.Contains(lower, "postman"):
		info.Browser = "Postman"
	}

	switch {
	case strings.Contains(lower, "windows nt 10"):
		info.OS = "Windows 10"
	case strings.Contains(lower, "windows"):
		info.OS = "Windows"
	case strings.Contains(lower, "iphone") || strings.Contains(lower, "ipad"):
		info.OS = "iOS"
	case strings.Contains(lower, "mac os x") || strings.Contains(lower, "macintosh"):
		info.OS = "macOS"
	case strings.Contains(lower, "android"):
		info.OS = "Android"
	case strings.Contains(lower, "linux"):
		info.OS = "Linux"
	}

	return info
}
