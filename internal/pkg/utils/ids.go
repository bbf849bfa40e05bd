/**
 * 工具:ID解析
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 路径参数中逗号分隔ID列表的解析
 * @func: ParseIDList、ParseID
 */
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID 解析单个数字ID
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

// ParseIDList 解析逗号分隔的ID列表，如 "1,2,3"
func ParseIDList(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := ParseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty id list")
	}
	return ids, nil
}
