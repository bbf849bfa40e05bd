/**
 * 测试:Excel读写
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 工作簿写入与按行读取的单元测试
 * @func: TestExcel
 */
package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadSheet(t *testing.T) {
	headers := []string{"用户名", "昵称", "状态"}
	rows := [][]interface{}{
		{"alice", "爱丽丝", "0"},
		{"bob", "鲍勃", "1"},
	}

	f, err := WriteSheet("用户数据", headers, rows)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteToStream(f, &buf))

	got, err := ReadSheet(&buf)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, headers, got[0])
	assert.Equal(t, []string{"alice", "爱丽丝", "0"}, got[1])
	assert.Equal(t, []string{"bob", "鲍勃", "1"}, got[2])
}

func TestWriteSheetHeadersOnly(t *testing.T) {
	f, err := WriteSheet("模板", []string{"列A", "列B"}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteToStream(f, &buf))

	got, err := ReadSheet(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"列A", "列B"}, got[0])
}

func TestReadSheetInvalidData(t *testing.T) {
	_, err := ReadSheet(bytes.NewReader([]byte("not an xlsx file")))
	assert.Error(t, err)
}
