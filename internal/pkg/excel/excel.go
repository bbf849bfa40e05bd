/**
 * 工具:Excel读写
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 基于excelize的通用表格导出与按行读取
 * @func: WriteSheet、ReadSheet
 */
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName 默认工作表名
const DefaultSheetName = "Sheet1"

// WriteSheet 写入表头和数据行，返回构建好的工作簿
func WriteSheet(sheetName string, headers []string, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
			return nil, fmt.Errorf("failed to rename sheet: %w", err)
		}
	}

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := setRow(f, sheetName, 1, headerCells); err != nil {
		return nil, err
	}

	for i, row := range rows {
		if err := setRow(f, sheetName, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// setRow 写入一行数据
func setRow(f *excelize.File, sheetName string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to build cell name: %w", err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to set row %d: %w", rowNum, err)
	}
	return nil
}

// ReadSheet 读取第一个工作表的全部行，第一行视为表头一并返回
func ReadSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheet")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet rows: %w", err)
	}
	return rows, nil
}

// WriteToStream 将工作簿写入输出流
func WriteToStream(f *excelize.File, w io.Writer) error {
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write excel stream: %w", err)
	}
	return nil
}
