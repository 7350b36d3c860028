package httpapi

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/turisouvenir/Care-Equity/internal/domain"

	"github.com/xuri/excelize/v2"
)

const rosterSheetName = "Hospitals"

// HospitalRosterHeader 医院名册表头（导入模板与导出共用）
var HospitalRosterHeader = []string{
	"Hospital ID",
	"Name",
	"City",
	"State",
}

// GenerateHospitalRosterTemplate 生成名册导入模板（只有表头）
func GenerateHospitalRosterTemplate() ([]byte, error) {
	return generateHospitalRosterExcel(nil)
}

// GenerateHospitalRosterExport 生成名册导出 Excel 文件
func GenerateHospitalRosterExport(hospitals []domain.Hospital) ([]byte, error) {
	return generateHospitalRosterExcel(hospitals)
}

func generateHospitalRosterExcel(hospitals []domain.Hospital) ([]byte, error) {
	f := excelize.NewFile()
	// Note: Don't defer Close() here, because WriteTo needs the file to be open

	index, err := f.NewSheet(rosterSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range HospitalRosterHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(rosterSheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(rosterSheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	columnWidths := []float64{
		15, // Hospital ID
		35, // Name
		20, // City
		10, // State
	}
	for i := range HospitalRosterHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(rosterSheetName, col, col, columnWidths[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, h := range hospitals {
		row := rowIdx + 2 // 从第2行开始（第1行是表头）
		values := []any{h.HospitalID, h.Name, h.City, h.State}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(rosterSheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	// 冻结表头
	if err := f.SetPanes(rosterSheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseHospitalRoster 解析上传的名册 Excel 文件
// 返回解析出的医院列表和逐行错误（行号从 2 开始计，即第一条数据行）
func ParseHospitalRoster(fileBytes []byte) ([]domain.Hospital, []string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, fmt.Errorf("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, nil
	}

	headerMap := make(map[string]int)
	for i, h := range rows[0] {
		headerMap[strings.TrimSpace(h)] = i
	}
	for _, required := range HospitalRosterHeader {
		if _, ok := headerMap[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}

	cellAt := func(row []string, header string) string {
		idx := headerMap[header]
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	hospitals := make([]domain.Hospital, 0, len(rows)-1)
	var rowErrors []string
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		h := domain.Hospital{
			HospitalID: cellAt(row, "Hospital ID"),
			Name:       cellAt(row, "Name"),
			City:       cellAt(row, "City"),
			State:      cellAt(row, "State"),
		}
		// 全空行直接跳过
		if h.HospitalID == "" && h.Name == "" && h.City == "" && h.State == "" {
			continue
		}
		if h.HospitalID == "" || h.Name == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: hospital id and name are required", rowIdx+1))
			continue
		}
		hospitals = append(hospitals, h)
	}

	return hospitals, rowErrors, nil
}
