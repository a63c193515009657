package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// xlsxRenderer writes a workbook with a single labelled column and one row.
// Size, colors and font size do not apply.
type xlsxRenderer struct{}

func (xlsxRenderer) ContentType() string {
	return ContentTypeXLSX
}

func (xlsxRenderer) Render(label string, _ RenderOptions) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetColWidth(xlsxSheetName, "A", "A", xlsxColumnWidth); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetCellValue(xlsxSheetName, "A1", xlsxHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellValue(xlsxSheetName, "A2", label); err != nil {
		return nil, fmt.Errorf("failed to write row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
