package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestXLSXRenderer(t *testing.T) {
	data, err := xlsxRenderer{}.Render("test_1.xlsx", RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, ContentTypeXLSX, xlsxRenderer{}.ContentType())

	f := readWorkbook(t, data)
	assert.Equal(t, []string{xlsxSheetName}, f.GetSheetList())

	rows, err := f.GetRows(xlsxSheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"ファイル名"}, {"test_1.xlsx"}}, rows)

	width, err := f.GetColWidth(xlsxSheetName, "A")
	require.NoError(t, err)
	assert.InDelta(t, 30, width, 1e-9)
}
