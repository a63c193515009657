package service

const (
	ContentTypePNG  = "image/png"
	ContentTypeJPEG = "image/jpeg"
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeZIP  = "application/zip"
)

const (
	// borderWidth is the stroke width of the optional border, centered on the
	// surface edge.
	borderWidth = 10

	pdfFontFamily = "Helvetica"

	xlsxSheetName   = "Sheet1"
	xlsxHeader      = "ファイル名"
	xlsxColumnWidth = 30

	previewDPI = 72
)
