package service

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// pdfRenderer produces single-page documents sized in points.
type pdfRenderer struct{}

func (pdfRenderer) ContentType() string {
	return ContentTypePDF
}

func (pdfRenderer) Render(label string, opts RenderOptions) ([]byte, error) {
	w, h := float64(opts.Width), float64(opts.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid page size %vx%v", w, h)
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	bg := opts.Background
	doc.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	doc.Rect(0, 0, w, h, "F")

	if opts.Border != nil {
		border := *opts.Border
		doc.SetDrawColor(int(border.R), int(border.G), int(border.B))
		doc.SetLineWidth(borderWidth)
		doc.Rect(0, 0, w, h, "D")
	}

	size := float64(opts.FontSize)
	doc.SetFont(pdfFontFamily, "", size)
	textWidth := doc.GetStringWidth(label)

	x, y := pdfTextOrigin(w, h, textWidth, size)
	text := opts.Text
	doc.SetTextColor(int(text.R), int(text.G), int(text.B))
	doc.Text(x, y, label)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfTextOrigin returns the baseline start of the label in fpdf's top-left
// coordinates. In bottom-left page space the baseline sits at
// ((w - textWidth)/2, (h - size)/2), which is only roughly centered.
func pdfTextOrigin(w, h, textWidth, size float64) (x, y float64) {
	x = (w - textWidth) / 2
	y = h - (h-size)/2
	return x, y
}
