package export

import (
	"bytes"
	"fmt"
	"io"

	"PaintPad/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PDFInfo is the document metadata stamped into a PDF export.
type PDFInfo struct {
	Title   string
	Session string
}

// WritePDF writes segments as a single width x height point page with a
// white background. One canvas pixel maps to one point.
func WritePDF(w io.Writer, segments []state.Segment, width, height int, info PDFInfo) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	p.SetTitle(info.Title, true)
	p.SetSubject("session "+info.Session, true)
	p.SetCreator("PaintPad", true)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	p.SetFillColor(255, 255, 255)
	p.Rect(0, 0, float64(width), float64(height), "F")

	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	for _, s := range segments {
		p.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
		p.SetAlpha(float64(s.Color.A)/255, "Normal")
		p.SetLineWidth(float64(s.Width))
		p.Line(
			float64(s.Start.X), float64(s.Start.Y),
			float64(s.End.X), float64(s.End.Y),
		)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return WriteError(err)
	}
	return nil
}
