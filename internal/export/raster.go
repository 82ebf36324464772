package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"PaintPad/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Export canvas size in pixels. Gesture coordinates are used as-is, with no
// scaling to this size.
const (
	CanvasWidth  = 1080
	CanvasHeight = 1920
)

// Rasterize paints segments, in order, onto a white width x height image.
// Each segment is a stroked line with round caps and joins.
func Rasterize(segments []state.Segment, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if len(segments) == 0 || width <= 0 || height <= 0 {
		return img
	}

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	stroker := rasterx.NewStroker(width, height, scanner)
	for _, s := range segments {
		stroker.SetStroke(toFixed(float64(s.Width)), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
		stroker.SetColor(s.Color)
		stroker.Start(toFixedP(s.Start))
		stroker.Line(toFixedP(s.End))
		stroker.Stop(false)
		stroker.Draw()
		stroker.Clear()
	}
	return img
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func toFixedP(p state.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(float64(p.X)), Y: toFixed(float64(p.Y))}
}

// EncodePNG writes img to w as a PNG. The image is fully encoded before
// anything is written, so an encoding failure leaves w untouched.
func EncodePNG(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return WriteError(err)
	}
	return nil
}
