package cubestrip

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// FaceStats summarizes the luminance distribution of one face.
// Luma is Rec.709 on 8-bit channels, so values land in [0, 255].
type FaceStats struct {
	Face   Face
	Mean   float64
	StdDev float64
}

// ComputeFaceStats computes luminance statistics for a single face.
func ComputeFaceStats(f Face, img image.Image) FaceStats {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return FaceStats{Face: f}
	}
	lumas := make([]float64, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			luma := 0.2126*float64(r>>8) + 0.7152*float64(g>>8) + 0.0722*float64(bl>>8)
			lumas = append(lumas, luma)
		}
	}
	mean, std := stat.MeanStdDev(lumas, nil)
	if len(lumas) < 2 {
		std = 0
	}
	return FaceStats{Face: f, Mean: mean, StdDev: std}
}

// Stats computes luminance statistics for every loaded face.
// Nil faces are skipped; use Validate first to rule them out.
func (sb *StripBuilder) Stats() []FaceStats {
	out := make([]FaceStats, 0, FaceCount)
	for i := range FaceCount {
		if sb.Faces[i] == nil {
			continue
		}
		out = append(out, ComputeFaceStats(Face(i), sb.Faces[i]))
	}
	return out
}
