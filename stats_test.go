package cubestrip

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFaceStatsUniform(t *testing.T) {
	t.Parallel()

	white := solidFace(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	s := ComputeFaceStats(FacePosX, white)
	assert.Equal(t, FacePosX, s.Face)
	assert.InDelta(t, 255.0, s.Mean, 0.5)
	assert.InDelta(t, 0.0, s.StdDev, 1e-9)

	black := solidFace(8, 8, color.NRGBA{A: 255})
	s = ComputeFaceStats(FaceNegX, black)
	assert.InDelta(t, 0.0, s.Mean, 1e-9)
}

func TestComputeFaceStatsSpread(t *testing.T) {
	t.Parallel()

	// Top half black, bottom half white.
	img := solidFace(8, 8, color.NRGBA{A: 255})
	for y := 4; y < 8; y++ {
		for x := range 8 {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	s := ComputeFaceStats(FacePosY, img)
	assert.InDelta(t, 127.5, s.Mean, 1.0)
	assert.Greater(t, s.StdDev, 100.0)
}

func TestBuilderStats(t *testing.T) {
	t.Parallel()

	sb := NewStripBuilder(testFaces(8, 8))
	stats := sb.Stats()
	require.Len(t, stats, FaceCount)
	for i, s := range stats {
		assert.Equal(t, Face(i), s.Face)
	}

	sb.Faces[FaceNegZ] = nil
	assert.Len(t, sb.Stats(), FaceCount-1)
}
