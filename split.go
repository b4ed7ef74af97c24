package cubestrip

import (
	"fmt"
	"image"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/setanarut/cubestrip/utils"
)

// SplitStrip is the inverse of Build: it cuts a vertical strip back
// into six faces in strip order. The strip height must be an even
// multiple of FaceCount.
func SplitStrip(strip image.Image) ([FaceCount]*image.NRGBA, error) {
	var faces [FaceCount]*image.NRGBA
	b := strip.Bounds()
	w, h := b.Dx(), b.Dy()
	if h%FaceCount != 0 {
		return faces, fmt.Errorf("strip is %dx%d: %w", w, h, ErrStripHeight)
	}
	faceH := h / FaceCount
	if w <= 0 || faceH <= 0 {
		return faces, fmt.Errorf("strip is %dx%d: %w", w, h, ErrEmptyFace)
	}
	for i := range FaceCount {
		face := image.NewNRGBA(image.Rect(0, 0, w, faceH))
		src := image.Pt(b.Min.X, b.Min.Y+i*faceH)
		draw.Draw(face, face.Bounds(), strip, src, draw.Src)
		faces[i] = face
	}
	return faces, nil
}

// SplitFile reads a strip image and writes the six face files into
// dir under their fixed names, overwriting existing files.
func SplitFile(stripPath, dir string) error {
	strip, err := utils.ReadImage(stripPath)
	if err != nil {
		return fmt.Errorf("load strip: %w", err)
	}
	faces, err := SplitStrip(strip)
	if err != nil {
		return err
	}
	for i := range FaceCount {
		out := filepath.Join(dir, Face(i).Filename())
		if err := utils.SaveImage(faces[i], out); err != nil {
			return fmt.Errorf("write face %s: %w", Face(i), err)
		}
	}
	return nil
}
