// Package cubestrip stacks the six faces of a cubemap into one
// vertical strip image, and splits such strips back into faces.
package cubestrip

import (
	"fmt"
	"image"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/setanarut/cubestrip/utils"
)

// Face identifies one cube face by its position in the strip,
// top to bottom: +X, -X, +Y, -Y, +Z, -Z.
type Face int

const (
	FacePosX Face = iota // right
	FaceNegX             // left
	FacePosY             // top
	FaceNegY             // bottom
	FacePosZ             // front
	FaceNegZ             // back
)

// FaceCount is fixed: a cubemap always has six faces.
const FaceCount = 6

// OutputName is the default strip filename.
const OutputName = "cubemap_strip.png"

var faceNames = [FaceCount]string{"right", "left", "top", "bottom", "front", "back"}

func (f Face) String() string {
	if f < 0 || f >= FaceCount {
		return "face(" + fmt.Sprint(int(f)) + ")"
	}
	return faceNames[f]
}

// Filename returns the fixed input filename for the face, e.g. "right.png".
func (f Face) Filename() string {
	return f.String() + ".png"
}

// FaceFiles returns the six face paths under dir, in strip order.
func FaceFiles(dir string) [FaceCount]string {
	var paths [FaceCount]string
	for i := range FaceCount {
		paths[i] = filepath.Join(dir, Face(i).Filename())
	}
	return paths
}

type Options struct {
	// Decode the six faces concurrently. Output is identical either
	// way; only worth it for large faces.
	Parallel bool
}

func DefaultOptions() Options {
	return Options{Parallel: false}
}

// LoadFaces decodes the six fixed face files from dir in strip order.
// Any face that is missing or undecodable fails the whole load.
func LoadFaces(dir string, opt Options) ([FaceCount]image.Image, error) {
	var faces [FaceCount]image.Image
	paths := FaceFiles(dir)

	if !opt.Parallel {
		for i := range FaceCount {
			img, err := utils.ReadImage(paths[i])
			if err != nil {
				return faces, fmt.Errorf("load face %s: %w", Face(i), err)
			}
			faces[i] = img
		}
		return faces, nil
	}

	var g errgroup.Group
	for i := range FaceCount {
		g.Go(func() error {
			img, err := utils.ReadImage(paths[i])
			if err != nil {
				return fmt.Errorf("load face %s: %w", Face(i), err)
			}
			faces[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return faces, err
	}
	return faces, nil
}

// StripBuilder assembles six equally sized face images into one
// (W, H*6) NRGBA strip. FaceW and FaceH are set by Validate.
type StripBuilder struct {
	Faces        [FaceCount]image.Image
	FaceW, FaceH int
}

func NewStripBuilder(faces [FaceCount]image.Image) *StripBuilder {
	return &StripBuilder{Faces: faces}
}

// Validate checks that every face is present and that all six share
// the dimensions of the first. It records the shared size on success.
func (sb *StripBuilder) Validate() error {
	for i := range FaceCount {
		if sb.Faces[i] == nil {
			return fmt.Errorf("face %s: %w", Face(i), ErrNilFace)
		}
	}
	first := sb.Faces[0].Bounds()
	w, h := first.Dx(), first.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("face %s is %dx%d: %w", FacePosX, w, h, ErrEmptyFace)
	}
	for i := 1; i < FaceCount; i++ {
		fb := sb.Faces[i].Bounds()
		if fb.Dx() != w || fb.Dy() != h {
			return fmt.Errorf("face %s is %dx%d, first face is %dx%d: %w",
				Face(i), fb.Dx(), fb.Dy(), w, h, ErrSizeMismatch)
		}
	}
	sb.FaceW, sb.FaceH = w, h
	return nil
}

// Build validates the faces and copies each into its vertical slot.
// Pixels are copied with draw.Src: no blending, no resampling, alpha
// carried through as straight (non-premultiplied) NRGBA.
func (sb *StripBuilder) Build() (*image.NRGBA, error) {
	if err := sb.Validate(); err != nil {
		return nil, err
	}
	strip := image.NewNRGBA(image.Rect(0, 0, sb.FaceW, sb.FaceH*FaceCount))
	for i := range FaceCount {
		slot := image.Rect(0, i*sb.FaceH, sb.FaceW, (i+1)*sb.FaceH)
		draw.Draw(strip, slot, sb.Faces[i], sb.Faces[i].Bounds().Min, draw.Src)
	}
	return strip, nil
}

// BuildFile runs the whole pipeline: load the six faces from dir,
// build the strip and write it to outPath as PNG, overwriting any
// existing file. Nothing is written if loading or validation fails.
func BuildFile(dir, outPath string, opt Options) error {
	faces, err := LoadFaces(dir, opt)
	if err != nil {
		return err
	}
	strip, err := NewStripBuilder(faces).Build()
	if err != nil {
		return err
	}
	if err := utils.SaveImage(strip, outPath); err != nil {
		return fmt.Errorf("write strip: %w", err)
	}
	return nil
}
