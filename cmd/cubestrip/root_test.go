package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/cubestrip"
	"github.com/setanarut/cubestrip/utils"
)

// Command tests share the package-level flag state, so they run
// sequentially and pass every relevant flag explicitly.

func writeTestFaces(t *testing.T, dir string, w, h int) {
	t.Helper()
	colors := [cubestrip.FaceCount]color.NRGBA{
		{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255},
		{R: 255, G: 255, A: 255}, {R: 255, B: 255, A: 255}, {G: 255, B: 255, A: 255},
	}
	paths := cubestrip.FaceFiles(dir)
	for i := range cubestrip.FaceCount {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := range h {
			for x := range w {
				img.SetNRGBA(x, y, colors[i])
			}
		}
		require.NoError(t, utils.SaveImage(img, paths[i]))
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommandBuildsStrip(t *testing.T) {
	dir := t.TempDir()
	writeTestFaces(t, dir, 16, 16)
	out := filepath.Join(dir, "strip.png")

	output, err := runCommand(t, "--dir", dir, "--output", out)
	require.NoError(t, err)
	assert.Contains(t, output, "Saved "+out)

	strip, err := utils.ReadImage(out)
	require.NoError(t, err)
	assert.Equal(t, 16, strip.Bounds().Dx())
	assert.Equal(t, 16*cubestrip.FaceCount, strip.Bounds().Dy())
}

func TestRootCommandSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	writeTestFaces(t, dir, 16, 16)
	small := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, utils.SaveImage(small, filepath.Join(dir, cubestrip.FacePosY.Filename())))
	out := filepath.Join(dir, "strip.png")

	_, err := runCommand(t, "--dir", dir, "--output", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, cubestrip.ErrSizeMismatch)
}

func TestRootCommandWritesPalette(t *testing.T) {
	dir := t.TempDir()
	writeTestFaces(t, dir, 16, 16)
	out := filepath.Join(dir, "strip.png")
	palPath := filepath.Join(dir, "palette.png")

	_, err := runCommand(t, "--dir", dir, "--output", out, "--palette", palPath, "--colors", "3")
	require.NoError(t, err)

	pal, err := utils.ReadImage(palPath)
	require.NoError(t, err)
	assert.Equal(t, 64, pal.Bounds().Dy())
	assert.Positive(t, pal.Bounds().Dx())
}

func TestSplitCommand(t *testing.T) {
	dir := t.TempDir()
	writeTestFaces(t, dir, 16, 16)
	stripPath := filepath.Join(dir, "strip.png")
	require.NoError(t, cubestrip.BuildFile(dir, stripPath, cubestrip.DefaultOptions()))

	outDir := t.TempDir()
	output, err := runCommand(t, "split", stripPath, "--dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, output, outDir)

	for _, p := range cubestrip.FaceFiles(outDir) {
		face, err := utils.ReadImage(p)
		require.NoError(t, err)
		assert.Equal(t, 16, face.Bounds().Dy())
	}
}
