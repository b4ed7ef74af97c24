package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/setanarut/cubestrip"
	"github.com/setanarut/cubestrip/utils"
)

var (
	// Set at build time via -ldflags.
	version = "dev"

	verbose bool

	srcDir      string
	outPath     string
	parallel    bool
	showStats   bool
	palettePath string
	paletteSize int
	paletteMeth string
)

var rootCmd = &cobra.Command{
	Use:   "cubestrip",
	Short: "Stack six cubemap face images into one vertical strip",
	Long: `cubestrip loads the six fixed face files right.png, left.png,
top.png, bottom.png, front.png and back.png (+X, -X, +Y, -Y, +Z, -Z)
from a directory, checks that they all share the same size, and writes
them stacked top to bottom into a single PNG strip.`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		opt := cubestrip.DefaultOptions()
		opt.Parallel = parallel

		slog.Debug("loading faces", "dir", srcDir, "parallel", parallel)
		faces, err := cubestrip.LoadFaces(srcDir, opt)
		if err != nil {
			return err
		}

		sb := cubestrip.NewStripBuilder(faces)
		if showStats {
			for _, s := range sb.Stats() {
				slog.Info("face luminance",
					"face", s.Face.String(),
					"mean", fmt.Sprintf("%.1f", s.Mean),
					"stddev", fmt.Sprintf("%.1f", s.StdDev))
			}
		}

		strip, err := sb.Build()
		if err != nil {
			return err
		}

		if palettePath != "" {
			if err := writePalette(strip); err != nil {
				return err
			}
		}

		if err := utils.SaveImage(strip, outPath); err != nil {
			return fmt.Errorf("write strip: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", outPath)
		return nil
	},
}

func writePalette(strip *image.NRGBA) error {
	method := utils.PaletteMethodDominantColor
	if paletteMeth == "kmeans" {
		method = utils.PaletteMethodKMeans
	}
	pal := utils.ExtractPalette(strip, paletteSize, method)
	if len(pal) == 0 {
		return fmt.Errorf("palette extraction (%s) produced no colors", method)
	}
	utils.SortPaletteByBrightness(pal)
	if err := utils.SavePalette(pal, 64, palettePath); err != nil {
		return fmt.Errorf("write palette: %w", err)
	}
	slog.Debug("wrote palette", "path", palettePath, "colors", len(pal))
	return nil
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// Execute runs the root command. Cobra prints the failing error;
// the non-zero exit is on us.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringVarP(&srcDir, "dir", "d", ".", "directory containing the six face files")
	rootCmd.Flags().StringVarP(&outPath, "output", "o", cubestrip.OutputName, "output strip path")
	rootCmd.Flags().BoolVar(&parallel, "parallel", false, "decode the six faces concurrently")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "log per-face luminance statistics")
	rootCmd.Flags().StringVar(&palettePath, "palette", "", "also write a dominant-palette preview PNG to this path")
	rootCmd.Flags().IntVar(&paletteSize, "colors", 6, "number of palette colors for --palette")
	rootCmd.Flags().StringVar(&paletteMeth, "palette-method", "dominantcolor", `palette method ("dominantcolor" or "kmeans")`)
}
