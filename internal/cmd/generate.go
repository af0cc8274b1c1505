package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/MeKo-Tech/pixeltex/internal/pattern"
	"github.com/MeKo-Tech/pixeltex/internal/postfx"
	"github.com/MeKo-Tech/pixeltex/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a single texture",
	Long:  `Render one texture pattern to a PNG file or into a swatch catalog.`,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("pattern", "p", "stone", "Pattern to render (wood, stone, fabric, water, laterite, roof)")
	generateCmd.Flags().Int("width", 64, "Texture width in pixels")
	generateCmd.Flags().Int("height", 64, "Texture height in pixels")
	generateCmd.Flags().Int("scale", 4, "Characteristic feature size in pixels")
	generateCmd.Flags().Float64("variation", 0.5, "Irregularity knob (0 = regular, 1 = maximally noisy)")
	generateCmd.Flags().Int64("seed", 1337, "Deterministic seed")
	generateCmd.Flags().Int("frame", 0, "Animation frame (water pattern only, 0-7)")
	generateCmd.Flags().Bool("all-frames", false, "Render every animation frame of the pattern")
	generateCmd.Flags().Int("upscale", 1, "Integer nearest-neighbor upscale factor for the written PNG")
	generateCmd.Flags().String("catalog", "", "Write into this swatch catalog database instead of loose PNG files")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"generate.pattern", "pattern"},
		{"generate.width", "width"},
		{"generate.height", "height"},
		{"generate.scale", "scale"},
		{"generate.variation", "variation"},
		{"generate.seed", "seed"},
		{"generate.frame", "frame"},
		{"generate.all_frames", "all-frames"},
		{"generate.upscale", "upscale"},
		{"generate.catalog", "catalog"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, generateCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	kind, err := pattern.ParseKind(viper.GetString("generate.pattern"))
	if err != nil {
		return err
	}

	opts := pattern.Options{
		Width:     viper.GetInt("generate.width"),
		Height:    viper.GetInt("generate.height"),
		Scale:     viper.GetInt("generate.scale"),
		Variation: viper.GetFloat64("generate.variation"),
		Seed:      viper.GetInt64("generate.seed"),
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	frames := []int{viper.GetInt("generate.frame")}
	if viper.GetBool("generate.all_frames") {
		frames = make([]int, pattern.WaterFrames)
		for i := range frames {
			frames[i] = i
		}
	}

	upscale := viper.GetInt("generate.upscale")
	catalogPath := viper.GetString("generate.catalog")
	outputDir := viper.GetString("output-dir")

	var catalog *store.Writer
	if catalogPath != "" {
		catalog, err = store.NewWriter(catalogPath, store.Metadata{
			Name:    "pixeltex swatches",
			Version: "1",
		})
		if err != nil {
			return err
		}
		defer catalog.Close()
	} else if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	for _, frame := range frames {
		start := time.Now()
		grid, err := pattern.Generate(kind, opts, frame)
		if err != nil {
			return err
		}

		data, err := encodePNG(grid, upscale)
		if err != nil {
			return err
		}

		if catalog != nil {
			err = catalog.Write(store.Entry{
				Pattern:   kind.String(),
				Seed:      opts.Seed,
				Frame:     frame,
				Width:     opts.Width,
				Height:    opts.Height,
				Scale:     opts.Scale,
				Variation: opts.Variation,
				PNG:       data,
			})
			if err != nil {
				return err
			}
		} else {
			name := fmt.Sprintf("%s_s%d.png", kind, opts.Seed)
			if kind == pattern.KindWaterRipple {
				name = fmt.Sprintf("%s_s%d_f%d.png", kind, opts.Seed, frame)
			}
			path := filepath.Join(outputDir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}

		logger.Info("Rendered texture",
			"pattern", kind.String(),
			"seed", opts.Seed,
			"frame", frame,
			"elapsed", time.Since(start),
		)
	}

	return nil
}

func encodePNG(grid pattern.Grid, upscale int) ([]byte, error) {
	img := grid.ToImage()
	out := postfx.Upscale(img, upscale)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
