package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MeKo-Tech/pixeltex/internal/pattern"
	"github.com/MeKo-Tech/pixeltex/internal/postfx"
	"github.com/MeKo-Tech/pixeltex/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render a contact sheet of all patterns",
	Long: `Render every pattern across several seeds into a single contact
sheet image, one column per pattern and one row per seed.`,
	RunE: runSheet,
}

func init() {
	rootCmd.AddCommand(sheetCmd)

	sheetCmd.Flags().Int("size", 64, "Swatch size in pixels (square)")
	sheetCmd.Flags().Int("scale", 4, "Characteristic feature size in pixels")
	sheetCmd.Flags().Float64("variation", 0.5, "Irregularity knob (0..1)")
	sheetCmd.Flags().Int64("seed", 1337, "Base seed; each row advances it by one")
	sheetCmd.Flags().Int("rows", 4, "Number of seed rows")
	sheetCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	sheetCmd.Flags().Bool("progress", true, "Show progress bar")
	sheetCmd.Flags().Int("upscale", 2, "Integer upscale factor for the sheet")
	sheetCmd.Flags().Float64("grain", 0, "Paper grain strength (0..1) applied to the sheet")
	sheetCmd.Flags().Float64("soften", 0, "Gaussian blur sigma applied after upscaling (0 = off)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"sheet.size", "size"},
		{"sheet.scale", "scale"},
		{"sheet.variation", "variation"},
		{"sheet.seed", "seed"},
		{"sheet.rows", "rows"},
		{"sheet.workers", "workers"},
		{"sheet.progress", "progress"},
		{"sheet.upscale", "upscale"},
		{"sheet.grain", "grain"},
		{"sheet.soften", "soften"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, sheetCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

// pngRenderer renders pool tasks to encoded PNG bytes. Each call builds
// its own generator state, so tasks are safe to run concurrently.
type pngRenderer struct{}

func (pngRenderer) Render(_ context.Context, task worker.Task) ([]byte, error) {
	grid, err := pattern.Generate(task.Kind, task.Opts, task.Frame)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, grid.ToImage()); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func runSheet(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	size := viper.GetInt("sheet.size")
	rows := viper.GetInt("sheet.rows")
	if size <= 0 || rows <= 0 {
		return fmt.Errorf("size and rows must be positive")
	}

	baseOpts := pattern.Options{
		Width:     size,
		Height:    size,
		Scale:     viper.GetInt("sheet.scale"),
		Variation: viper.GetFloat64("sheet.variation"),
		Seed:      viper.GetInt64("sheet.seed"),
	}
	if err := baseOpts.Validate(); err != nil {
		return err
	}

	workers := viper.GetInt("sheet.workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tasks := make([]worker.Task, 0, rows*len(pattern.Kinds))
	for row := 0; row < rows; row++ {
		for _, kind := range pattern.Kinds {
			opts := baseOpts
			opts.Seed += int64(row)
			tasks = append(tasks, worker.Task{Kind: kind, Opts: opts})
		}
	}

	progress := worker.NewProgress(len(tasks), viper.GetBool("sheet.progress"))
	pool := worker.New(worker.Config{
		Workers:    workers,
		Renderer:   pngRenderer{},
		OnProgress: progress.Callback(),
	})

	results := pool.Run(cmd.Context(), tasks)
	progress.Done()

	swatches := make(map[worker.Task]image.Image, len(results))
	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("failed to render %s seed %d: %w", res.Task.Kind, res.Task.Opts.Seed, res.Err)
		}
		img, err := png.Decode(bytes.NewReader(res.PNG))
		if err != nil {
			return fmt.Errorf("failed to decode swatch: %w", err)
		}
		swatches[res.Task] = img
	}

	sheet := composeSheet(tasks, swatches, size, len(pattern.Kinds), rows)

	out := postfx.Upscale(sheet, viper.GetInt("sheet.upscale"))
	if grain := viper.GetFloat64("sheet.grain"); grain > 0 {
		out = postfx.GrainOverlay(out, float64(size), grain, baseOpts.Seed)
	}
	if sigma := viper.GetFloat64("sheet.soften"); sigma > 0 {
		out = postfx.Soften(out, float32(sigma))
	}

	outputDir := viper.GetString("output-dir")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(outputDir, "sheet.png")

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, out); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	logger.Info("Contact sheet complete",
		"path", path,
		"swatches", len(tasks),
		"summary", progress.Summary(),
	)
	return nil
}

const sheetPadding = 2

func composeSheet(tasks []worker.Task, swatches map[worker.Task]image.Image, size, cols, rows int) *image.RGBA {
	cell := size + sheetPadding
	sheet := image.NewRGBA(image.Rect(0, 0, cols*cell-sheetPadding, rows*cell-sheetPadding))

	for i, task := range tasks {
		col := i % cols
		row := i / cols
		org := image.Pt(col*cell, row*cell)
		img, ok := swatches[task]
		if !ok {
			continue
		}
		draw.Draw(sheet, image.Rectangle{Min: org, Max: org.Add(image.Pt(size, size))}, img, img.Bounds().Min, draw.Src)
	}
	return sheet
}
