package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/fogleman/gg"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// renderOptions maps the render flags onto renderer options.
func renderOptions(ctx *cli.Context) renderer.Options {
	opts := renderer.DefaultOptions()
	opts.Camera = ctx.Int("camera")
	opts.SamplesX = ctx.Int("sx")
	opts.SamplesY = ctx.Int("sy")
	opts.Jitter = !ctx.Bool("no-jitter")
	opts.Seed = ctx.Int64("seed")
	if w := ctx.Int("workers"); w > 0 {
		opts.Workers = w
	}
	opts.Tracer.MaxDepth = uint32(ctx.Uint("depth"))
	if b := ctx.Float64("shadow-bias"); b > 0 {
		opts.Tracer.Biases.Shadow = b
	}
	if b := ctx.Float64("reflect-bias"); b > 0 {
		opts.Tracer.Biases.Reflect = b
	}
	if b := ctx.Float64("refract-bias"); b > 0 {
		opts.Tracer.Biases.Refract = b
	}
	return opts
}

// RenderFrame renders a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	engine, err := renderer.NewEngine(scene.NewShared(sc), renderOptions(ctx))
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q", sc.Name)
	img, stats, err := engine.RenderImage(renderCtx)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := gg.SavePNG(out, img.ToRGBA()); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	logger.Noticef("wrote %dx%d frame to %s", img.Width(), img.Height(), out)

	displayFrameStats(ctx, stats)
	return nil
}

func displayFrameStats(ctx *cli.Context, stats renderer.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Lines", "Samples", "Primary rays", "Secondary rays", "Shadow rays", "Line time", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Lines),
		fmt.Sprintf("%d", stats.Samples),
		fmt.Sprintf("%d", stats.Rays.Primary),
		fmt.Sprintf("%d", stats.Rays.Secondary),
		fmt.Sprintf("%d", stats.Rays.Shadow),
		fmt.Sprintf("%s ± %s", stats.LineMean, stats.LineStdDev),
		fmt.Sprintf("%s (%.0f rays/s)", stats.Elapsed, stats.RaysPerSecond()),
	})
	table.Render()

	table = tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Worker", "Lines", "% of frame"})
	for id, lines := range stats.LinesPerWorker {
		percent := 0.0
		if stats.Lines > 0 {
			percent = 100 * float64(lines) / float64(stats.Lines)
		}
		table.Append([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", lines),
			fmt.Sprintf("%02.1f %%", percent),
		})
	}
	table.Render()

	fmt.Fprintf(ctx.App.Writer, "\nFrame statistics\n%s", buf.String())
}

// PickObject reports the object under a pixel of a built-in scene.
func PickObject(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}
	camera, err := sc.Camera(ctx.Int("camera"))
	if err != nil {
		return err
	}
	x, y := ctx.Float64("x"), ctx.Float64("y")
	if x < 0 || y < 0 || x >= float64(camera.Width()) || y >= float64(camera.Height()) {
		return fmt.Errorf("pixel (%g, %g) outside the %dx%d frame", x, y, camera.Width(), camera.Height())
	}

	result, ok := scene.NewShared(sc).Pick(camera.Ray(x, y))
	if !ok {
		fmt.Fprintf(ctx.App.Writer, "nothing at (%g, %g)\n", x, y)
		return nil
	}
	fmt.Fprintf(ctx.App.Writer, "%s\n", describePick(result))
	return nil
}

func describePick(result scene.PickResult) string {
	return fmt.Sprintf("%T index=%d object=%T position=%s distance=%.4f",
		result.Surface, result.Index, result.Object, formatVec(result.Pos), result.Dist)
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
