package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.Builtin.List() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

// loadScene builds the scene named by the first argument, applying the
// camera flags shared by every command.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() < 1 {
		return nil, fmt.Errorf("missing scene name argument")
	}
	override := scene.CameraConfig{
		Width:       ctx.Int("width"),
		AspectRatio: ctx.Float64("aspect"),
		VFov:        ctx.Float64("fov"),
	}
	return scene.Builtin.Build(ctx.Args().First(), override)
}
