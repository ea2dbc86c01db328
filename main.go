package main

import (
	"fmt"
	"os"

	"github.com/df07/go-recursive-raytracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	cameraFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Usage: "frame width; 0 keeps the scene default",
		},
		cli.Float64Flag{
			Name:  "aspect",
			Usage: "frame aspect ratio; 0 keeps the scene default",
		},
		cli.Float64Flag{
			Name:  "fov",
			Usage: "vertical field of view in degrees; 0 keeps the scene default",
		},
		cli.IntFlag{
			Name:  "camera",
			Value: 0,
			Usage: "index of the scene camera",
		},
	}

	app := cli.NewApp()
	app.Name = "go-recursive-raytracer"
	app.Usage = "render scenes with a recursive Whitted-style ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "log levels as level and module=level pairs, e.g. info,bvh=debug",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene with a fixed pool of scanline workers and write the
frame to a PNG file. Per-frame ray and timing statistics are printed when
the render completes.`,
			ArgsUsage: "scene",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "sx",
					Value: 2,
					Usage: "sub-pixel samples per row",
				},
				cli.IntFlag{
					Name:  "sy",
					Value: 2,
					Usage: "sub-pixel samples per column",
				},
				cli.BoolFlag{
					Name:  "no-jitter",
					Usage: "sample sub-pixel cell centers instead of random positions",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "jitter seed",
				},
				cli.UintFlag{
					Name:  "depth",
					Value: 5,
					Usage: "maximum recursion depth",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of scanline workers; 0 uses one per CPU, up to 32",
				},
				cli.Float64Flag{
					Name:  "shadow-bias",
					Usage: "shadow ray offset; 0 keeps the default",
				},
				cli.Float64Flag{
					Name:  "reflect-bias",
					Usage: "reflected ray offset; 0 keeps the default",
				},
				cli.Float64Flag{
					Name:  "refract-bias",
					Usage: "refracted ray offset; 0 keeps the default",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			}, cameraFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:      "pick",
			Usage:     "report the object under a pixel",
			ArgsUsage: "scene",
			Flags: append([]cli.Flag{
				cli.Float64Flag{
					Name:  "x",
					Usage: "pixel column, from the left",
				},
				cli.Float64Flag{
					Name:  "y",
					Usage: "pixel row, from the top",
				},
			}, cameraFlags...),
			Action: cmd.PickObject,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
