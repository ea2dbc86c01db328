package cmd

import (
	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

// setupLogging applies -v/-vv and then the --log spec, so a spec such as
// "bvh=debug" can single out modules on top of the verbosity flags.
func setupLogging(ctx *cli.Context) error {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	}

	if spec := ctx.GlobalString("log"); spec != "" {
		return log.Configure(spec)
	}
	return nil
}
