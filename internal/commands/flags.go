package commands

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/dudu/facescore/internal/config"
	"github.com/dudu/facescore/internal/event"
	"github.com/dudu/facescore/internal/inference"
	"github.com/dudu/facescore/internal/parsing"
	"github.com/dudu/facescore/internal/pipeline"
)

// GlobalFlags are shared by all commands.
var GlobalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "config, c",
		Usage:  "YAML config `FILE`",
		EnvVar: config.EnvPrefix + "CONFIG",
	},
	cli.StringFlag{
		Name:  "model, m",
		Usage: "face parsing model `PATH`, overrides the config",
	},
	cli.StringFlag{
		Name:  "library",
		Usage: "onnxruntime shared library `PATH`, overrides the config",
	},
	cli.StringFlag{
		Name:  "log-level, l",
		Usage: "trace, debug, info, warn or error",
	},
	cli.IntFlag{
		Name:  "workers, w",
		Usage: "concurrent candidates when ranking",
	},
	cli.BoolFlag{
		Name:  "no-model",
		Usage: "measure faces from landmarks only",
	},
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	conf, err := config.Load(ctx.GlobalString("config"))
	if err != nil {
		return conf, err
	}

	if v := ctx.GlobalString("model"); v != "" {
		conf.ModelPath = v
	}
	if v := ctx.GlobalString("library"); v != "" {
		conf.LibraryPath = v
	}
	if v := ctx.GlobalString("log-level"); v != "" {
		conf.LogLevel = v
	}
	if v := ctx.GlobalInt("workers"); v > 0 {
		conf.Workers = v
	}

	event.SetLevel(conf.LogLevel)

	return conf, conf.Validate()
}

// newPipeline opens a pipeline with the face parser, falling back to
// landmarks only when the model or runtime is missing or parsing is disabled.
func newPipeline(ctx *cli.Context, conf config.Config) (*pipeline.Pipeline, error) {
	return openPipeline(conf, ctx.GlobalBool("no-model"))
}

func openPipeline(conf config.Config, noModel bool) (*pipeline.Pipeline, error) {
	if noModel {
		log.Infof("config: face parsing disabled")
		return pipeline.New(pipeline.NewConfig(conf), nil), nil
	}

	p, err := pipeline.Open(conf)
	if errors.Is(err, parsing.ErrModelNotFound) || errors.Is(err, inference.ErrUnavailable) {
		log.Warnf("config: %s, measuring from landmarks only", err)
		return pipeline.New(pipeline.NewConfig(conf), nil), nil
	} else if err != nil {
		return nil, err
	}

	return p, nil
}
