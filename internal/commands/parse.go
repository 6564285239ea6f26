package commands

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"gocv.io/x/gocv"

	"github.com/dudu/facescore/internal/ui"
)

// ParseCommand analyzes a single face.
var ParseCommand = cli.Command{
	Name:      "parse",
	Usage:     "Parse and measure a single face",
	ArgsUsage: "IMAGE",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "landmarks, lm", Usage: "landmarks JSON `FILE`"},
		cli.StringFlag{Name: "overlay, o", Usage: "write the annotated image to `FILE`"},
		cli.BoolFlag{Name: "preview, p", Usage: "show the annotated image"},
	},
	Action: parseAction,
}

func parseAction(ctx *cli.Context) error {
	imageFile := ctx.Args().First()
	if imageFile == "" {
		return cli.NewExitError("image file required", 1)
	}

	conf, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	p, err := newPipeline(ctx, conf)
	if err != nil {
		return err
	}
	defer p.Close()

	mat, img, err := loadImage(imageFile)
	if err != nil {
		return err
	}
	defer mat.Close()

	var lm []float64
	if f := ctx.String("landmarks"); f != "" {
		if lm, err = readLandmarks(f); err != nil {
			return err
		}
	}

	face := p.AnalyzeFace(imageFile, img, lm)

	if face.Parsing != nil {
		fmt.Fprintf(os.Stdout, "%s: %s (%s)\n", imageFile, face.Parsing.Summary(), face.Parsing.Source)
	}
	if lm != nil {
		printFace(os.Stdout, face)
	}
	printTiming(os.Stdout, face.Timing)

	ui.DrawFace(mat, face)

	if out := ctx.String("overlay"); out != "" {
		if !gocv.IMWrite(out, *mat) {
			return fmt.Errorf("failed to write overlay: %s", out)
		}
		log.Infof("parse: overlay written to %s", out)
	}

	if ctx.Bool("preview") {
		window := ui.NewWindow("facescore")
		defer window.Close()
		window.Show(mat, 0)
	}

	return nil
}
