package commands

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"gocv.io/x/gocv"

	"github.com/dudu/facescore/internal/ui"
)

// CompareCommand scores one candidate face against a target.
var CompareCommand = cli.Command{
	Name:  "compare",
	Usage: "Score a candidate face against a target",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "target-image, ti", Usage: "target image `FILE`"},
		cli.StringFlag{Name: "target-landmarks, tl", Usage: "target landmarks JSON `FILE`"},
		cli.StringFlag{Name: "candidate-image, ci", Usage: "candidate image `FILE`"},
		cli.StringFlag{Name: "candidate-landmarks, cl", Usage: "candidate landmarks JSON `FILE`"},
		cli.BoolFlag{Name: "hints", Usage: "show sub-feature hints"},
		cli.StringFlag{Name: "overlay, o", Usage: "write the annotated candidate image to `FILE`"},
		cli.BoolFlag{Name: "preview, p", Usage: "show the annotated candidate image"},
	},
	Action: compareAction,
}

func compareAction(ctx *cli.Context) error {
	conf, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	p, err := newPipeline(ctx, conf)
	if err != nil {
		return err
	}
	defer p.Close()

	target, targetMat, err := analyzeInput(p, "target", ctx.String("target-image"), ctx.String("target-landmarks"))
	if err != nil {
		return err
	}
	if targetMat != nil {
		defer targetMat.Close()
	}

	candidate, candidateMat, err := analyzeInput(p, "candidate", ctx.String("candidate-image"), ctx.String("candidate-landmarks"))
	if err != nil {
		return err
	}
	if candidateMat != nil {
		defer candidateMat.Close()
	}

	c := p.Compare(target, candidate)

	printComparison(os.Stdout, c, ctx.Bool("hints"), conf.ProblemThreshold)
	printTiming(os.Stdout, p.LastTiming())

	if candidateMat == nil {
		return nil
	}

	ui.DrawComparison(candidateMat, c)

	if out := ctx.String("overlay"); out != "" {
		if !gocv.IMWrite(out, *candidateMat) {
			return fmt.Errorf("failed to write overlay: %s", out)
		}
		log.Infof("compare: overlay written to %s", out)
	}

	if ctx.Bool("preview") {
		window := ui.NewWindow("facescore")
		defer window.Close()
		window.Show(candidateMat, 0)
	}

	return nil
}
