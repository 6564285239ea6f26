package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"github.com/dudu/facescore/internal/pipeline"
)

// RankCommand ranks candidate faces listed in a manifest.
var RankCommand = cli.Command{
	Name:      "rank",
	Usage:     "Rank candidate faces against a target",
	ArgsUsage: "MANIFEST",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "top, n", Usage: "show only the best `N` candidates"},
		cli.BoolFlag{Name: "hints", Usage: "show sub-feature hints"},
	},
	Action: rankAction,
}

func rankAction(ctx *cli.Context) error {
	start := time.Now()

	manifestFile := ctx.Args().First()
	if manifestFile == "" {
		return cli.NewExitError("manifest file required", 1)
	}

	conf, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	m, err := readManifest(manifestFile)
	if err != nil {
		return err
	}

	p, err := newPipeline(ctx, conf)
	if err != nil {
		return err
	}
	defer p.Close()

	target, targetMat, err := analyzeInput(p, m.Target.Name, m.Target.Image, m.Target.Landmarks)
	if err != nil {
		return err
	}
	if targetMat != nil {
		targetMat.Close()
	}

	candidates := make([]pipeline.Candidate, 0, len(m.Candidates))
	for _, e := range m.Candidates {
		c, err := loadCandidate(e)
		if err != nil {
			log.Warnf("rank: skipping %s: %s", e.Name, err)
			continue
		}
		candidates = append(candidates, c)
	}

	log.Infof("rank: loaded %s", english.Plural(len(candidates), "candidate", ""))

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, summary, err := p.Rank(runCtx, target, candidates)
	if err != nil {
		return err
	}

	top := ctx.Int("top")
	if top <= 0 || top > len(results) {
		top = len(results)
	}

	for i, c := range results[:top] {
		fmt.Fprintf(os.Stdout, "%d. ", i+1)
		printComparison(os.Stdout, c, ctx.Bool("hints"), conf.ProblemThreshold)
	}

	fmt.Fprintf(os.Stdout, "\n%s\n", summary)

	log.Infof("rank: completed in %s", time.Since(start))

	return nil
}
