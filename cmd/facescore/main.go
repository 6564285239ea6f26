package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/dudu/facescore/internal/commands"
)

var version = "development"

func main() {
	app := cli.NewApp()
	app.Name = "facescore"
	app.Usage = "Face similarity scoring from segmentation and landmark geometry"
	app.Version = version
	app.EnableBashCompletion = true
	app.Flags = commands.GlobalFlags
	app.Commands = []cli.Command{
		commands.CompareCommand,
		commands.ParseCommand,
		commands.RankCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
