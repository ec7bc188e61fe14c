package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"igpulse/internal/analyze"
	"igpulse/models"
)

func main() {
	app := &cli.App{
		Name:      "igpulse",
		Usage:     "analyze an account's recent posts and suggest engagement improvements",
		ArgsUsage: "<account> [max_posts] [mode]",
		Description: "Fetches recent posts (mock fixtures or the live profile), derives mood, " +
			"hashtag, comment-tone and hook-ratio statistics, and emits a JSON summary " +
			"or a CSV report with suggestions.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "json",
				Usage:   "output format: json or csv",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "ig_posts.csv",
				Usage:   "CSV report path (csv format only)",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   models.DefaultWorkerCount,
				Usage:   "annotation worker count",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Action: analyze.AnalyzeAction,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
