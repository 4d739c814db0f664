package main

import (
	"log"
	"os"

	"github.com/dtnitsch/tweet-corpus/internal/compile"
	"github.com/dtnitsch/tweet-corpus/internal/inspect"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "tweet-corpus",
		Usage: "build per-language word frequency corpora from compressed tweet dumps",
		Commands: []*cli.Command{
			{
				Name:   "compile",
				Usage:  "compile a corpus from a directory of .bz2 tweet dumps",
				Action: compile.CompileAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "directory tree containing .bz2 tweet dumps",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Value:   "output",
						Usage:   "directory for per-language corpus files",
					},
					&cli.Uint64Flag{
						Name:  "threshold",
						Value: 100,
						Usage: "minimum global count a word needs to be kept",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of concurrent file processors (default: GOMAXPROCS)",
					},
					&cli.BoolFlag{
						Name:  "detect-language",
						Usage: "detect the language of records missing a lang tag",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "also persist the finished table to this SQLite database",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file (flags override file values)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "inspect",
				Usage:  "query a persisted run",
				Action: inspect.InspectAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Required: true,
						Usage:    "SQLite database written by compile --db",
					},
					&cli.Int64Flag{
						Name:  "run",
						Usage: "run ID to inspect (default: latest)",
					},
					&cli.StringFlag{
						Name:    "language",
						Aliases: []string{"l"},
						Usage:   "language tag to list words for (default: list languages)",
					},
					&cli.IntFlag{
						Name:  "top",
						Value: 25,
						Usage: "number of words to print",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
