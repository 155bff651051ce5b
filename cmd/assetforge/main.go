package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/assetforge"
	"github.com/bodgit/assetforge/pipeline"
	"github.com/bodgit/assetforge/pixel"
	"github.com/urfave/cli/v2"
)

const defaultDB = ".assetforge.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newAssetForge(c *cli.Context) (*assetforge.AssetForge, func(), error) {
	logger := newLogger(c)

	if c.Bool("no-cache") {
		return assetforge.New(nil, logger), func() {}, nil
	}

	cache, err := assetforge.NewCache(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	return assetforge.New(cache, logger), func() { cache.Close() }, nil
}

// jobFromFlags builds a job from the process command flags.
func jobFromFlags(c *cli.Context) (*assetforge.Job, error) {
	j := &assetforge.Job{
		Class:      c.String("class"),
		Origin:     c.String("origin"),
		Pixelate:   c.Int("pixelate"),
		Background: c.String("background"),
		Colors:     c.Int("colors"),
	}

	if s := c.String("crop"); s != "" {
		r, err := pixel.ParseRect(s)
		if err != nil {
			return nil, err
		}
		j.Crop = &r
	}

	if s := c.String("key-color"); s != "" {
		j.Key = &assetforge.KeyJob{
			Color:     s,
			Tolerance: c.Float64("key-tolerance"),
			Mode:      c.String("key-mode"),
			Corners:   true,
		}
	}

	if stops := c.StringSlice("gradient"); len(stops) > 0 {
		j.Quantize = &assetforge.QuantizeJob{
			Gradient: stops,
			Samples:  c.Int("samples"),
			Offset:   c.Float64("brightness"),
		}
	}

	// Catch bad flags before touching any files
	if _, err := j.Config(1, 1); err != nil {
		return nil, err
	}

	return j, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "assetforge"
	app.Usage = "Game asset conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"ASSETFORGE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to cache database",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "always reprocess images",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "process",
			Usage:       "Convert a single image into an asset",
			Description: "",
			ArgsUsage:   "FILE OUTPUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "class",
					Value: pipeline.ClassResource.String(),
					Usage: "asset class, one of player, resource, station or goal",
				},
				&cli.StringFlag{
					Name:  "crop",
					Usage: "crop rectangle as x,y,width,height",
				},
				&cli.StringFlag{
					Name:  "origin",
					Value: assetforge.OriginTopLeft,
					Usage: "origin of the crop rectangle, top-left or bottom-left",
				},
				&cli.IntFlag{
					Name:  "pixelate",
					Usage: "pixelate to this many blocks across",
				},
				&cli.StringSliceFlag{
					Name:  "gradient",
					Usage: "posterize using these gradient stops",
				},
				&cli.IntFlag{
					Name:  "samples",
					Value: 8,
					Usage: "number of gradient samples to posterize with",
				},
				&cli.Float64Flag{
					Name:  "brightness",
					Usage: "brightness offset applied before posterizing",
				},
				&cli.StringFlag{
					Name:  "key-color",
					Usage: "make background pixels of this color transparent",
				},
				&cli.Float64Flag{
					Name:  "key-tolerance",
					Value: 0.1,
					Usage: "maximum color distance for keyed pixels",
				},
				&cli.StringFlag{
					Name:  "key-mode",
					Value: "floodfill",
					Usage: "keying mode, global or floodfill",
				},
				&cli.StringFlag{
					Name:  "background",
					Usage: "canvas background color",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "limit the output palette to this many colors",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				job, err := jobFromFlags(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				a, done, err := newAssetForge(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer done()

				if _, err := a.Process(c.Args().Get(0), c.Args().Get(1), job); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert a directory of images as described by a job file",
			Description: "",
			ArgsUsage:   "JOBFILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Usage: "number of images to process at once, overrides the job file",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				job, err := assetforge.LoadJob(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				if c.IsSet("workers") {
					job.Workers = c.Int("workers")
				}

				// Relative paths in the job file are relative to the file
				dir := filepath.Dir(c.Args().First())
				if job.Input != "" && !filepath.IsAbs(job.Input) {
					job.Input = filepath.Join(dir, job.Input)
				}
				if job.Output != "" && !filepath.IsAbs(job.Output) {
					job.Output = filepath.Join(dir, job.Output)
				}

				a, done, err := newAssetForge(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer done()

				results, err := a.Batch(context.Background(), job)
				if err != nil {
					return cli.Exit(err, 1)
				}

				var skipped int
				for _, r := range results {
					if r.Skipped {
						skipped++
					}
				}
				fmt.Printf("%d assets, %d up to date\n", len(results), skipped)

				return nil
			},
		},
		{
			Name:        "classes",
			Usage:       "List the asset classes and their canvas sizes",
			Description: "",
			Action: func(c *cli.Context) error {
				for _, class := range pipeline.Classes() {
					canvas, err := class.Canvas()
					if err != nil {
						return cli.Exit(err, 1)
					}
					fmt.Printf("%-10s %s\n", class, canvas)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
