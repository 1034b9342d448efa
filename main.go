package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/BasicFront/lib/config"
)

var commands []*cli.Command

func newApp() *cli.App {
	return &cli.App{
		Name:                   "basicfront",
		Usage:                  "Lexical and semantic analysis for a small BASIC dialect",
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "settings",
				Aliases: []string{"c"},
				Usage:   "Load analyzer settings from a json, yaml or toml file",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as json",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log what the analyzers are doing",
			},
		},
		Before: func(c *cli.Context) error {
			log.SetFlags(0)
			log.SetPrefix(color.HiBlackString("basicfront: "))
			if !c.Bool("verbose") {
				log.SetOutput(io.Discard)
			}
			return nil
		},
		Commands: commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))
		os.Exit(1)
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input-str",
			Aliases: []string{"s"},
			Usage:   "Analyze a string instead of a file",
		},
		&cli.BoolFlag{
			Name:    "upper",
			Aliases: []string{"u"},
			Usage:   "Upper-case the source before analysis",
		},
	}
}

func loadSettings(c *cli.Context) (*config.Settings, error) {
	path := c.String("settings")
	if path == "" {
		return config.Default(), nil
	}
	log.Printf("loading settings from %s", path)
	return config.Load(path)
}

// readSource returns the text to analyze and a name for it. The
// --input-str flag takes precedence over the file at path.
func readSource(c *cli.Context, path string) (string, string, error) {
	var src, name string
	if c.IsSet("input-str") {
		src, name = c.String("input-str"), "<input>"
	} else {
		name = path
		if name == "" {
			return "", "", cli.Exit(color.RedString("Error: No file specified"), 1)
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return "", "", cli.Exit(color.RedString("Error reading %s: %s", name, err), 1)
		}
		src = string(data)
	}

	// Line breaks are \n only.
	src = strings.ReplaceAll(src, "\r\n", "\n")
	if c.Bool("upper") {
		src = strings.ToUpper(src)
	}
	return src, name, nil
}
