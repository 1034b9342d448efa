package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/BasicFront/lib/config"
	"github.com/vyPal/BasicFront/util"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "settings",
		Usage:     "Write the analyzer settings to a file",
		Category:  "settings",
		ArgsUsage: "[file]",
		Description: "Writes the settings in effect (the defaults, or the file given with --settings)." +
			"\nAsks for the file name when none is given." +
			"\nThe format follows the file extension unless --format is given.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "yaml, json or toml",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file without asking",
			},
		},
		Action: writeSettings,
	})
}

func writeSettings(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return cli.Exit(color.RedString("Error loading settings: %s", err), 1)
	}

	path := c.Args().First()
	if path == "" {
		path = util.PromptString("Settings file", "basicfront.yaml")
	}
	format := config.DetectFormat(path)
	if c.IsSet("format") {
		if format, err = config.ParseFormat(c.String("format")); err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}
	}

	err = s.Save(path, format, c.Bool("force"))
	if errors.Is(err, config.ErrExists) {
		if !util.PromptYN(path+" already exists. Overwrite?", false) {
			return nil
		}
		err = s.Save(path, format, true)
	}
	if err != nil {
		return cli.Exit(color.RedString("Error saving settings: %s", err), 1)
	}

	fmt.Println(color.GreenString("Wrote %s settings to %s", format, path))
	return nil
}
