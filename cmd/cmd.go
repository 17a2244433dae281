package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
)

const (
	ServiceName      = "vandapay-cli"
	ServiceNamespace = "vandapay"
)

func Run() error {

	app := &cli.App{
		Name:  "vandapay",
		Usage: "VandaPay corporate wallet console",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config_file",
				Aliases: []string{"c"},
				Usage:   "Configuration file path",
				EnvVars: []string{"VANDAPAY_CONFIG"},
			},
		},
		Version:  Version(),
		Commands: commands,
	}

	return app.Run(os.Args)
}

var commands []*cli.Command

func Register(cmds ...*cli.Command) {
	commands = append(commands, cmds...)
}
