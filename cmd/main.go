package cmd

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

func Cli() *cli.App {
	app := &cli.App{
		Name:        "vtb",
		Usage:       "VTU Backend Bootstrapper",
		Description: "Provision a container image and start the VTU backend service",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug mode",
				Action: func(c *cli.Context, debugMode bool) error {
					if debugMode {
						slog.Info("Debug mode enabled")
						pterm.DefaultLogger.Level = pterm.LogLevelDebug
					}
					return nil
				},
			},
			manifestFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:     "init",
				Usage:    "Initialize the container image with the base package set and CA trust",
				Category: "build",
				Action:   Init,
			},
			{
				Name:     "browser",
				Usage:    "Install or manage the Chrome browser runtime",
				Category: "build",
				Subcommands: []*cli.Command{
					{
						Name:  "install",
						Usage: "Install Chrome and its signing trust",
						Flags: []cli.Flag{
							binaryPathFlag("Path Chrome is expected to install to", "/usr/bin/google-chrome-stable"),
							forceFlag("Force installation of Chrome if it is already installed"),
						},
						Action: BrowserInstall,
					},
					{
						Name:  "upgrade",
						Usage: "Remove and reinstall Chrome",
						Flags: []cli.Flag{
							binaryPathFlag("Path Chrome is expected to install to", "/usr/bin/google-chrome-stable"),
						},
						Action: BrowserUpgrade,
					},
					{
						Name:   "remove",
						Usage:  "Remove Chrome and its signing trust",
						Flags:  []cli.Flag{},
						Action: BrowserRemove,
					},
					{
						Name:   "version",
						Usage:  "Print the latest stable Chrome version",
						Action: BrowserVersion,
					},
				},
			},
			{
				Name:     "pydeps",
				Usage:    "Install the backend's Python dependencies",
				Category: "build",
				Subcommands: []*cli.Command{
					{
						Name:  "install",
						Usage: "Install Python dependencies from the manifest, flags, or requirements files",
						Flags: []cli.Flag{
							packageFlag("Python package(s) to install"),
							packageFileFlag("Path to requirements file(s) to install"),
							&cli.BoolFlag{
								Name:  "ensure-pip",
								Usage: "Run ensurepip before installing",
							},
						},
						Action: PyDepsInstall,
					},
				},
			},
			{
				Name:     "schema",
				Usage:    "Manage the backend database schema",
				Category: "runtime",
				Subcommands: []*cli.Command{
					{
						Name:  "init",
						Usage: "Ensure the backend's database tables exist",
						Flags: []cli.Flag{
							databaseURLFlag(),
							waitFlag(),
							waitTimeoutFlag(),
						},
						Action: SchemaInit,
					},
				},
			},
			{
				Name:     "start",
				Usage:    "Initialize the schema, then start the backend service",
				Category: "runtime",
				Flags: []cli.Flag{
					databaseURLFlag(),
					waitFlag(),
					waitTimeoutFlag(),
				},
				Action: Start,
			},
			{
				Name:     "syspkg",
				Usage:    "Manage system package installations",
				Category: "build",
				Subcommands: []*cli.Command{
					{
						Name:   "update",
						Usage:  "Update package lists",
						Action: SysPkgUpdate,
					},
					{
						Name:  "upgrade",
						Usage: "Upgrade installed packages",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "dist",
								Usage: "Run dist-upgrade on Debian-based systems",
							},
						},
						Action: SysPkgUpgrade,
					},
					{
						Name:  "install",
						Usage: "Install system packages",
						Flags: []cli.Flag{
							packageFlag("Package(s) to install"),
							packageFileFlag("Path to file containing package names to install"),
						},
						Action: SysPkgInstall,
					},
					{
						Name:  "uninstall",
						Usage: "Uninstall system packages",
						Flags: []cli.Flag{
							packageFlag("Package(s) to uninstall"),
						},
						Action: SysPkgUninstall,
					},
					{
						Name:   "clean",
						Usage:  "Clean up package caches",
						Action: SysPkgClean,
					},
				},
			},
		},
	}
	return app
}
