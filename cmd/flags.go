package cmd

import "github.com/urfave/cli/v2"

const categoryPackage = "Package installation: "

func manifestFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "Path to the bootstrap manifest",
		Value:   "vtb.yaml",
	}
}

func packageFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "package",
		Aliases:  []string{"p"},
		Usage:    usage,
		Category: categoryPackage,
	}
}

func packageFileFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "package-list-file",
		Aliases:  []string{"r"},
		Usage:    usage,
		Category: categoryPackage,
	}
}

func forceFlag(usage string) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   usage,
	}
}

func binaryPathFlag(usage, defaultText string) *cli.StringFlag {
	f := &cli.StringFlag{
		Name:  "binary-path",
		Usage: usage,
	}
	if defaultText != "" {
		f.DefaultText = defaultText
	}

	return f
}

func databaseURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "database-url",
		Usage:   "Database URL to initialize",
		EnvVars: []string{"DATABASE_URL"},
	}
}

func waitFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "wait",
		Usage: "host:port of a database endpoint to wait for before initializing",
	}
}

func waitTimeoutFlag() *cli.DurationFlag {
	return &cli.DurationFlag{
		Name:        "wait-timeout",
		Usage:       "How long to wait for the database endpoint",
		DefaultText: "30s",
	}
}
