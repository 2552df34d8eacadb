package cmd

import (
	"vtb/config"
	"vtb/system"
	"vtb/tools/container"

	"github.com/urfave/cli/v2"
)

func Init(cCtx *cli.Context) error {
	if err := system.RequireSudo(); err != nil {
		return err
	}

	cfg, err := config.Load(cCtx.String("manifest"))
	if err != nil {
		return err
	}

	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	return container.Bootstrap(l, cfg.System.Packages)
}
