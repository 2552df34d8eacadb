package cmd

import (
	"time"
	"vtb/boot"
	"vtb/config"
	"vtb/db"
	"vtb/service"

	"github.com/urfave/cli/v2"
)

// Start runs the container-start sequence: ensure the database schema,
// then hand off to the service process. The service never starts if any
// earlier step fails.
func Start(cCtx *cli.Context) error {
	cfg, err := config.Load(cCtx.String("manifest"))
	if err != nil {
		return err
	}

	url, wait, timeout := schemaArgs(cCtx, cfg)

	launcher, err := service.NewLauncher(cfg.Service)
	if err != nil {
		return err
	}

	steps := []boot.Step{
		{
			Name: "init-schema",
			Run: func() error {
				if wait != "" {
					if err := db.Wait(wait, timeout, time.Second); err != nil {
						return err
					}
				}
				return db.NewInitializer(url).EnsureSchema()
			},
		},
		{
			Name: "serve",
			Run:  launcher.Run,
		},
	}

	return boot.Run(steps)
}
