package cmd

import (
	"time"
	"vtb/config"
	"vtb/db"

	"github.com/urfave/cli/v2"
)

const defaultWaitTimeout = 30 * time.Second

func SchemaInit(cCtx *cli.Context) error {
	cfg, err := config.Load(cCtx.String("manifest"))
	if err != nil {
		return err
	}

	url, wait, timeout := schemaArgs(cCtx, cfg)

	if wait != "" {
		if err := db.Wait(wait, timeout, time.Second); err != nil {
			return err
		}
	}

	return db.NewInitializer(url).EnsureSchema()
}

// schemaArgs resolves the database settings shared by `schema init` and
// `start` against an already-loaded manifest: flag beats environment
// beats manifest.
func schemaArgs(cCtx *cli.Context, cfg *config.Config) (url, wait string, timeout time.Duration) {
	url = cfg.Database.URL
	if flagURL := cCtx.String("database-url"); flagURL != "" {
		url = flagURL
	}

	timeout = cCtx.Duration("wait-timeout")
	if timeout == 0 {
		timeout = defaultWaitTimeout
	}

	return url, cCtx.String("wait"), timeout
}
