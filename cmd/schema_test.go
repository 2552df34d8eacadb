package cmd

import (
	"flag"
	"testing"
	"time"
	"vtb/config"
	"vtb/system/file"
	"vtb/vtbtest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newSchemaFlagContext(t *testing.T, values map[string]string) *cli.Context {
	set := flag.NewFlagSet("schema", flag.ContinueOnError)
	set.String("database-url", "", "")
	set.String("wait", "", "")
	set.Duration("wait-timeout", 0, "")
	for name, value := range values {
		require.NoError(t, set.Set(name, value))
	}
	return cli.NewContext(nil, set, nil)
}

func Test_schemaArgs(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name        string
		flags       map[string]string
		cfg         *config.Config
		wantURL     string
		wantWait    string
		wantTimeout time.Duration
	}{
		{
			name:        "manifest defaults",
			flags:       nil,
			cfg:         config.Default(),
			wantURL:     "sqlite:///./vtu.db",
			wantWait:    "",
			wantTimeout: defaultWaitTimeout,
		},
		{
			name:        "flag beats manifest",
			flags:       map[string]string{"database-url": "sqlite:///./flag.db"},
			cfg:         config.Default(),
			wantURL:     "sqlite:///./flag.db",
			wantWait:    "",
			wantTimeout: defaultWaitTimeout,
		},
		{
			name: "wait endpoint and timeout",
			flags: map[string]string{
				"wait":         "db.internal:5432",
				"wait-timeout": "45s",
			},
			cfg:         config.Default(),
			wantURL:     "sqlite:///./vtu.db",
			wantWait:    "db.internal:5432",
			wantTimeout: 45 * time.Second,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cCtx := newSchemaFlagContext(t, tt.flags)

			url, wait, timeout := schemaArgs(cCtx, tt.cfg)
			assert.Equal(tt.wantURL, url)
			assert.Equal(tt.wantWait, wait)
			assert.Equal(tt.wantTimeout, timeout)
		})
	}
}

func Test_schemaArgs_FlagBeatsEnv(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	file.AppFs = afero.NewMemMapFs()
	t.Cleanup(vtbtest.ResetAppFs)
	t.Setenv("DATABASE_URL", "sqlite:///./env.db")

	cfg, err := config.Load("/vtb.yaml")
	require.NoError(err)
	require.Equal("sqlite:///./env.db", cfg.Database.URL)

	cCtx := newSchemaFlagContext(t, map[string]string{"database-url": "sqlite:///./flag.db"})
	url, _, _ := schemaArgs(cCtx, cfg)
	assert.Equal("sqlite:///./flag.db", url)
}
