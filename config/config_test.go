package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vtb/system/file"
	"vtb/vtbtest"
)

func TestLoad_MissingManifestUsesDefaults(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	file.AppFs = afero.NewMemMapFs()
	t.Cleanup(vtbtest.ResetAppFs)

	cfg, err := Load("/etc/vtb/vtb.yaml")
	require.NoError(err)

	assert.Equal("python3", cfg.Python.Bin)
	assert.Contains(cfg.Python.Packages, "fastapi")
	assert.Contains(cfg.Python.Packages, "uvicorn[standard]")
	assert.Equal("sqlite:///./vtu.db", cfg.Database.URL)
	assert.Equal("0.0.0.0", cfg.Service.Host)
	assert.Equal(8000, cfg.Service.Port)
	assert.Equal([]string{"python3", "-m", "uvicorn", "app.main:app"}, cfg.Service.Command)
}

func TestLoad_Manifest(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	file.AppFs = afero.NewMemMapFs()
	t.Cleanup(vtbtest.ResetAppFs)

	manifest := `
Python:
  Bin: /opt/python/default/bin/python
  Packages:
    - fastapi
    - uvicorn[standard]
System:
  Packages:
    - fonts-liberation
    - libu2f-udev
Database:
  URL: sqlite:////data/vtu.db
Service:
  Command: [python, -m, uvicorn, app.main:app]
  Port: 9000
`
	err := afero.WriteFile(file.AppFs, "/vtb.yaml", []byte(manifest), 0644)
	require.NoError(err)

	cfg, err := Load("/vtb.yaml")
	require.NoError(err)

	assert.Equal("/opt/python/default/bin/python", cfg.Python.Bin)
	assert.Equal([]string{"fastapi", "uvicorn[standard]"}, cfg.Python.Packages)
	assert.Equal([]string{"fonts-liberation", "libu2f-udev"}, cfg.System.Packages)
	assert.Equal("sqlite:////data/vtu.db", cfg.Database.URL)
	assert.Equal(9000, cfg.Service.Port)
	// Host not set in manifest, default applies.
	assert.Equal("0.0.0.0", cfg.Service.Host)
}

func TestLoad_ManifestParseError(t *testing.T) {
	require := require.New(t)

	file.AppFs = afero.NewMemMapFs()
	t.Cleanup(vtbtest.ResetAppFs)

	err := afero.WriteFile(file.AppFs, "/vtb.yaml", []byte("Python: ["), 0644)
	require.NoError(err)

	_, err = Load("/vtb.yaml")
	require.Error(err)
	require.ErrorContains(err, "failed to parse manifest")
}

func TestLoad_EnvOverrides(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	file.AppFs = afero.NewMemMapFs()
	t.Cleanup(vtbtest.ResetAppFs)

	err := afero.WriteFile(file.AppFs, "/vtb.yaml", []byte("Database:\n  URL: sqlite:///./old.db\n"), 0644)
	require.NoError(err)

	t.Setenv("DATABASE_URL", "sqlite:///./override.db")
	t.Setenv("VTB_SERVICE_PORT", "8080")

	cfg, err := Load("/vtb.yaml")
	require.NoError(err)

	assert.Equal("sqlite:///./override.db", cfg.Database.URL)
	assert.Equal(8080, cfg.Service.Port)
}
