package cmd

import (
	"vtb/config"
	"vtb/tools/pydeps"

	"github.com/urfave/cli/v2"
)

func PyDepsInstall(cCtx *cli.Context) error {
	cfg, err := config.Load(cCtx.String("manifest"))
	if err != nil {
		return err
	}

	m, err := pydeps.NewManager(cfg.Python.Bin)
	if err != nil {
		return err
	}

	if cCtx.Bool("ensure-pip") {
		if err := m.EnsurePip(); err != nil {
			return err
		}
	}

	// Command-line packages replace the manifest set, they do not extend it.
	packageList := &pydeps.PackageList{
		Packages:     cfg.Python.Packages,
		PackageFiles: cfg.Python.RequirementsFiles,
	}
	if packages := cCtx.StringSlice("package"); len(packages) > 0 {
		packageList.Packages = packages
		packageList.PackageFiles = nil
	}
	if packageFiles := cCtx.StringSlice("package-list-file"); len(packageFiles) > 0 {
		packageList.PackageFiles = packageFiles
	}

	return m.Install(packageList, nil)
}
