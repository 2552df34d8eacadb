package cmd

import (
	"vtb/system"
	"vtb/system/syspkg"

	"github.com/urfave/cli/v2"
)

func SysPkgUpdate(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}
	return l.PackageManager.Update()
}

func SysPkgUpgrade(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}
	return l.PackageManager.Upgrade(cCtx.Bool("dist"))
}

func SysPkgInstall(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}
	return l.PackageManager.Install(&syspkg.PackageList{
		Packages:         cCtx.StringSlice("package"),
		PackageListFiles: cCtx.StringSlice("package-list-file"),
	})
}

func SysPkgUninstall(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}
	return l.PackageManager.Remove(&syspkg.PackageList{
		Packages: cCtx.StringSlice("package"),
	})
}

func SysPkgClean(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}
	return l.PackageManager.Clean()
}
