package cmd

import (
	"fmt"
	"vtb/system"
	"vtb/tools/browser"

	"github.com/urfave/cli/v2"
)

func BrowserInstall(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	m := browser.NewManager(l, cCtx.String("binary-path"), cCtx.Bool("force"))
	return m.Install()
}

func BrowserUpgrade(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	m := browser.NewManager(l, cCtx.String("binary-path"), true)
	return m.Update()
}

func BrowserRemove(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	m := browser.NewManager(l, "", false)
	return m.Remove()
}

func BrowserVersion(cCtx *cli.Context) error {
	version, err := browser.LatestVersion()
	if err != nil {
		return err
	}
	fmt.Println(version)
	return nil
}
