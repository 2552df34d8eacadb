package container

import (
	"fmt"
	"log/slog"
	"vtb/system"
	"vtb/system/syspkg"
)

// Bootstrap brings a fresh container image to the package baseline the
// backend needs: updated package lists, CA trust, and any extra system
// packages declared in the manifest. Runs at image build time only.
func Bootstrap(l *system.LocalSystem, extraPackages []string) error {
	err := l.PackageManager.Update()
	defer l.PackageManager.Clean() //nolint:errcheck
	if err != nil {
		return fmt.Errorf("failed to update package manager: %w", err)
	}

	slog.Info("Installing and configuring ca-certificates")
	packages := &syspkg.PackageList{Packages: []string{"ca-certificates"}}

	if err := l.PackageManager.Install(packages); err != nil {
		return fmt.Errorf("failed to install ca-certificates: %w", err)
	}

	if err := l.UpdateCACertificates(); err != nil {
		return fmt.Errorf("failed to update CA certificates: %w", err)
	}

	if l.PackageManager.GetBin() == "dnf" {
		slog.Info("Installing EPEL repository")
		err = l.PackageManager.Install(&syspkg.PackageList{Packages: []string{"epel-release"}})
		if err != nil {
			return fmt.Errorf("failed to install epel-release: %w", err)
		}
	}

	if len(extraPackages) > 0 {
		slog.Info("Installing base system packages")
		err = l.PackageManager.Install(&syspkg.PackageList{Packages: extraPackages})
		if err != nil {
			return fmt.Errorf("failed to install base system packages: %w", err)
		}
	}

	return nil
}
