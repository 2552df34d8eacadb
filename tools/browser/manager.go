package browser

import (
	"fmt"
	"log/slog"
	"vtb/errors"
	"vtb/system"
	"vtb/system/command"
	"vtb/system/file"
	"vtb/system/syspkg"
	"vtb/tools"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

var _ tools.ToolManager = (*Manager)(nil)

const chromePackageName = "google-chrome-stable"

const (
	debKeyringPath  = "/etc/apt/keyrings/google-chrome.asc"
	debSourcesPath  = "/etc/apt/sources.list.d/google-chrome.list"
	debSourcesEntry = "deb [arch=amd64 signed-by=" + debKeyringPath + "] https://dl.google.com/linux/chrome/deb/ stable main\n"
)

var signingKeyUrl = "https://dl.google.com/linux/linux_signing_key.pub"
var rpmDownloadUrl = "https://dl.google.com/linux/direct/google-chrome-stable_current_x86_64.rpm"

// Manager installs the headless-capable Chrome runtime the backend's
// browser automation drives. Only the binary's presence matters to the
// application; no further interface is exposed.
type Manager struct {
	*system.LocalSystem
	BinaryPath string
	Force      bool
}

func NewManager(l *system.LocalSystem, binaryPath string, force bool) *Manager {
	if binaryPath == "" {
		binaryPath = "/usr/bin/google-chrome-stable"
	}
	return &Manager{
		LocalSystem: l,
		BinaryPath:  binaryPath,
		Force:       force,
	}
}

func (m *Manager) Installed() (bool, error) {
	exists, err := file.IsPathExist(m.BinaryPath)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing Chrome installation at '%s': %w", m.BinaryPath, err)
	}
	if exists {
		isFile, err := file.IsFile(m.BinaryPath)
		if err != nil {
			return false, fmt.Errorf("failed to check if '%s' is a file: %w", m.BinaryPath, err)
		}
		if !isFile {
			return false, fmt.Errorf("'%s' is not a file", m.BinaryPath)
		}
	}
	return exists, nil
}

func (m *Manager) Install() error {
	installed, err := m.Installed()
	if err != nil {
		return err
	}
	if installed && !m.Force {
		slog.Warn("Chrome is already installed")
		return &errors.AlreadyExistsError{Pkg: chromePackageName, Path: m.BinaryPath}
	}

	if version, err := LatestVersion(); err != nil {
		slog.Warn("Could not determine latest Chrome version: " + err.Error())
	} else {
		slog.Info("Installing Chrome " + version)
	}

	defer m.PackageManager.Clean() //nolint:errcheck

	switch {
	case m.IsDebianFamily():
		if err := m.installDeb(); err != nil {
			return err
		}
	default:
		if err := m.installRpm(); err != nil {
			return err
		}
	}

	installed, err = m.Installed()
	if err != nil {
		return err
	}
	if !installed {
		return &errors.BinaryDoesNotExistError{Pkg: chromePackageName, Path: m.BinaryPath}
	}

	slog.Info("Chrome installed successfully to " + m.BinaryPath)
	return nil
}

// installDeb wires Google's signing trust into apt and installs the
// stable channel package from the vendor repository.
func (m *Manager) installDeb() error {
	s, _ := pterm.DefaultSpinner.Start("Downloading Google signing key...")

	if err := file.AppFs.MkdirAll("/etc/apt/keyrings", 0755); err != nil {
		s.Fail("Keyring directory setup failed.")
		return fmt.Errorf("failed to create apt keyring directory: %w", err)
	}
	if err := file.DownloadFile(signingKeyUrl, debKeyringPath); err != nil {
		s.Fail("Download failed.")
		return fmt.Errorf(errors.ToolDownloadFailedErrorTpl, "Google signing key", err)
	}
	s.Success("Signing key installed.")

	slog.Debug("Writing apt sources entry to " + debSourcesPath)
	if err := file.WriteString(debSourcesPath, debSourcesEntry, 0644); err != nil {
		return fmt.Errorf("failed to write Chrome apt sources entry: %w", err)
	}

	if err := m.PackageManager.Update(); err != nil {
		return fmt.Errorf("failed to update package lists after adding Chrome repository: %w", err)
	}

	if err := m.PackageManager.Install(&syspkg.PackageList{Packages: []string{chromePackageName}}); err != nil {
		return fmt.Errorf(errors.ToolInstallFailedErrorTpl, chromePackageName, err)
	}

	return nil
}

// installRpm imports the signing key into the rpm trust store and
// installs the standalone package, which carries its own repo setup.
func (m *Manager) installRpm() error {
	downloadDir, err := afero.TempDir(file.AppFs, "", "vtb")
	if err != nil {
		return fmt.Errorf("unable to create vtb temporary directory for download: %w", err)
	}
	defer func() {
		err := file.AppFs.RemoveAll(downloadDir)
		if err != nil {
			slog.Warn("Failed to remove temporary directory '" + downloadDir + "': " + err.Error())
		}
	}()

	keyPath := downloadDir + "/linux_signing_key.pub"
	s, _ := pterm.DefaultSpinner.Start("Downloading Google signing key...")
	if err := file.DownloadFile(signingKeyUrl, keyPath); err != nil {
		s.Fail("Download failed.")
		return fmt.Errorf(errors.ToolDownloadFailedErrorTpl, "Google signing key", err)
	}
	s.Success("Download complete.")

	slog.Debug("Importing Google signing key into rpm trust store")
	cmd := command.NewShellCommand("rpm", []string{"--import", keyPath}, nil, true)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to import Google signing key: %w", err)
	}

	packagePath := downloadDir + "/chrome" + m.PackageManager.GetPackageExtension()
	s, _ = pterm.DefaultSpinner.Start("Downloading Chrome package...")
	if err := file.DownloadFile(rpmDownloadUrl, packagePath); err != nil {
		s.Fail("Download failed.")
		return fmt.Errorf(errors.ToolDownloadFailedErrorTpl, "Chrome package", err)
	}
	s.Success("Download complete.")

	if err := m.PackageManager.Install(&syspkg.PackageList{LocalPackages: []string{packagePath}}); err != nil {
		return fmt.Errorf("failed to install Chrome package located at '%s': %w", packagePath, err)
	}

	return nil
}

func (m *Manager) Update() error {
	slog.Info("Updating Chrome")
	slog.Info("Checking for existing Chrome installation")
	installed, err := m.Installed()
	if err != nil {
		return err
	}

	if installed {
		slog.Info("Existing Chrome installation found")
		if err := m.Remove(); err != nil {
			return fmt.Errorf("failed to remove existing Chrome: %w", err)
		}
	} else {
		slog.Info("Chrome is not installed")
	}

	return m.Install()
}

func (m *Manager) Remove() error {
	installed, err := m.Installed()
	if err != nil {
		return err
	}
	if !installed {
		slog.Warn("Chrome is not installed")
		return nil
	}

	slog.Info("Removing Chrome")
	if err := m.PackageManager.Remove(&syspkg.PackageList{Packages: []string{chromePackageName}}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", chromePackageName, err)
	}

	if m.IsDebianFamily() {
		for _, path := range []string{debSourcesPath, debKeyringPath} {
			exists, err := file.IsPathExist(path)
			if err != nil {
				return fmt.Errorf("failed to check for '%s': %w", path, err)
			}
			if !exists {
				continue
			}
			if err := file.AppFs.Remove(path); err != nil {
				return fmt.Errorf(errors.FileRemoveErrorTpl, path, err)
			}
		}
	}

	slog.Info("Chrome removed successfully")
	return nil
}
