package pydeps

import (
	"fmt"
	"log/slog"
	"vtb/system/command"
	"vtb/system/file"
)

// PackageList is the declarative dependency set of the backend: bare
// requirement specifiers plus optional requirements files.
type PackageList struct {
	Packages     []string
	PackageFiles []string
}

// Manager installs the backend's Python dependencies with pip. The whole
// install aborts on the first failing package; pip itself makes repeated
// installs of an already-satisfied requirement a no-op.
type Manager struct {
	PythonBin string
}

func NewManager(pythonBin string) (*Manager, error) {
	if pythonBin == "" {
		return nil, fmt.Errorf("python binary path is required")
	}
	return &Manager{PythonBin: pythonBin}, nil
}

func (m *Manager) Available() (bool, error) {
	// A relative binary name resolves through PATH at exec time, the
	// filesystem check only applies to absolute paths.
	if m.PythonBin[0] != '/' {
		return true, nil
	}
	exists, err := file.IsFile(m.PythonBin)
	if err != nil {
		return false, fmt.Errorf("failed to check for python binary at '%s': %w", m.PythonBin, err)
	}
	return exists, nil
}

func (m *Manager) Install(packageList *PackageList, options []string) error {
	slog.Debug("Python binary path: " + m.PythonBin)

	available, err := m.Available()
	if err != nil {
		return err
	}
	if !available {
		return fmt.Errorf("python binary '%s' does not exist", m.PythonBin)
	}

	defer m.Clean() //nolint:errcheck

	for _, name := range packageList.Packages {
		slog.Info("Installing Python package " + name)

		args := []string{"-m", "pip", "install", name}
		if len(options) > 0 {
			args = append(args, options...)
		}
		s := command.NewShellCommand(m.PythonBin, args, nil, true)
		if err := s.Run(); err != nil {
			return fmt.Errorf("failed to install dependency %s: %w", name, err)
		}
	}

	for _, requirementsFile := range packageList.PackageFiles {
		slog.Info("Installing Python requirements file " + requirementsFile)

		args := []string{"-m", "pip", "install", "-r", requirementsFile}
		if len(options) > 0 {
			args = append(args, options...)
		}
		s := command.NewShellCommand(m.PythonBin, args, nil, true)
		if err := s.Run(); err != nil {
			return fmt.Errorf("failed to install requirements file %s: %w", requirementsFile, err)
		}
	}

	return nil
}

func (m *Manager) EnsurePip() error {
	slog.Debug("Ensuring pip is installed")

	args := []string{"-m", "ensurepip", "--upgrade"}
	s := command.NewShellCommand(m.PythonBin, args, nil, true)
	if err := s.Run(); err != nil {
		return fmt.Errorf("ensurepip failed: %w", err)
	}

	return nil
}

func (m *Manager) Clean() error {
	slog.Info("Purging pip cache")

	args := []string{"-m", "pip", "cache", "purge"}
	s := command.NewShellCommand(m.PythonBin, args, nil, true)
	err := s.Run()
	if err != nil {
		return fmt.Errorf("failed to purge pip cache: %w", err)
	}

	return nil
}
