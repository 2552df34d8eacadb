package system

import (
	"fmt"
	"vtb/errors"
	"vtb/system/command"
)

// UpdateCACertificates refreshes the system CA trust store so package
// repository and download TLS verification works on a freshly provisioned
// image.
func (l *LocalSystem) UpdateCACertificates() error {
	var updateBin string

	switch l.Vendor {
	case "ubuntu", "debian":
		updateBin = "update-ca-certificates"
	case "almalinux", "centos", "rockylinux", "rhel":
		updateBin = "update-ca-trust"
	default:
		return &errors.UnsupportedOSError{Vendor: l.Vendor, Version: l.Version}
	}

	s := command.NewShellCommand(updateBin, nil, nil, true)
	err := s.Run()
	if err != nil {
		return fmt.Errorf("failed to update CA certificates: %w", err)
	}

	return nil
}
