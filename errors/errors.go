package errors

import "fmt"

// Generic errors

var FileCreateErrorTpl = "failed to create file %s: %w"
var FileOpenErrorTpl = "failed to open %s: %w"
var FileStatErrorTpl = "failed to stat %s: %w"
var FileRemoveErrorTpl = "failed to remove %s: %w"
var FileMoveErrorTpl = "failed to move file from %s to %s: %w"

// Request errors

var RequestFailedErrorTpl = "request to %s failed: %w"
var RequestCopyFailedErrorTpl = "failed to copy data to %s: %w"

// System package errors

var SystemUpdateErrorTpl = "failed to update system package manager: %w"
var SystemUpgradeErrorTpl = "failed to upgrade system package manager: %w"
var SystemPackageInstallErrorTpl = "failed to install package(s): %w"
var SystemPackageRemoveErrorTpl = "failed to remove package(s): %w"
var SystemCleanErrorTpl = "failed to clean system package manager: %w"

// Tool errors

var ToolDownloadFailedErrorTpl = "failed to download %s: %w"
var ToolInstallFailedErrorTpl = "failed to install %s: %w"

type UnsupportedOSError struct {
	Vendor  string
	Version string
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf("unsupported os %s %s", e.Vendor, e.Version)
}

type UnsupportedDatabaseError struct {
	Scheme string
}

func (e *UnsupportedDatabaseError) Error() string {
	return fmt.Sprintf("unsupported database scheme %q", e.Scheme)
}

type BinaryDoesNotExistError struct {
	Pkg  string
	Path string
}

func (e *BinaryDoesNotExistError) Error() string {
	return fmt.Sprintf("binary %s does not exist at %s", e.Pkg, e.Path)
}

type AlreadyExistsError struct {
	Pkg  string
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists at %s, use --force to reinstall", e.Pkg, e.Path)
}
