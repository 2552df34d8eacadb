package file

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"vtb/errors"

	"github.com/spf13/afero"
)

var AppFs = afero.NewOsFs()

func IsPathExist(path string) (bool, error) {
	return afero.Exists(AppFs, path)
}

func IsFile(path string) (bool, error) {
	info, err := AppFs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf(errors.FileStatErrorTpl, path, err)
	}
	return !info.IsDir(), nil
}

func Stat(path string) (os.FileInfo, error) {
	i, err := AppFs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf(errors.FileStatErrorTpl, path, err)
	}
	return i, nil
}

func Create(path string) (afero.File, error) {
	slog.Debug("Creating file: " + path)
	fh, err := AppFs.Create(path)
	if err != nil {
		return nil, fmt.Errorf(errors.FileCreateErrorTpl, path, err)
	}
	slog.Debug("File created")
	return fh, nil
}

func Open(path string) (afero.File, error) {
	fh, err := AppFs.Open(path)
	if err != nil {
		return nil, fmt.Errorf(errors.FileOpenErrorTpl, path, err)
	}
	return fh, nil
}

// WriteString writes content to path, replacing any existing file.
func WriteString(path, content string, perm os.FileMode) error {
	slog.Debug("Writing file: " + path)
	if err := afero.WriteFile(AppFs, path, []byte(content), perm); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func Move(src, dest string) error {
	slog.Debug("Moving file from " + src + " to " + dest)

	if err := AppFs.Rename(src, dest); err == nil {
		slog.Debug("Move complete")
		return nil
	}

	// Rename fails across filesystems, fall back to copy + remove.
	if err := Copy(src, dest); err != nil {
		return fmt.Errorf(errors.FileMoveErrorTpl, src, dest, err)
	}
	if err := AppFs.Remove(src); err != nil {
		return fmt.Errorf(errors.FileRemoveErrorTpl, src, err)
	}
	slog.Debug("Move complete")
	return nil
}

func Copy(src, dest string) error {
	slog.Debug("Copying file from " + src + " to " + dest)

	sourceFileStat, err := AppFs.Stat(src)
	if err != nil {
		return fmt.Errorf(errors.FileStatErrorTpl, src, err)
	}

	if !sourceFileStat.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	sourceFh, err := Open(src)
	if err != nil {
		return err
	}
	defer sourceFh.Close()

	destinationFh, err := Create(dest)
	if err != nil {
		return err
	}
	defer destinationFh.Close()

	_, err = io.Copy(destinationFh, sourceFh)
	if err != nil {
		return fmt.Errorf("failed to copy '%s' to '%s': %w", src, dest, err)
	}

	slog.Debug("Copy complete")

	return nil
}

func DownloadFile(url string, filepath string) error {
	slog.Debug("Downloading file from " + url + " to " + filepath)

	request, _ := http.NewRequest(http.MethodGet, url, nil)
	client := &http.Client{}

	resp, err := client.Do(request)
	if err != nil {
		return fmt.Errorf(errors.RequestFailedErrorTpl, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file with status '%s'", resp.Status)
	}

	newFh, err := Create(filepath)
	if err != nil {
		return err
	}
	defer newFh.Close()

	_, err = io.Copy(newFh, resp.Body)
	if err != nil {
		return fmt.Errorf(errors.RequestCopyFailedErrorTpl, filepath, err)
	}

	slog.Debug("Download complete")

	return nil
}
