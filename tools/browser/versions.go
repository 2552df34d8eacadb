package browser

import (
	"fmt"
	"io"
	"net/http"
	"vtb/errors"

	"github.com/tidwall/gjson"
)

var chromeVersionHistoryUrl = "https://versionhistory.googleapis.com/v1/chrome/platforms/linux/channels/stable/versions"

// LatestVersion queries the Chrome version history API for the newest
// stable release on Linux.
func LatestVersion() (string, error) {
	resp, err := http.Get(chromeVersionHistoryUrl)
	if err != nil {
		return "", fmt.Errorf(errors.RequestFailedErrorTpl, chromeVersionHistoryUrl, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("version history request failed with status '%s'", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read version history response: %w", err)
	}

	version := gjson.GetBytes(body, "versions.0.version")
	if !version.Exists() || version.String() == "" {
		return "", fmt.Errorf("no stable Chrome version found in version history response")
	}

	return version.String(), nil
}
