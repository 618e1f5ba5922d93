package version

import (
	"runtime"
	"strings"
)

const (
	// DefaultVersionURL serves the currently published version token as plain text
	DefaultVersionURL = "https://game.endless-online.com/patch/version"
	// DefaultArchiveURL points to the patch archive. %version, %os and %arch are substituted
	DefaultArchiveURL = "https://game.endless-online.com/patch/patch.zip"
)

// ArchiveURL expands the placeholders of an archive URL template
func ArchiveURL(template, targetVersion string) string {
	url := strings.ReplaceAll(template, "%version", targetVersion)
	url = strings.ReplaceAll(url, "%os", runtime.GOOS)
	url = strings.ReplaceAll(url, "%arch", runtime.GOARCH)
	return url
}
