package updater

import (
	"fmt"
	"runtime"
	"strings"
)

// ArchiveName returns the release archive name for binName on the running
// platform: <bin>_<os>_<arch>.tar.gz, or .zip on Windows.
func ArchiveName(binName string) string {
	ext := ".tar.gz"
	if runtime.GOOS == "windows" {
		ext = ".zip"
	}
	return fmt.Sprintf("%s_%s_%s%s", binName, runtime.GOOS, runtime.GOARCH, ext)
}

// SelectAssetForPlatform finds the asset matching the current OS/arch. An
// exact archive name wins; otherwise any archive containing "<os>_<arch>".
func SelectAssetForPlatform(binName string, assets []Asset) (*Asset, error) {
	expected := ArchiveName(binName)
	for i := range assets {
		if assets[i].Name == expected {
			return &assets[i], nil
		}
	}

	pattern := fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)
	for i := range assets {
		if strings.Contains(assets[i].Name, pattern) && isArchive(assets[i].Name) {
			return &assets[i], nil
		}
	}

	return nil, fmt.Errorf("no asset found for %s/%s (expected %s)", runtime.GOOS, runtime.GOARCH, expected)
}

func isArchive(name string) bool {
	return strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".zip")
}
