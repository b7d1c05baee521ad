package updater

import (
	"context"
	"fmt"
	"os"

	"github.com/alvivar/jam/internal/output"
)

// Install downloads release, verifies it, and replaces the binary at
// currentBinary. Scratch files live in a temp directory that is always removed.
func (u *Updater) Install(ctx context.Context, release *Release, currentBinary string) error {
	tmpDir, err := os.MkdirTemp("", u.binName+"-update-*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	archivePath, err := u.DownloadBinary(ctx, release, tmpDir)
	if err != nil {
		return fmt.Errorf("downloading binary: %w", err)
	}

	output.Debug("verifying checksum", "archive", archivePath)
	if err := u.VerifyChecksum(ctx, release, archivePath); err != nil {
		return fmt.Errorf("checksum verification failed: %w", err)
	}

	binPath, err := ExtractBinary(archivePath, tmpDir, u.binName)
	if err != nil {
		return fmt.Errorf("extracting binary: %w", err)
	}

	output.Debug("replacing binary", "path", currentBinary)
	return u.ReplaceBinary(binPath, currentBinary)
}
