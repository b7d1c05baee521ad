package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/alvivar/jam/internal/platform"
)

// verifyTimeout bounds how long the freshly installed binary may take to
// answer "version --json".
const verifyTimeout = 5 * time.Second

// ReplaceBinary swaps currentPath for newPath. The old binary is kept as
// <current>.backup until the new one answers "version --json"; on any
// failure the backup is restored.
func (u *Updater) ReplaceBinary(newPath, currentPath string) error {
	if runtime.GOOS == "windows" {
		return fmt.Errorf("self-update is not supported on Windows. Download the latest release from https://github.com/%s/releases", u.repo)
	}

	info, err := os.Stat(currentPath)
	if err != nil {
		return fmt.Errorf("stat current binary: %w", err)
	}
	origPerm := info.Mode().Perm()

	backupPath := currentPath + ".backup"

	if err := os.Rename(currentPath, backupPath); err != nil {
		// Rename fails across filesystems; fall back to copying.
		if copyErr := copyFile(currentPath, backupPath); copyErr != nil {
			return fmt.Errorf("creating backup: %w", copyErr)
		}
		os.Remove(currentPath)
	}

	if err := os.Rename(newPath, currentPath); err != nil {
		if copyErr := copyFile(newPath, currentPath); copyErr != nil {
			_ = RollbackBinary(backupPath, currentPath)
			return fmt.Errorf("installing new binary: %w", copyErr)
		}
		os.Remove(newPath)
	}

	if err := platform.Chmod(currentPath, origPerm); err != nil {
		_ = RollbackBinary(backupPath, currentPath)
		return fmt.Errorf("restoring permissions: %w", err)
	}

	if err := VerifyBinary(currentPath); err != nil {
		_ = RollbackBinary(backupPath, currentPath)
		return fmt.Errorf("verification failed, rolled back: %w", err)
	}

	os.Remove(backupPath)
	return nil
}

// VerifyBinary runs "<binary> version --json" and checks that it prints a
// JSON object with a version field.
func VerifyBinary(binaryPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, binaryPath, "version", "--json").Output()
	if ctx.Err() != nil {
		return fmt.Errorf("new binary timed out after %s", verifyTimeout)
	}
	if err != nil {
		return fmt.Errorf("new binary exited with error: %w", err)
	}

	var info map[string]string
	if err := json.Unmarshal(out, &info); err != nil {
		return fmt.Errorf("parsing version output: %w", err)
	}
	if info["version"] == "" {
		return fmt.Errorf("version output has no version field")
	}
	return nil
}

// RollbackBinary restores the backup to the current path.
func RollbackBinary(backupPath, currentPath string) error {
	if err := os.Rename(backupPath, currentPath); err != nil {
		if copyErr := copyFile(backupPath, currentPath); copyErr != nil {
			return fmt.Errorf("rollback failed: %w (original rename error: %v)", copyErr, err)
		}
		os.Remove(backupPath)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
