package updater

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractBinary pulls binName (or binName.exe) out of a .tar.gz or .zip
// archive into destDir and returns the extracted path.
func ExtractBinary(archivePath, destDir, binName string) (string, error) {
	if strings.HasSuffix(archivePath, ".zip") {
		return extractFromZip(archivePath, destDir, binName)
	}
	return extractFromTarGz(archivePath, destDir, binName)
}

func isBinary(entry, binName string) bool {
	base := filepath.Base(entry)
	return base == binName || base == binName+".exe"
}

func extractFromTarGz(archivePath, destDir, binName string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading tar entry: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !isBinary(hdr.Name, binName) {
			continue
		}
		return writeExecutable(filepath.Join(destDir, filepath.Base(hdr.Name)), tr)
	}

	return "", fmt.Errorf("%s binary not found in archive", binName)
}

func extractFromZip(archivePath, destDir, binName string) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening zip archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isBinary(f.Name, binName) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening zip entry: %w", err)
		}
		path, err := writeExecutable(filepath.Join(destDir, filepath.Base(f.Name)), rc)
		rc.Close()
		return path, err
	}

	return "", fmt.Errorf("%s binary not found in zip archive", binName)
}

func writeExecutable(destPath string, src io.Reader) (string, error) {
	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return "", fmt.Errorf("creating binary file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", fmt.Errorf("extracting binary: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing binary file: %w", err)
	}
	return destPath, nil
}
