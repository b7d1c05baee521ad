package updater

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// createTestTarGz creates a tar.gz archive holding a README and a fake "jam" binary.
func createTestTarGz(t *testing.T, binaryContent []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	files := []struct {
		name string
		data []byte
	}{
		{"README.md", []byte("# jam")},
		{"jam", binaryContent},
	}
	for _, f := range files {
		hdr := &tar.Header{Name: f.name, Mode: 0755, Size: int64(len(f.data)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write(f.data); err != nil {
			t.Fatal(err)
		}
	}
	tw.Close()
	gw.Close()
	return buf.Bytes()
}

func createTestZip(t *testing.T, binaryContent []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("jam_windows_amd64/jam.exe")
	if err != nil {
		t.Fatal(err)
	}
	w.Write(binaryContent)
	zw.Close()
	return buf.Bytes()
}

func sha(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// assetServer serves files by name from the map.
func assetServer(t *testing.T, files map[string][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := files[strings.TrimPrefix(r.URL.Path, "/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownloadBinary(t *testing.T) {
	archiveData := createTestTarGz(t, []byte("#!/bin/sh\necho test"))
	archiveName := ArchiveName("jam")

	srv := assetServer(t, map[string][]byte{archiveName: archiveData})

	var progress bytes.Buffer
	u := New("0.4.0", WithHTTPClient(srv.Client()), WithProgress(&progress))

	release := &Release{
		Version: "v0.5.0",
		Assets:  []Asset{{Name: archiveName, DownloadURL: srv.URL + "/" + archiveName}},
	}

	archivePath, err := u.DownloadBinary(context.Background(), release, t.TempDir())
	if err != nil {
		t.Fatalf("DownloadBinary failed: %v", err)
	}

	data, err := os.ReadFile(archivePath)
	if err != nil {
		t.Fatalf("downloaded file does not exist: %v", err)
	}
	if !bytes.Equal(data, archiveData) {
		t.Error("downloaded content mismatch")
	}
	if !strings.Contains(progress.String(), "100%") {
		t.Errorf("progress output %q does not reach 100%%", progress.String())
	}
}

func TestDownloadBinary_HTTPError(t *testing.T) {
	srv := assetServer(t, nil)
	u := New("0.4.0", WithHTTPClient(srv.Client()))

	archiveName := ArchiveName("jam")
	release := &Release{Assets: []Asset{{Name: archiveName, DownloadURL: srv.URL + "/" + archiveName}}}

	if _, err := u.DownloadBinary(context.Background(), release, t.TempDir()); err == nil {
		t.Fatal("expected error for 404 download")
	}
}

func TestVerifyChecksum(t *testing.T) {
	archiveData := createTestTarGz(t, []byte("fake binary content"))
	archiveName := ArchiveName("jam")

	checksums := fmt.Sprintf("%s  other_file.tar.gz\n%s  *%s\n", sha([]byte("x")), sha(archiveData), archiveName)
	srv := assetServer(t, map[string][]byte{checksumsAsset: []byte(checksums)})

	u := New("0.4.0", WithHTTPClient(srv.Client()))
	release := &Release{Assets: []Asset{{Name: checksumsAsset, DownloadURL: srv.URL + "/" + checksumsAsset}}}

	archivePath := filepath.Join(t.TempDir(), archiveName)
	os.WriteFile(archivePath, archiveData, 0644)

	if err := u.VerifyChecksum(context.Background(), release, archivePath); err != nil {
		t.Fatalf("VerifyChecksum failed: %v", err)
	}
}

func TestVerifyChecksum_Mismatch(t *testing.T) {
	archiveName := ArchiveName("jam")
	checksums := fmt.Sprintf("%s  %s\n", strings.Repeat("0", 64), archiveName)
	srv := assetServer(t, map[string][]byte{checksumsAsset: []byte(checksums)})

	u := New("0.4.0", WithHTTPClient(srv.Client()))
	release := &Release{Assets: []Asset{{Name: checksumsAsset, DownloadURL: srv.URL + "/" + checksumsAsset}}}

	archivePath := filepath.Join(t.TempDir(), archiveName)
	os.WriteFile(archivePath, []byte("different content"), 0644)

	err := u.VerifyChecksum(context.Background(), release, archivePath)
	if err == nil || !strings.Contains(err.Error(), "mismatch") {
		t.Fatalf("expected checksum mismatch error, got %v", err)
	}
}

func TestVerifyChecksum_NotListed(t *testing.T) {
	srv := assetServer(t, map[string][]byte{checksumsAsset: []byte("abc  unrelated.tar.gz\n")})
	u := New("0.4.0", WithHTTPClient(srv.Client()))
	release := &Release{Assets: []Asset{{Name: checksumsAsset, DownloadURL: srv.URL + "/" + checksumsAsset}}}

	archivePath := filepath.Join(t.TempDir(), ArchiveName("jam"))
	os.WriteFile(archivePath, []byte("x"), 0644)

	if err := u.VerifyChecksum(context.Background(), release, archivePath); err == nil {
		t.Fatal("expected error when the archive is not listed")
	}
}

func TestVerifyChecksum_MissingAsset(t *testing.T) {
	u := New("0.4.0")
	release := &Release{Assets: []Asset{{Name: "jam_darwin_arm64.tar.gz", DownloadURL: "https://example.com/file"}}}

	if err := u.VerifyChecksum(context.Background(), release, "/tmp/some-archive.tar.gz"); err == nil {
		t.Error("expected error for missing checksums.txt asset")
	}
}

func TestExtractBinary_TarGz(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho extracted")
	tmp := t.TempDir()
	archivePath := filepath.Join(tmp, "jam.tar.gz")
	os.WriteFile(archivePath, createTestTarGz(t, binaryContent), 0644)

	binPath, err := ExtractBinary(archivePath, tmp, "jam")
	if err != nil {
		t.Fatalf("ExtractBinary failed: %v", err)
	}
	if filepath.Base(binPath) != "jam" {
		t.Errorf("extracted %q, want jam", filepath.Base(binPath))
	}

	data, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("reading extracted binary: %v", err)
	}
	if !bytes.Equal(data, binaryContent) {
		t.Errorf("extracted content mismatch")
	}

	if runtime.GOOS != "windows" {
		info, _ := os.Stat(binPath)
		if info.Mode().Perm()&0111 == 0 {
			t.Error("extracted binary is not executable")
		}
	}
}

func TestExtractBinary_Zip(t *testing.T) {
	tmp := t.TempDir()
	archivePath := filepath.Join(tmp, "jam_windows_amd64.zip")
	os.WriteFile(archivePath, createTestZip(t, []byte("MZ")), 0644)

	binPath, err := ExtractBinary(archivePath, tmp, "jam")
	if err != nil {
		t.Fatalf("ExtractBinary failed: %v", err)
	}
	if filepath.Base(binPath) != "jam.exe" {
		t.Errorf("extracted %q, want jam.exe", filepath.Base(binPath))
	}
}

func TestExtractBinary_NotFound(t *testing.T) {
	tmp := t.TempDir()
	archivePath := filepath.Join(tmp, "other.tar.gz")
	os.WriteFile(archivePath, createTestTarGz(t, []byte("x")), 0644)

	if _, err := ExtractBinary(archivePath, tmp, "notjam"); err == nil {
		t.Error("expected error when the binary is absent")
	}
}
