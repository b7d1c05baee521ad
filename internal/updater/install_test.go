package updater

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestInstall(t *testing.T) {
	skipOnWindows(t)

	script := []byte("#!/bin/sh\necho '{\"version\":\"0.5.0\"}'\n")
	archiveData := createTestTarGz(t, script)
	archiveName := ArchiveName("jam")
	checksums := fmt.Sprintf("%s  %s\n", sha(archiveData), archiveName)

	srv := assetServer(t, map[string][]byte{
		archiveName:    archiveData,
		checksumsAsset: []byte(checksums),
	})

	current := filepath.Join(t.TempDir(), "jam")
	writeScript(t, current, `echo '{"version":"0.4.0"}'`)

	u := New("0.4.0", WithHTTPClient(srv.Client()))
	release := &Release{
		Version: "v0.5.0",
		Assets: []Asset{
			{Name: archiveName, DownloadURL: srv.URL + "/" + archiveName},
			{Name: checksumsAsset, DownloadURL: srv.URL + "/" + checksumsAsset},
		},
	}

	if err := u.Install(context.Background(), release, current); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	data, _ := os.ReadFile(current)
	if string(data) != string(script) {
		t.Errorf("installed binary = %q, want %q", data, script)
	}
}

func TestInstall_BadChecksumLeavesBinary(t *testing.T) {
	archiveData := createTestTarGz(t, []byte("#!/bin/sh\nexit 0\n"))
	archiveName := ArchiveName("jam")

	srv := assetServer(t, map[string][]byte{
		archiveName:    archiveData,
		checksumsAsset: []byte(fmt.Sprintf("%s  %s\n", sha([]byte("tampered")), archiveName)),
	})

	current := filepath.Join(t.TempDir(), "jam")
	os.WriteFile(current, []byte("old"), 0755)

	u := New("0.4.0", WithHTTPClient(srv.Client()))
	release := &Release{Assets: []Asset{
		{Name: archiveName, DownloadURL: srv.URL + "/" + archiveName},
		{Name: checksumsAsset, DownloadURL: srv.URL + "/" + checksumsAsset},
	}}

	if err := u.Install(context.Background(), release, current); err == nil {
		t.Fatal("expected checksum failure")
	}
	data, _ := os.ReadFile(current)
	if string(data) != "old" {
		t.Errorf("binary was modified despite the failed checksum: %q", data)
	}
}
