package updater

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const checksumsAsset = "checksums.txt"

// DownloadBinary downloads the archive for the running platform into destDir
// and returns its path.
func (u *Updater) DownloadBinary(ctx context.Context, release *Release, destDir string) (string, error) {
	asset, err := SelectAssetForPlatform(u.binName, release.Assets)
	if err != nil {
		return "", err
	}

	resp, err := u.get(ctx, asset.DownloadURL)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", asset.Name, err)
	}
	defer resp.Body.Close()

	destPath := filepath.Join(destDir, asset.Name)
	f, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("creating download file: %w", err)
	}
	defer f.Close()

	var src io.Reader = resp.Body
	if u.progress != nil && resp.ContentLength > 0 {
		pr := &progressReader{r: resp.Body, total: resp.ContentLength, w: u.progress, last: -1}
		defer pr.finish()
		src = pr
	}

	if _, err := io.Copy(f, src); err != nil {
		return "", fmt.Errorf("writing download: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing download: %w", err)
	}

	return destPath, nil
}

// VerifyChecksum fetches checksums.txt from the release and compares the
// archive's SHA-256 with the listed one.
func (u *Updater) VerifyChecksum(ctx context.Context, release *Release, archivePath string) error {
	var checksum *Asset
	for i := range release.Assets {
		if release.Assets[i].Name == checksumsAsset {
			checksum = &release.Assets[i]
			break
		}
	}
	if checksum == nil {
		return fmt.Errorf("%s not found in release assets", checksumsAsset)
	}

	resp, err := u.get(ctx, checksum.DownloadURL)
	if err != nil {
		return fmt.Errorf("downloading checksums: %w", err)
	}
	defer resp.Body.Close()

	expected, err := findChecksum(resp.Body, filepath.Base(archivePath))
	if err != nil {
		return err
	}

	actual, err := fileSHA256(archivePath)
	if err != nil {
		return err
	}
	if !strings.EqualFold(actual, expected) {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expected, actual)
	}
	return nil
}

func (u *Updater) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", u.userAgent())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return resp, nil
}

// findChecksum scans "sha256  filename" lines for name. GoReleaser may prefix
// the name with "*" for binary mode.
func findChecksum(r io.Reader, name string) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		parts := strings.Fields(sc.Text())
		if len(parts) == 2 && strings.TrimPrefix(parts[1], "*") == name {
			return parts[0], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading checksums: %w", err)
	}
	return "", fmt.Errorf("no checksum found for %s in %s", name, checksumsAsset)
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening archive for checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("computing checksum: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// progressReader prints a percentage to w whenever it changes.
type progressReader struct {
	r     io.Reader
	w     io.Writer
	total int64
	read  int64
	last  int
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if pct := int(p.read * 100 / p.total); pct != p.last {
		fmt.Fprintf(p.w, "\rDownloading... %d%%", pct)
		p.last = pct
	}
	return n, err
}

func (p *progressReader) finish() {
	fmt.Fprintln(p.w)
}
