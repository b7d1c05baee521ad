package updater

import (
	"context"
	"fmt"
	"io"
	"time"
)

// RefreshTimeout caps the background version lookup, and how long the CLI
// waits for it before exiting.
const RefreshTimeout = 3 * time.Second

// CheckAndPrintBanner prints an update banner from the cached version check
// and, when the cache is stale, refreshes it in the background for the next
// run. It never blocks on the network. The returned channel is closed when the
// refresh (if any) finishes; callers wait on it before exiting, or the
// refresh dies with the process.
func (u *Updater) CheckAndPrintBanner(w io.Writer, dir string) <-chan struct{} {
	done := make(chan struct{})

	cache, err := LoadCache(dir)
	if err != nil {
		close(done)
		return done
	}

	if cache != nil && cache.UpdateAvailable && !cache.Stale(u.currentVersion) {
		PrintUpdateBanner(w, u.binName, cache.CurrentVersion, cache.LatestVersion)
	}

	if !IsCacheStale(cache, DefaultCacheMaxAge) {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		u.refreshCache(dir)
	}()
	return done
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, binName, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    Run `%s update` to upgrade\n\n", binName)
}

// refreshCache looks up the latest release and stores the result. Failures
// are ignored; the next invocation simply tries again.
func (u *Updater) refreshCache(dir string) {
	ctx, cancel := context.WithTimeout(context.Background(), RefreshTimeout)
	defer cancel()

	release, err := u.CheckLatestVersion(ctx)
	if err != nil {
		return
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.Version)
	if err != nil {
		return
	}

	_ = SaveCache(dir, &VersionCache{
		LatestVersion:   release.Version,
		CurrentVersion:  u.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}
