package cli

import (
	"time"

	"github.com/alvivar/jam/internal/branding"
	"github.com/alvivar/jam/internal/config"
	"github.com/alvivar/jam/internal/output"
	"github.com/alvivar/jam/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion = updater.DevVersion
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var verbose bool

// bannerRefresh is closed once the background version check finishes.
var bannerRefresh <-chan struct{}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates paired Component & System boilerplate for Unity projects
and keeps itself up to date from GitHub releases.

Check out github.com/` + branding.GitHubRepo() + ` for more info!`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(verbose)
		output.SetWriter(cmd.ErrOrStderr())
		config.Load()

		bannerRefresh = nil
		if !wantsBanner(cmd) {
			return
		}

		// Non-blocking banner from the cached version check.
		bannerRefresh = newUpdater(buildVersion).CheckAndPrintBanner(cmd.ErrOrStderr(), config.Dir())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		waitForRefresh(bannerRefresh, updater.RefreshTimeout)
	},
}

// waitForRefresh gives the version check started by the banner a bounded
// chance to store its result before the process exits.
func waitForRefresh(done <-chan struct{}, limit time.Duration) {
	if done == nil {
		return
	}
	select {
	case <-done:
	case <-time.After(limit):
		output.Debug("version check still running, not waiting")
	}
}

// wantsBanner skips the update banner for commands that manage versions
// themselves, for unreleased builds, and when disabled in config.
func wantsBanner(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "update", "version", "config", "get", "set", "list", "validate", "help":
		return false
	}
	if buildVersion == updater.DevVersion {
		return false
	}
	return config.GetBool(config.KeyCheckUpdates)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
