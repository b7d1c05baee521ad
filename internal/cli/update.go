package cli

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/alvivar/jam/internal/branding"
	"github.com/alvivar/jam/internal/config"
	"github.com/alvivar/jam/internal/output"
	"github.com/alvivar/jam/internal/platform"
	"github.com/alvivar/jam/internal/updater"
	"github.com/spf13/cobra"
)

var (
	updateCheck   bool
	updateForce   bool
	updateVersion string
)

// newUpdater builds the updater used by update and the startup banner.
// Tests swap it.
var newUpdater = func(current string) *updater.Updater {
	var opts []updater.Option
	if mirror := config.Get(config.KeyMirror); mirror != "" {
		opts = append(opts, updater.WithMirror(mirror))
	}
	opts = append(opts, updater.WithProgress(os.Stderr))
	return updater.New(current, opts...)
}

// currentBinary locates the executable to replace. Tests swap it.
var currentBinary = platform.Executable

func init() {
	updateCmd.Flags().BoolVar(&updateCheck, "check", false, "Only check for updates, don't install")
	updateCmd.Flags().BoolVar(&updateForce, "force", false, "Reinstall even if already on the latest version")
	updateCmd.Flags().StringVar(&updateVersion, "version", "", "Install a specific version (e.g., 0.5.0)")

	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"self-update"},
	Short:   "Self updates to the latest release on GitHub",
	Long: `Downloads and installs the latest release of jam from GitHub, or from the
mirror set with 'jam config set mirror <url>' or ` + branding.EnvVar("MIRROR") + `.

  jam update                   # update to latest
  jam update --check           # check only
  jam update --version 0.5.0   # install a specific version`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		u := newUpdater(buildVersion)

		var release *updater.Release
		var err error
		if updateVersion != "" {
			output.Info("Checking for version", "version", updateVersion, "repo", u.Repo())
			release, err = u.CheckSpecificVersion(ctx, updateVersion)
		} else {
			output.Info("Checking for updates", "repo", u.Repo())
			release, err = u.CheckLatestVersion(ctx)
		}
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}

		available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
		if err != nil {
			return fmt.Errorf("comparing versions: %w", err)
		}

		if updateCheck {
			if available {
				fmt.Fprintf(out, "Update available: %s -> %s\n", buildVersion, release.Version)
			} else {
				fmt.Fprintf(out, "You are on the latest version (%s)\n", buildVersion)
			}
			return nil
		}

		// An explicit --version is installed even when it is older.
		if !available && !updateForce && updateVersion == "" {
			fmt.Fprintf(out, "You are on the latest version (%s)\n", buildVersion)
			return nil
		}

		exe, err := currentBinary()
		if err != nil {
			return err
		}

		output.Info("Downloading", "version", release.Version, "platform", runtime.GOOS+"/"+runtime.GOARCH)
		if err := u.Install(ctx, release, exe); err != nil {
			return err
		}

		recordInstalled(release.Version)

		fmt.Fprintf(out, "Current version... %s\n", output.StyleNoun.Render(release.Version))
		return nil
	},
}

// recordInstalled marks the freshly installed version as current in the
// version cache so the banner stays quiet until the next daily check.
func recordInstalled(version string) {
	err := updater.SaveCache(config.Dir(), &updater.VersionCache{
		LatestVersion:  version,
		CurrentVersion: version,
		CheckedAt:      time.Now(),
	})
	if err != nil {
		output.Debug("saving version cache", "error", err)
	}
}
