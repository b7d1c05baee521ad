package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/alvivar/jam/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by jam. Anything else is rejected by the schema.
const (
	KeyMirror       = "mirror"
	KeyOrder        = "order"
	KeyStart        = "start"
	KeyQueue        = "queue"
	KeyOutput       = "output"
	KeyCheckUpdates = "check_updates"
)

var boolKeys = map[string]bool{
	KeyStart:        true,
	KeyQueue:        true,
	KeyOutput:       true,
	KeyCheckUpdates: true,
}

// Dir returns the path to the jam config directory. JAM_HOME overrides the
// default of ~/.jam/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.jam/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// It can be called repeatedly; each call starts from a clean state.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyOrder, "system-first")
	viper.SetDefault(KeyCheckUpdates, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value. Unset keys are false unless they
// have a default.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// All returns every known key with its effective value, sorted by key.
func All() [][2]string {
	keys := []string{KeyMirror, KeyOrder, KeyStart, KeyQueue, KeyOutput, KeyCheckUpdates}
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, viper.GetString(k)})
	}
	return out
}

// Set validates a key-value pair and saves it to the config file.
// Boolean keys accept anything strconv.ParseBool does.
func Set(key, value string) error {
	typed := typedValue(key, value)

	res, err := ValidateSettings(map[string]interface{}{key: typed})
	if err != nil {
		return err
	}
	if !res.Valid {
		return res.Err()
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, typed)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// typedValue converts the CLI string into the type the schema expects.
// Unparseable booleans stay strings so the schema reports them.
func typedValue(key, value string) interface{} {
	if !boolKeys[key] {
		return value
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
