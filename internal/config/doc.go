// Package config manages user-level settings stored at ~/.jam/config.yaml.
// Settings provide defaults for "jam new" flags (order, start, queue, output),
// the download mirror used by self-update, and the startup update check.
// Every value is validated against an embedded JSON Schema before it is saved.
package config
