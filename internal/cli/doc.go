// Package cli defines the Cobra command tree for the jam CLI. Each file
// registers one top-level command (new, update, version, config) with the
// root command. Commands only parse flags and format output; rendering,
// writing, configuration, and self-update live in their own packages.
package cli
