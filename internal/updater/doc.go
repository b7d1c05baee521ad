// Package updater implements "jam update": it asks GitHub Releases (or a
// configured mirror) for the newest jam build, downloads the archive for the
// running platform, verifies its SHA-256 against checksums.txt, extracts the
// binary, and swaps it in for the running executable with a rollback on
// failure. A daily version cache drives the startup update banner.
package updater
