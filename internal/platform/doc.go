// Package platform holds the small OS-specific file operations self-update
// needs: locating the real executable behind symlinks and restoring
// permission bits, which Windows does not support.
package platform
