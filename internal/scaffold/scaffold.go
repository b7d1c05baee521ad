package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alvivar/jam/internal/generate"
)

// Options controls where and how artifacts are written.
type Options struct {
	Dir   string // Output directory; "" means the current working directory.
	Force bool   // Overwrite files that already exist.
}

// Result holds the outcome of a write.
type Result struct {
	OutputDir string
	Files     []string
}

// Write stores each artifact as <Dir>/<artifact.Filename>. Existing files are
// checked before the directory is created or anything is written, so a
// refused write leaves no partial output behind. Identifier warnings are the
// caller's job (see CheckIdentifier).
func Write(artifacts []generate.Artifact, opts Options) (*Result, error) {
	outDir := opts.Dir
	if outDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		outDir = wd
	}

	if !opts.Force {
		for _, a := range artifacts {
			path := filepath.Join(outDir, a.Filename)
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("%s already exists; use --force to overwrite", path)
			}
		}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outDir}

	for _, a := range artifacts {
		path := filepath.Join(outDir, a.Filename)
		if err := os.WriteFile(path, []byte(a.Text), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		result.Files = append(result.Files, a.Filename)
	}

	return result, nil
}
