package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	generrors "git.home.luguber.info/inful/rexdocs/internal/generator/errors"
)

// WriteFile atomically writes content to relativePath under dir.
//
// The content goes to a temporary file in the target directory which is then
// renamed into place, so readers never observe a half-written page. Existing
// files are replaced. The path must stay inside dir.
func WriteFile(dir, relativePath string, content []byte) (string, error) {
	if dir == "" || relativePath == "" {
		return "", fmt.Errorf("%w: directory and file name are required", generrors.ErrWriteFailed)
	}

	cleanRel := filepath.Clean(relativePath)
	if filepath.IsAbs(cleanRel) || cleanRel == ".." || strings.HasPrefix(cleanRel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", generrors.ErrPathEscapesOutput, relativePath)
	}
	fullPath := filepath.Join(dir, cleanRel)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", fmt.Errorf("%w: create directory: %w", generrors.ErrWriteFailed, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: %w", generrors.ErrWriteFailed, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: %w", generrors.ErrWriteFailed, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", generrors.ErrWriteFailed, err)
	}
	// #nosec G302 -- generated documentation is meant to be world-readable.
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", generrors.ErrWriteFailed, err)
	}
	if err = os.Rename(tmpName, fullPath); err != nil {
		return "", fmt.Errorf("%w: %w", generrors.ErrWriteFailed, err)
	}
	return fullPath, nil
}
