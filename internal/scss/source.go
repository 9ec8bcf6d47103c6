package scss

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
)

// ReadSource returns the content of an SCSS file. A missing file is not an error:
// it yields ("", false, nil) so callers build empty tables from it.
func ReadSource(path string) (string, bool, error) {
	if path == "" {
		return "", false, nil
	}
	// #nosec G304 -- source paths come from the operator's configuration.
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errors.WrapError(err, errors.CategorySource, "failed to read SCSS source").
			WithContext("path", path).
			Build()
	}
	return string(data), true, nil
}
