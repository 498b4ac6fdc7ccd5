package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes generated files to their paths, creating directories
// as needed. Files whose content is unchanged are left untouched so file
// watchers do not see spurious writes. It returns the number of files
// written.
func WriteFiles(files []GeneratedFile) (int, error) {
	written := 0

	for _, file := range files {
		old, err := os.ReadFile(file.Path)
		switch {
		case err == nil && bytes.Equal(old, file.Content):
			continue
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return written, fmt.Errorf("reading file %s: %w", file.Path, err)
		}

		if err := os.MkdirAll(filepath.Dir(file.Path), dirPerm); err != nil {
			return written, fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(file.Path, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Path, err)
		}

		written++
	}

	return written, nil
}
