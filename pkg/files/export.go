package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// ExportedFile is an artifact as found on disk under an export directory
type ExportedFile struct {
	models.CodeFile
	Exists bool
}

func artifactPath(dir string, f models.CodeFile) (string, error) {
	rel := filepath.FromSlash(f.Path)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("artifact path %q escapes the export directory", f.Path)
	}
	return filepath.Join(dir, rel), nil
}

// WriteArtifacts writes every file under dir, creating subdirectories as
// needed. It returns the written paths in input order.
func WriteArtifacts(dir string, files []models.CodeFile) ([]string, error) {
	written := make([]string, 0, len(files))
	for _, f := range files {
		path, err := artifactPath(dir, f)
		if err != nil {
			return written, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// ReadArtifacts reads the on-disk counterpart of each file under dir.
// Missing files are reported with Exists false and empty content.
func ReadArtifacts(dir string, files []models.CodeFile) ([]ExportedFile, error) {
	out := make([]ExportedFile, 0, len(files))
	for _, f := range files {
		path, err := artifactPath(dir, f)
		if err != nil {
			return nil, err
		}

		entry := ExportedFile{CodeFile: models.CodeFile{Name: f.Name, Path: f.Path}}
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			entry.Content = string(data)
			entry.Exists = true
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
		}
		out = append(out, entry)
	}
	return out, nil
}
