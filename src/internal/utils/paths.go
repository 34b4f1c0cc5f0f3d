package utils

import "path/filepath"

// GetAbsolutePath returns path unchanged when it is absolute or baseDir is
// empty, otherwise the cleaned join of baseDir and path.
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}

	return filepath.Clean(filepath.Join(baseDir, path))
}
