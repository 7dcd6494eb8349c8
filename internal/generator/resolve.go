package generator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolve joins the base path with a node's relative path. Pure path
// algebra, no filesystem access. Absolute paths and paths containing
// parent-directory segments fail with ErrInvalidPath so a structure
// can never write outside its base.
func Resolve(basePath, relPath string) (string, error) {
	if relPath == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if filepath.IsAbs(relPath) || strings.HasPrefix(relPath, "/") {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, relPath)
	}
	for _, segment := range strings.Split(filepath.ToSlash(relPath), "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q contains a parent-directory segment", ErrInvalidPath, relPath)
		}
	}

	clean := filepath.Clean(filepath.FromSlash(relPath))
	if clean == "." {
		return "", fmt.Errorf("%w: %q resolves to the base path itself", ErrInvalidPath, relPath)
	}
	return filepath.Join(basePath, clean), nil
}
