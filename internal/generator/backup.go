package generator

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// BackupManager copies existing targets under a backup root before a
// destructive write. Backups mirror the node's base-relative path and
// are additive: a destination that already exists gets a counter
// suffix, so repeated runs keep history instead of clobbering it.
type BackupManager struct {
	root string
}

// NewBackupManager creates a manager writing under root.
func NewBackupManager(root string) *BackupManager {
	return &BackupManager{root: root}
}

// Backup copies the file or directory at absPath to the backup root,
// mirroring relPath, and returns the backup destination. Failures wrap
// ErrBackupFailed; the caller must not proceed with the destructive
// write for that node.
func (b *BackupManager) Backup(absPath, relPath string) (string, error) {
	dest := filepath.Join(b.root, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("%w: creating backup directory: %v", ErrBackupFailed, err)
	}
	if _, err := os.Lstat(dest); err == nil {
		dest = renameCandidate(dest)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrBackupFailed, absPath, err)
	}

	if info.IsDir() {
		err = copyDir(absPath, dest)
	} else {
		err = copyFile(absPath, dest, info.Mode())
	}
	if err != nil {
		return "", fmt.Errorf("%w: copying %s: %v", ErrBackupFailed, absPath, err)
	}
	return dest, nil
}

// copyFile copies content byte-for-byte, preserving the source mode.
func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// copyDir recursively copies a directory subtree.
func copyDir(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode())
	})
}
