// Package fsutil provides file system utility functions.
//
// Destination-taking operations accept an overwrite flag with uniform
// semantics: when overwrite is false and the destination already exists,
// the operation is silently skipped. The package never logs; callers own
// all diagnostics.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileExists reports whether path exists, following symlinks.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileExt returns the file extension of path without the leading dot.
func FileExt(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// EnsureDir creates the directory and any missing parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Copy copies src to dst, dispatching on whether src is a directory.
func Copy(src, dst string, overwrite bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if info.IsDir() {
		return CopyDir(src, dst, overwrite)
	}
	return CopyFile(src, dst, overwrite)
}

// CopyFile copies a single file, preserving its permission bits.
func CopyFile(src, dst string, overwrite bool) error {
	if !overwrite && lexists(dst) {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// CopyDir copies a directory tree. With overwrite set, an existing
// destination is removed first; symlinks are copied as symlinks.
func CopyDir(src, dst string, overwrite bool) error {
	if !overwrite && lexists(dst) {
		return nil
	}
	if err := Remove(dst); err != nil {
		return err
	}
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			dest, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(dest, target)
		case info.IsDir():
			return os.MkdirAll(target, info.Mode().Perm())
		default:
			return CopyFile(path, target, true)
		}
	})
}

// Symlink creates a symbolic link at dst pointing to src.
func Symlink(src, dst string, overwrite bool) error {
	if !overwrite && lexists(dst) {
		return nil
	}
	if err := Remove(dst); err != nil {
		return err
	}
	return os.Symlink(src, dst)
}

// SymlinkIfExists is Symlink, silently skipped when src does not exist.
func SymlinkIfExists(src, dst string, overwrite bool) error {
	if !FileExists(src) {
		return nil
	}
	return Symlink(src, dst, overwrite)
}

// Hardlink creates a hard link at dst pointing to src.
func Hardlink(src, dst string, overwrite bool) error {
	if !overwrite && lexists(dst) {
		return nil
	}
	if err := Remove(dst); err != nil {
		return err
	}
	return os.Link(src, dst)
}

// Rename moves src to dst.
func Rename(src, dst string, overwrite bool) error {
	if !overwrite && lexists(dst) {
		return nil
	}
	return os.Rename(src, dst)
}

// Remove deletes path whether it is a file, a symlink, or a directory
// tree. A missing path is not an error.
func Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// lexists reports whether path exists without following symlinks, so a
// dangling symlink still counts as occupying its name.
func lexists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
