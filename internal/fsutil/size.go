package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const bytesPerMegabyte = 1000 * 1000

// ByteToMegabyte converts a byte count to megabytes, rounding up.
func ByteToMegabyte(b uint64) uint64 {
	return (b + bytesPerMegabyte - 1) / bytesPerMegabyte
}

// DirSizeMB returns the total size of all regular files under path, in
// megabytes rounded up.
func DirSizeMB(path string) (uint64, error) {
	var total uint64
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			// The file can disappear between listing and stat.
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.Mode().IsRegular() {
			total += uint64(info.Size())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ByteToMegabyte(total), nil
}

// FilesSizeMB returns the combined size of the given files in megabytes
// rounded up. Paths that do not exist contribute nothing.
func FilesSizeMB(paths []string) uint64 {
	var total uint64
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		total += uint64(info.Size())
	}
	return ByteToMegabyte(total)
}

// FreeSpaceMB returns the space available to unprivileged users on the
// filesystem holding path, in megabytes rounded up.
func FreeSpaceMB(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return ByteToMegabyte(uint64(st.Bsize) * st.Bavail), nil
}

// FindMountPoint walks up from path until it reaches the mount point of
// the filesystem holding it.
func FindMountPoint(path string) (string, error) {
	p, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	for {
		mounted, err := isMountPoint(p)
		if err == nil && mounted {
			return p, nil
		}
		parent := filepath.Dir(p)
		if parent == p {
			return p, nil
		}
		p = parent
	}
}

// isMountPoint mirrors the classic ismount check: a path whose parent
// lives on a different device, or shares an inode with it (the root).
func isMountPoint(path string) (bool, error) {
	var st, parent unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return false, err
	}
	if st.Mode&unix.S_IFMT == unix.S_IFLNK {
		return false, nil
	}
	if err := unix.Lstat(filepath.Dir(path), &parent); err != nil {
		return false, err
	}
	if st.Dev != parent.Dev {
		return true, nil
	}
	return st.Ino == parent.Ino, nil
}
