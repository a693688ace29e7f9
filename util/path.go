package util

import (
	"github.com/twpayne/go-vfs"
)

// Exist reports whether name exists on fs.
func Exist(fs vfs.FS, name string) bool {
	_, err := fs.Stat(name)
	return err == nil
}

// IsFile reports whether name is a regular file on fs.
func IsFile(fs vfs.FS, name string) bool {
	fi, err := fs.Stat(name)
	return err == nil && fi.Mode().IsRegular()
}

// IsDir reports whether name is a directory on fs.
func IsDir(fs vfs.FS, name string) bool {
	fi, err := fs.Stat(name)
	return err == nil && fi.IsDir()
}
