//go:build unix

package index

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// executable reports whether the current user may execute the file,
// the same access(2) check a shell performs when resolving PATH.
func executable(path string, _ fs.FileInfo) bool {
	return unix.Access(path, unix.X_OK) == nil
}
