//go:build !unix

package index

import "io/fs"

// executable approximates the access(2) check with permission bits on
// platforms without it.
func executable(_ string, info fs.FileInfo) bool {
	return info.Mode().Perm()&0111 != 0
}
