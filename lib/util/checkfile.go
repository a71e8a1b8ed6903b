package util

import (
	"os"
)

// CheckFileExists reports whether fpath can be stat'ed and is a regular file.
func CheckFileExists(fpath string) bool {
	info, err := os.Stat(fpath)
	return err == nil && info.Mode().IsRegular()
}
