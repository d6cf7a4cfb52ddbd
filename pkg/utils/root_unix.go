//go:build unix

package utils

import "golang.org/x/sys/unix"

func isRoot() bool {
	return unix.Geteuid() == 0
}
