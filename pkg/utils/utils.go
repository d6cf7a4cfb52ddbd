// pkg/utils/utils.go
package utils

import "runtime"

// Privileged reports whether the process may open raw sockets. Windows always
// needs raw ICMP, elsewhere only root gets it.
func Privileged() bool {
	if runtime.GOOS == "windows" {
		return true
	}
	return isRoot()
}
