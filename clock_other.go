//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package shaderplay

import "time"

// epoch carries Go's monotonic clock reading, time.Since never goes backwards.
var epoch = time.Now()

func systemMillis() (uint64, bool) {
	return uint64(time.Since(epoch).Milliseconds()), true
}
