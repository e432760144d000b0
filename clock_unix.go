//go:build linux || darwin || freebsd || netbsd || openbsd

package shaderplay

import "golang.org/x/sys/unix"

func systemMillis() (uint64, bool) {
	var ts unix.Timespec
	err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	if err != nil {
		return 0, false
	}
	ns := unix.TimespecToNsec(ts)
	if ns < 0 {
		return 0, false
	}
	return uint64(ns) / 1e6, true
}
