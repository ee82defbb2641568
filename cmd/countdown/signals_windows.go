//go:build windows

package main

import (
	"os"
	"syscall"
)

// getSignalsForPlatform lists the signals that quit the timer.
func getSignalsForPlatform() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}
