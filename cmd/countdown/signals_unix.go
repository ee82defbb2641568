//go:build !windows

package main

import (
	"os"
	"syscall"
)

// getSignalsForPlatform lists the signals that quit the timer. SIGTSTP is left
// to the default handler so that job control can stop the process; ctrl+z
// reaches the program as a key and suspends it with audio paused.
func getSignalsForPlatform() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}
