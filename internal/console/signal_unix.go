//go:build !windows

package console

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// RestoreOnSignal arranges for restore to run if the process receives SIGINT or SIGTERM while
// raw mode is active, so an interrupted session leaves the terminal usable; it returns a function
// that cancels the handler once the caller no longer needs it (normal shutdown already calls
// restore directly).
func RestoreOnSignal(restore func()) (cancel func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM)

	done := make(chan struct{})

	go func() {
		select {
		case <-ch:
			restore()
			os.Exit(1)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
