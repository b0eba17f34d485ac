//go:build windows

package console

// RestoreOnSignal is a no-op on Windows, where the terminal driver does not leave raw mode
// engaged across an interrupted process in the same way.
func RestoreOnSignal(restore func()) (cancel func()) {
	return func() {}
}
