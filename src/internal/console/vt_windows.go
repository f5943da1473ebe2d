// FILE: logfan/src/internal/console/vt_windows.go
//go:build windows

package console

import (
	"golang.org/x/sys/windows"
)

// Switches the console into virtual-terminal mode so ANSI color sequences
// are interpreted instead of printed.
func enableVirtualTerminal(fd uintptr) error {
	handle := windows.Handle(fd)

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
