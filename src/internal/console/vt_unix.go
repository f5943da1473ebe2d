// FILE: logfan/src/internal/console/vt_unix.go
//go:build !windows

package console

// Unix terminals process ANSI sequences natively; nothing to enable.
func enableVirtualTerminal(fd uintptr) error {
	return nil
}
