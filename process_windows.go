//go:build windows

package osd

import "golang.org/x/sys/windows"

// KillProcess terminates the current process immediately. It doesn't return.
func KillProcess() {
	windows.TerminateProcess(windows.CurrentProcess(), 1)
	select {}
}

var debugBreakProc = windows.NewLazySystemDLL("kernel32.dll").NewProc("DebugBreak")

func debugTrap() {
	debugBreakProc.Call()
}
