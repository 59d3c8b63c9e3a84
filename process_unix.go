//go:build unix

package osd

import "golang.org/x/sys/unix"

// KillProcess sends SIGKILL to the current process. It doesn't return.
func KillProcess() {
	unix.Kill(unix.Getpid(), unix.SIGKILL)
	select {}
}

func debugTrap() {
	unix.Kill(unix.Getpid(), unix.SIGTRAP)
}
