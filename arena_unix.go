//go:build unix

package osd

import "golang.org/x/sys/unix"

const (
	arenaProtExec = unix.PROT_EXEC
	arenaProtRX   = unix.PROT_READ | unix.PROT_EXEC
	arenaProtRWX  = unix.PROT_READ | unix.PROT_WRITE | unix.PROT_EXEC
)
