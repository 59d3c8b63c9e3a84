//go:build windows

package osd

import "golang.org/x/sys/windows"

const (
	arenaProtExec = windows.PAGE_EXECUTE
	arenaProtRX   = windows.PAGE_EXECUTE_READ
	arenaProtRWX  = windows.PAGE_EXECUTE_READWRITE
)
