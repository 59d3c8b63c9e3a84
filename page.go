package osd

import (
	"sync"
	"syscall"
)

var (
	getpagesize = syscall.Getpagesize

	pageSizeOnce sync.Once
	pageSize     int
)

// PageSize returns the host page size. It's discovered on the first call and
// never changes after that.
func PageSize() (int, error) {
	pageSizeOnce.Do(func() {
		pageSize = getpagesize()
	})
	if pageSize <= 0 {
		return 0, ErrPageSize
	}
	return pageSize, nil
}

// roundUp rounds n up to a multiple of page. page must be a power of two.
func roundUp(n, page int) int {
	return (n + page - 1) &^ (page - 1)
}

// roundDown rounds n down to a multiple of page. page must be a power of two.
func roundDown(n, page int) int {
	return n &^ (page - 1)
}
