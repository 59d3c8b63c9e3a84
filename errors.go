package osd

import (
	"errors"

	goerrors "github.com/go-errors/errors"
)

var (
	ErrPageSize         = errors.New("unable to determine page size")
	ErrEmptyReservation = errors.New("nothing to reserve")
	ErrInvalidSize      = errors.New("invalid size")
	ErrInvalidAccess    = errors.New("invalid access rights")
	ErrOutOfRange       = errors.New("range outside reservation")
	ErrReleased         = errors.New("reservation already released")
	ErrReserve          = errors.New("unable to reserve memory")
	ErrProtect          = errors.New("unable to change memory protection")
	ErrRelease          = errors.New("unable to release memory")
	ErrAlloc            = errors.New("unable to allocate executable memory")
	ErrUnsupportedArch  = errors.New("unsupported architecture")
	ErrUndecodable      = errors.New("undecodable instruction")
)

// osError attaches a stack trace to an error returned by the OS and joins
// it with kind, so callers can match either one.
func osError(kind error, op string, err error) error {
	return errors.Join(kind, goerrors.WrapPrefix(err, op, 1))
}
