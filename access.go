package osd

// Access is a set of memory access rights. The zero value, AccessNone, is no
// access at all.
type Access uint8

const (
	AccessNone    Access = 0
	AccessRead    Access = 1
	AccessWrite   Access = 2
	AccessExecute Access = 4

	AccessReadWrite        = AccessRead | AccessWrite
	AccessReadExecute      = AccessRead | AccessExecute
	AccessReadWriteExecute = AccessRead | AccessWrite | AccessExecute
)

const accessMask = AccessReadWriteExecute

func (a Access) valid() bool {
	return a&^accessMask == 0
}

// String renders the set the way ls renders permissions, e.g. "r-x".
func (a Access) String() string {
	if !a.valid() {
		return "invalid"
	}

	buf := []byte("---")
	if a&AccessRead != 0 {
		buf[0] = 'r'
	}
	if a&AccessWrite != 0 {
		buf[1] = 'w'
	}
	if a&AccessExecute != 0 {
		buf[2] = 'x'
	}
	return string(buf)
}
