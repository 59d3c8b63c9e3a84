package osd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessString(t *testing.T) {
	cases := map[Access]string{
		AccessNone:             "---",
		AccessRead:             "r--",
		AccessWrite:            "-w-",
		AccessExecute:          "--x",
		AccessReadWrite:        "rw-",
		AccessReadExecute:      "r-x",
		AccessReadWriteExecute: "rwx",
		Access(0x10):           "invalid",
	}

	for access, want := range cases {
		assert.Equal(t, want, access.String())
	}
}
