// Package loader turns a raw program image into memory contents ready
// for CPU.Reset: the first two bytes of an image are its little-endian
// load address, the rest is the program itself.
package loader

import (
	"fmt"

	"github.com/ralphjzhang/cp6502/internal/memory"
)

// Load copies img[2:] into mem starting at the little-endian load
// address held in img[0:2], wrapping addresses modulo 65,536 the same
// way memory.LoadBlock does. It returns that address for the caller to
// pass to CPU.Reset; Load never touches a CPU.
func Load(img []byte, mem *memory.Memory) (entry uint16, err error) {
	if len(img) < 2 {
		return 0, fmt.Errorf("loader: image too short (%d bytes) to hold a load address", len(img))
	}

	entry = uint16(img[0]) | uint16(img[1])<<8
	mem.LoadBlock(entry, img[2:])
	return entry, nil
}
