// Package memory implements the flat, byte-addressable 64 KiB address
// space shared by the CPU and its host.
package memory

// Size is the number of addressable cells: the full 16-bit address space.
const Size = 1 << 16

// StackBase is the first address of the hardware stack page, $0100-$01FF.
const StackBase = 0x0100

// IRQVector is the address of the low byte of the IRQ/BRK vector.
const IRQVector = 0xFFFE

// Memory is a flat array of 65,536 unsigned 8-bit cells. It has no cycle
// accounting of its own and no side effects beyond the written cell; all
// cycle charging happens in the CPU's accessors.
type Memory struct {
	cells [Size]uint8
}

// New returns a Memory with every cell zeroed.
func New() *Memory {
	return &Memory{}
}

// Init sets every cell back to zero.
func (m *Memory) Init() {
	for i := range m.cells {
		m.cells[i] = 0
	}
}

// Read returns the byte at addr. Every 16-bit address is defined, so this
// is a total function.
func (m *Memory) Read(addr uint16) uint8 {
	return m.cells[addr]
}

// Write stores val at addr.
func (m *Memory) Write(addr uint16, val uint8) {
	m.cells[addr] = val
}

// LoadBlock copies data into memory starting at addr, wrapping addresses
// modulo 65,536 if the block runs past 0xFFFF.
func (m *Memory) LoadBlock(addr uint16, data []byte) {
	for _, b := range data {
		m.cells[addr] = b
		addr++
	}
}

// Bytes returns a copy of the full address space, safe for a caller to
// inspect without risk of mutating live CPU state.
func (m *Memory) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, m.cells[:])
	return out
}
