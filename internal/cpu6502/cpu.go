// Package cpu6502 implements the architectural state and instruction
// interpreter of a MOS 6502: registers, status flags, addressing modes,
// the opcode dispatch table, and cycle-accurate Reset/Execute.
package cpu6502

import (
	"log"
	"os"

	"github.com/ralphjzhang/cp6502/internal/memory"
)

// Packed status byte layout, bit 7 down to bit 0: N V U B D I Z C.
const (
	flagC uint8 = 1 << iota // Carry
	flagZ                   // Zero
	flagI                   // Interrupt disable
	flagD                   // Decimal mode (unimplemented, see adc)
	flagB                   // Break
	flagU                   // Unused, conventionally set when pushed
	flagV                   // Overflow
	flagN                   // Negative
)

// resetStackPointer is the stack pointer value immediately after Reset.
const resetStackPointer uint8 = 0xFF

// CPU holds the architectural state of a single MOS 6502: the program
// counter, stack pointer, A/X/Y registers and packed status byte. A CPU
// is only valid to Execute after Reset has been called at least once.
//
// The mem and cycles fields are set at the start of each Execute call,
// and mem is cleared again when it returns; the CPU does not retain a
// reference to the host's
// Memory between calls, matching the single-ownership-window contract
// of the core (the CPU mutably borrows Memory, never aliases it).
type CPU struct {
	pc     uint16
	sp     uint8
	a, x, y uint8
	status uint8

	logger          *log.Logger
	warnedDecimal   bool

	mem    *memory.Memory
	cycles int
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithLogger overrides the diagnostics logger used for the decimal-mode
// warning. The default writes to os.Stderr, mirroring the "textual
// channel (stderr-equivalent)" the base spec calls for.
func WithLogger(l *log.Logger) Option {
	return func(c *CPU) { c.logger = l }
}

// NewCPU returns a CPU in its zero-value register state. Reset must be
// called before Execute.
func NewCPU(opts ...Option) *CPU {
	c := &CPU{
		logger: log.New(os.Stderr, "cpu6502: ", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset sets PC to entryPC, SP to 0xFF, clears every flag and register,
// and zeroes mem. It must be called before the first Execute and may be
// called again to restart the machine.
func (c *CPU) Reset(entryPC uint16, mem *memory.Memory) {
	mem.Init()

	c.pc = entryPC
	c.sp = resetStackPointer
	c.status = 0
	c.a, c.x, c.y = 0, 0, 0
	c.warnedDecimal = false
}

// PC, SP, A, X, Y and Status expose the architectural registers for
// hosts and tests; the core has no other observable state.
func (c *CPU) PC() uint16     { return c.pc }
func (c *CPU) SP() uint8      { return c.sp }
func (c *CPU) A() uint8       { return c.a }
func (c *CPU) X() uint8       { return c.x }
func (c *CPU) Y() uint8       { return c.y }
func (c *CPU) Status() uint8  { return c.status }

func (c *CPU) getFlag(flag uint8) bool {
	return c.status&flag != 0
}

func (c *CPU) setFlag(flag uint8, set bool) {
	if set {
		c.status |= flag
		return
	}
	c.status &^= flag
}

// setNZ sets Z and N from the last value that affected a register, the
// rule every load/transfer/logical/increment instruction shares.
func (c *CPU) setNZ(v uint8) {
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, v&0x80 != 0)
}

// spend charges n cycles that are not tied to a concrete memory access
// (index-add dead cycles, branch-taken cycles, the fixed overhead of
// shifts/increments/stack ops).
func (c *CPU) spend(n int) {
	c.cycles -= n
}

// fetchByte reads the byte at PC, advances PC, and charges one cycle.
func (c *CPU) fetchByte() uint8 {
	v := c.mem.Read(c.pc)
	c.pc++
	c.cycles--
	return v
}

// fetchWord reads a little-endian 16-bit value starting at PC and
// advances PC by two, charging one cycle per byte.
func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetchByte())
	hi := uint16(c.fetchByte())
	return lo | hi<<8
}

// readByte reads the byte at addr without moving PC, charging one cycle.
func (c *CPU) readByte(addr uint16) uint8 {
	v := c.mem.Read(addr)
	c.cycles--
	return v
}

// readWord reads a little-endian 16-bit value at addr, addr+1 (full
// 16-bit addition, not zero-page wrapped), charging one cycle per byte.
func (c *CPU) readWord(addr uint16) uint16 {
	lo := uint16(c.readByte(addr))
	hi := uint16(c.readByte(addr + 1))
	return lo | hi<<8
}

// writeByte stores v at addr, charging one cycle.
func (c *CPU) writeByte(addr uint16, v uint8) {
	c.mem.Write(addr, v)
	c.cycles--
}

func (c *CPU) stackAddr() uint16 {
	return memory.StackBase + uint16(c.sp)
}

// pushByte writes v to the stack page at the current SP, then
// decrements SP, charging one cycle.
func (c *CPU) pushByte(v uint8) {
	c.mem.Write(c.stackAddr(), v)
	c.sp--
	c.cycles--
}

// popByte increments SP, then reads the stack page at the new SP,
// charging one cycle. It is the exact inverse of pushByte.
func (c *CPU) popByte() uint8 {
	c.sp++
	v := c.mem.Read(c.stackAddr())
	c.cycles--
	return v
}

// pushWord pushes v's high byte, then its low byte, so that a
// subsequent popWord yields v back unchanged.
func (c *CPU) pushWord(v uint16) {
	c.pushByte(uint8(v >> 8))
	c.pushByte(uint8(v))
}

// popWord is the exact inverse of pushWord: it pops the low byte, then
// the high byte.
func (c *CPU) popWord() uint16 {
	lo := uint16(c.popByte())
	hi := uint16(c.popByte())
	return lo | hi<<8
}

func (c *CPU) warnDecimalOnce() {
	if c.warnedDecimal {
		return
	}
	c.warnedDecimal = true
	if c.logger != nil {
		c.logger.Print((&UnimplementedFeatureError{Feature: "decimal mode", PC: c.pc}).Error())
	}
}
