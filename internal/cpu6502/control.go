package cpu6502

import "github.com/ralphjzhang/cp6502/internal/memory"

// branch fetches the signed displacement unconditionally (every branch
// opcode is two bytes regardless of outcome), then applies it to PC
// only when taken, charging the extra taken/page-cross cycles.
func (c *CPU) branch(taken bool) {
	offset := c.addrRelative()
	if !taken {
		return
	}
	c.spend(1)

	oldPC := c.pc
	newPC := oldPC + uint16(offset)
	if newPC&0xFF00 != oldPC&0xFF00 {
		c.spend(1)
	}
	c.pc = newPC
}

// jsr pushes the address of the last byte of the JSR instruction (PC-1
// after the two-byte target has been fetched), not the address of the
// next instruction; rts relies on this to recover the correct return
// address.
func (c *CPU) jsr() {
	target := c.fetchWord()
	c.pushWord(c.pc - 1)
	c.pc = target
	c.spend(1)
}

func (c *CPU) rts() {
	ret := c.popWord()
	c.pc = ret + 1
	c.spend(2)
}

// brk pushes PC+1 (skipping the conventional signature byte after the
// BRK opcode), then status with B and U forced set, raises I and B, and
// loads PC from the IRQ/BRK vector.
func (c *CPU) brk() {
	c.pushWord(c.pc + 1)
	c.pushByte(c.status | flagB | flagU)
	c.setFlag(flagI, true)
	c.setFlag(flagB, true)
	c.pc = c.readWord(memory.IRQVector)
}

// rti is the exact inverse of the brk push sequence: pop status, clear
// the B/U bits that only ever mean something in a pushed copy, then pop
// PC directly (unlike rts, no +1: brk already pushed the resume address).
func (c *CPU) rti() {
	c.status = c.popByte()
	c.setFlag(flagB, false)
	c.setFlag(flagU, false)
	c.pc = c.popWord()
}
