package cpu6502

// addrMode tags which of the 13 addressing modes an opcode uses. The
// store/RMW absolute-indexed and indirect-indexed variants are split
// from their load counterparts because real 6502 hardware always pays
// the page-cross cycle on a write, never conditionally.
type addrMode uint8

const (
	amIMP  addrMode = iota // implied: no operand
	amACC                  // accumulator: operand is A itself
	amIMM                  // immediate: operand is the byte after the opcode
	amZP                   // zero page
	amZPX                  // zero page,X
	amZPY                  // zero page,Y
	amABS                  // absolute
	amABSX                 // absolute,X (conditional page-cross penalty)
	amABSXW                // absolute,X (always-penalty: stores and RMW)
	amABSY                 // absolute,Y (conditional page-cross penalty)
	amABSYW                // absolute,Y (always-penalty: stores and RMW)
	amIND                  // indirect (JMP only)
	amINDX                 // (indirect,X)
	amINDY                 // (indirect),Y (conditional page-cross penalty)
	amINDYW                // (indirect),Y (always-penalty: STA)
	amREL                  // relative (branches)
)

func (c *CPU) addrZeroPage() uint16 {
	return uint16(c.fetchByte())
}

func (c *CPU) addrZeroPageIndexed(index uint8) uint16 {
	base := c.fetchByte()
	c.spend(1) // dead cycle adding the index register
	return uint16(base + index)
}

func (c *CPU) addrAbsolute() uint16 {
	return c.fetchWord()
}

func (c *CPU) addrAbsoluteIndexed(index uint8, alwaysPenalty bool) uint16 {
	base := c.fetchWord()
	addr := base + uint16(index)
	if alwaysPenalty || addr&0xFF00 != base&0xFF00 {
		c.spend(1)
	}
	return addr
}

// addrIndirect resolves JMP (ind), reproducing the classic 6502 hardware
// bug: if the pointer's low byte is 0xFF, the high byte is fetched from
// the start of the same page rather than the next page.
func (c *CPU) addrIndirect() uint16 {
	ptr := c.fetchWord()
	hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
	lo := c.readByte(ptr)
	hi := c.readByte(hiAddr)
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) addrIndirectX() uint16 {
	zp := c.fetchByte()
	c.spend(1) // dead cycle adding X before the pointer read
	ptr := zp + c.x
	lo := c.readByte(uint16(ptr))
	hi := c.readByte(uint16(ptr + 1))
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) addrIndirectY(alwaysPenalty bool) uint16 {
	zp := c.fetchByte()
	lo := c.readByte(uint16(zp))
	hi := c.readByte(uint16(zp + 1))
	base := uint16(lo) | uint16(hi)<<8
	addr := base + uint16(c.y)
	if alwaysPenalty || addr&0xFF00 != base&0xFF00 {
		c.spend(1)
	}
	return addr
}

func (c *CPU) addrRelative() int8 {
	return int8(c.fetchByte())
}

// effectiveAddr resolves every addressing mode that names a memory
// location. amIMM, amACC, amIMP and amREL have no such address and must
// be handled by their caller instead.
func (c *CPU) effectiveAddr(mode addrMode) uint16 {
	switch mode {
	case amZP:
		return c.addrZeroPage()
	case amZPX:
		return c.addrZeroPageIndexed(c.x)
	case amZPY:
		return c.addrZeroPageIndexed(c.y)
	case amABS:
		return c.addrAbsolute()
	case amABSX:
		return c.addrAbsoluteIndexed(c.x, false)
	case amABSXW:
		return c.addrAbsoluteIndexed(c.x, true)
	case amABSY:
		return c.addrAbsoluteIndexed(c.y, false)
	case amABSYW:
		return c.addrAbsoluteIndexed(c.y, true)
	case amIND:
		return c.addrIndirect()
	case amINDX:
		return c.addrIndirectX()
	case amINDY:
		return c.addrIndirectY(false)
	case amINDYW:
		return c.addrIndirectY(true)
	default:
		panic("cpu6502: effectiveAddr called with an addressless mode")
	}
}

// loadOperand resolves an operand's value for read-only instructions
// (loads, logicals, BIT, ADC/SBC/CMP family): immediate and accumulator
// read directly, every other mode reads through effectiveAddr.
func (c *CPU) loadOperand(mode addrMode) uint8 {
	switch mode {
	case amIMM:
		return c.fetchByte()
	case amACC:
		return c.a
	default:
		return c.readByte(c.effectiveAddr(mode))
	}
}

// rmwShift applies a shift/rotate transform to the accumulator or to a
// memory operand, reading and writing it back when mode names an
// address.
func (c *CPU) rmwShift(mode addrMode, op func(uint8) uint8) {
	if mode == amACC {
		c.a = op(c.a)
		return
	}
	addr := c.effectiveAddr(mode)
	v := c.readByte(addr)
	c.writeByte(addr, op(v))
}
