package cpu6502

import "github.com/ralphjzhang/cp6502/internal/memory"

// family groups opcodes that share the same operation regardless of
// addressing mode; the instruction table pairs each opcode byte with
// its family and mode, and dispatch does the rest.
type family uint8

const (
	fLDA family = iota
	fLDX
	fLDY
	fSTA
	fSTX
	fSTY
	fTAX
	fTAY
	fTXA
	fTYA
	fTSX
	fTXS
	fPHA
	fPHP
	fPLA
	fPLP
	fAND
	fORA
	fEOR
	fBIT
	fINC
	fDEC
	fINX
	fINY
	fDEX
	fDEY
	fADC
	fSBC
	fCMP
	fCPX
	fCPY
	fASL
	fLSR
	fROL
	fROR
	fJMP
	fJSR
	fRTS
	fBEQ
	fBNE
	fBCC
	fBCS
	fBMI
	fBPL
	fBVS
	fBVC
	fCLC
	fCLD
	fCLI
	fCLV
	fSEC
	fSED
	fSEI
	fNOP
	fBRK
	fRTI
)

// instruction is one row of the 256-entry opcode table: a mnemonic for
// diagnostics, the addressing mode that supplies its operand, and the
// family that performs the operation. A zero-value entry (empty
// mnemonic) marks an opcode this core does not implement.
type instruction struct {
	mnemonic string
	mode     addrMode
	family   family
}

var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]instruction {
	var t [256]instruction

	def := func(op uint8, mnemonic string, mode addrMode, fam family) {
		t[op] = instruction{mnemonic: mnemonic, mode: mode, family: fam}
	}

	def(0xA9, "LDA", amIMM, fLDA)
	def(0xA5, "LDA", amZP, fLDA)
	def(0xB5, "LDA", amZPX, fLDA)
	def(0xAD, "LDA", amABS, fLDA)
	def(0xBD, "LDA", amABSX, fLDA)
	def(0xB9, "LDA", amABSY, fLDA)
	def(0xA1, "LDA", amINDX, fLDA)
	def(0xB1, "LDA", amINDY, fLDA)

	def(0xA2, "LDX", amIMM, fLDX)
	def(0xA6, "LDX", amZP, fLDX)
	def(0xB6, "LDX", amZPY, fLDX)
	def(0xAE, "LDX", amABS, fLDX)
	def(0xBE, "LDX", amABSY, fLDX)

	def(0xA0, "LDY", amIMM, fLDY)
	def(0xA4, "LDY", amZP, fLDY)
	def(0xB4, "LDY", amZPX, fLDY)
	def(0xAC, "LDY", amABS, fLDY)
	def(0xBC, "LDY", amABSX, fLDY)

	def(0x85, "STA", amZP, fSTA)
	def(0x95, "STA", amZPX, fSTA)
	def(0x8D, "STA", amABS, fSTA)
	def(0x9D, "STA", amABSXW, fSTA)
	def(0x99, "STA", amABSYW, fSTA)
	def(0x81, "STA", amINDX, fSTA)
	def(0x91, "STA", amINDYW, fSTA)

	def(0x86, "STX", amZP, fSTX)
	def(0x96, "STX", amZPY, fSTX)
	def(0x8E, "STX", amABS, fSTX)

	def(0x84, "STY", amZP, fSTY)
	def(0x94, "STY", amZPX, fSTY)
	def(0x8C, "STY", amABS, fSTY)

	def(0xAA, "TAX", amIMP, fTAX)
	def(0xA8, "TAY", amIMP, fTAY)
	def(0x8A, "TXA", amIMP, fTXA)
	def(0x98, "TYA", amIMP, fTYA)
	def(0xBA, "TSX", amIMP, fTSX)
	def(0x9A, "TXS", amIMP, fTXS)

	def(0x48, "PHA", amIMP, fPHA)
	def(0x08, "PHP", amIMP, fPHP)
	def(0x68, "PLA", amIMP, fPLA)
	def(0x28, "PLP", amIMP, fPLP)

	def(0x29, "AND", amIMM, fAND)
	def(0x25, "AND", amZP, fAND)
	def(0x35, "AND", amZPX, fAND)
	def(0x2D, "AND", amABS, fAND)
	def(0x3D, "AND", amABSX, fAND)
	def(0x39, "AND", amABSY, fAND)
	def(0x21, "AND", amINDX, fAND)
	def(0x31, "AND", amINDY, fAND)

	def(0x49, "EOR", amIMM, fEOR)
	def(0x45, "EOR", amZP, fEOR)
	def(0x55, "EOR", amZPX, fEOR)
	def(0x4D, "EOR", amABS, fEOR)
	def(0x5D, "EOR", amABSX, fEOR)
	def(0x59, "EOR", amABSY, fEOR)
	def(0x41, "EOR", amINDX, fEOR)
	def(0x51, "EOR", amINDY, fEOR)

	def(0x09, "ORA", amIMM, fORA)
	def(0x05, "ORA", amZP, fORA)
	def(0x15, "ORA", amZPX, fORA)
	def(0x0D, "ORA", amABS, fORA)
	def(0x1D, "ORA", amABSX, fORA)
	def(0x19, "ORA", amABSY, fORA)
	def(0x01, "ORA", amINDX, fORA)
	def(0x11, "ORA", amINDY, fORA)

	def(0x24, "BIT", amZP, fBIT)
	def(0x2C, "BIT", amABS, fBIT)

	def(0xE6, "INC", amZP, fINC)
	def(0xF6, "INC", amZPX, fINC)
	def(0xEE, "INC", amABS, fINC)
	def(0xFE, "INC", amABSXW, fINC)

	def(0xC6, "DEC", amZP, fDEC)
	def(0xD6, "DEC", amZPX, fDEC)
	def(0xCE, "DEC", amABS, fDEC)
	def(0xDE, "DEC", amABSXW, fDEC)

	def(0xE8, "INX", amIMP, fINX)
	def(0xC8, "INY", amIMP, fINY)
	def(0xCA, "DEX", amIMP, fDEX)
	def(0x88, "DEY", amIMP, fDEY)

	def(0x69, "ADC", amIMM, fADC)
	def(0x65, "ADC", amZP, fADC)
	def(0x75, "ADC", amZPX, fADC)
	def(0x6D, "ADC", amABS, fADC)
	def(0x7D, "ADC", amABSX, fADC)
	def(0x79, "ADC", amABSY, fADC)
	def(0x61, "ADC", amINDX, fADC)
	def(0x71, "ADC", amINDY, fADC)

	def(0xE9, "SBC", amIMM, fSBC)
	def(0xE5, "SBC", amZP, fSBC)
	def(0xF5, "SBC", amZPX, fSBC)
	def(0xED, "SBC", amABS, fSBC)
	def(0xFD, "SBC", amABSX, fSBC)
	def(0xF9, "SBC", amABSY, fSBC)
	def(0xE1, "SBC", amINDX, fSBC)
	def(0xF1, "SBC", amINDY, fSBC)

	def(0xC9, "CMP", amIMM, fCMP)
	def(0xC5, "CMP", amZP, fCMP)
	def(0xD5, "CMP", amZPX, fCMP)
	def(0xCD, "CMP", amABS, fCMP)
	def(0xDD, "CMP", amABSX, fCMP)
	def(0xD9, "CMP", amABSY, fCMP)
	def(0xC1, "CMP", amINDX, fCMP)
	def(0xD1, "CMP", amINDY, fCMP)

	def(0xE0, "CPX", amIMM, fCPX)
	def(0xE4, "CPX", amZP, fCPX)
	def(0xEC, "CPX", amABS, fCPX)

	def(0xC0, "CPY", amIMM, fCPY)
	def(0xC4, "CPY", amZP, fCPY)
	def(0xCC, "CPY", amABS, fCPY)

	def(0x0A, "ASL", amACC, fASL)
	def(0x06, "ASL", amZP, fASL)
	def(0x16, "ASL", amZPX, fASL)
	def(0x0E, "ASL", amABS, fASL)
	def(0x1E, "ASL", amABSXW, fASL)

	def(0x4A, "LSR", amACC, fLSR)
	def(0x46, "LSR", amZP, fLSR)
	def(0x56, "LSR", amZPX, fLSR)
	def(0x4E, "LSR", amABS, fLSR)
	def(0x5E, "LSR", amABSXW, fLSR)

	def(0x2A, "ROL", amACC, fROL)
	def(0x26, "ROL", amZP, fROL)
	def(0x36, "ROL", amZPX, fROL)
	def(0x2E, "ROL", amABS, fROL)
	def(0x3E, "ROL", amABSXW, fROL)

	def(0x6A, "ROR", amACC, fROR)
	def(0x66, "ROR", amZP, fROR)
	def(0x76, "ROR", amZPX, fROR)
	def(0x6E, "ROR", amABS, fROR)
	def(0x7E, "ROR", amABSXW, fROR)

	def(0x4C, "JMP", amABS, fJMP)
	def(0x6C, "JMP", amIND, fJMP)
	def(0x20, "JSR", amABS, fJSR)
	def(0x60, "RTS", amIMP, fRTS)

	def(0xF0, "BEQ", amREL, fBEQ)
	def(0xD0, "BNE", amREL, fBNE)
	def(0x90, "BCC", amREL, fBCC)
	def(0xB0, "BCS", amREL, fBCS)
	def(0x30, "BMI", amREL, fBMI)
	def(0x10, "BPL", amREL, fBPL)
	def(0x70, "BVS", amREL, fBVS)
	def(0x50, "BVC", amREL, fBVC)

	def(0x18, "CLC", amIMP, fCLC)
	def(0xD8, "CLD", amIMP, fCLD)
	def(0x58, "CLI", amIMP, fCLI)
	def(0xB8, "CLV", amIMP, fCLV)
	def(0x38, "SEC", amIMP, fSEC)
	def(0xF8, "SED", amIMP, fSED)
	def(0x78, "SEI", amIMP, fSEI)

	def(0xEA, "NOP", amIMP, fNOP)
	def(0x00, "BRK", amIMP, fBRK)
	def(0x40, "RTI", amIMP, fRTI)

	return t
}

// Execute runs instructions while the cycle counter is positive and
// returns cycleBudget minus the final counter; the last instruction may
// overshoot, so the count can exceed the budget. A byte with no
// instruction table entry aborts immediately with a DecodeError and a
// consumed count of 0: the cycle accounting of the whole run is
// discarded.
func (c *CPU) Execute(cycleBudget int, mem *memory.Memory) (int, error) {
	c.mem = mem
	c.cycles = cycleBudget
	defer func() { c.mem = nil }()

	for c.cycles > 0 {
		opcode := c.fetchByte()
		instr := opcodeTable[opcode]
		if instr.mnemonic == "" {
			return 0, &DecodeError{Opcode: opcode, PC: c.pc - 1}
		}
		c.dispatch(instr)
	}

	return cycleBudget - c.cycles, nil
}

func (c *CPU) dispatch(instr instruction) {
	switch instr.family {
	case fLDA:
		c.a = c.loadOperand(instr.mode)
		c.setNZ(c.a)
	case fLDX:
		c.x = c.loadOperand(instr.mode)
		c.setNZ(c.x)
	case fLDY:
		c.y = c.loadOperand(instr.mode)
		c.setNZ(c.y)
	case fSTA:
		c.writeByte(c.effectiveAddr(instr.mode), c.a)
	case fSTX:
		c.writeByte(c.effectiveAddr(instr.mode), c.x)
	case fSTY:
		c.writeByte(c.effectiveAddr(instr.mode), c.y)
	case fTAX:
		c.x = c.a
		c.setNZ(c.x)
		c.spend(1)
	case fTAY:
		c.y = c.a
		c.setNZ(c.y)
		c.spend(1)
	case fTXA:
		c.a = c.x
		c.setNZ(c.a)
		c.spend(1)
	case fTYA:
		c.a = c.y
		c.setNZ(c.a)
		c.spend(1)
	case fTSX:
		c.x = c.sp
		c.setNZ(c.x)
		c.spend(1)
	case fTXS:
		c.sp = c.x
		c.spend(1)
	case fPHA:
		c.pushByte(c.a)
	case fPHP:
		c.pushByte(c.status | flagB | flagU)
	case fPLA:
		c.a = c.popByte()
		c.setNZ(c.a)
		c.spend(1)
	case fPLP:
		c.status = c.popByte()
		c.setFlag(flagB, false)
		c.setFlag(flagU, false)
		c.spend(1)
	case fAND:
		c.a &= c.loadOperand(instr.mode)
		c.setNZ(c.a)
	case fORA:
		c.a |= c.loadOperand(instr.mode)
		c.setNZ(c.a)
	case fEOR:
		c.a ^= c.loadOperand(instr.mode)
		c.setNZ(c.a)
	case fBIT:
		c.bit(c.loadOperand(instr.mode))
	case fINC:
		addr := c.effectiveAddr(instr.mode)
		v := c.readByte(addr) + 1
		c.writeByte(addr, v)
		c.setNZ(v)
		c.spend(2)
	case fDEC:
		addr := c.effectiveAddr(instr.mode)
		v := c.readByte(addr) - 1
		c.writeByte(addr, v)
		c.setNZ(v)
		c.spend(2)
	case fINX:
		c.x++
		c.setNZ(c.x)
		c.spend(1)
	case fINY:
		c.y++
		c.setNZ(c.y)
		c.spend(1)
	case fDEX:
		c.x--
		c.setNZ(c.x)
		c.spend(1)
	case fDEY:
		c.y--
		c.setNZ(c.y)
		c.spend(1)
	case fADC:
		c.adc(c.loadOperand(instr.mode))
	case fSBC:
		c.sbc(c.loadOperand(instr.mode))
	case fCMP:
		c.compare(c.a, c.loadOperand(instr.mode))
	case fCPX:
		c.compare(c.x, c.loadOperand(instr.mode))
	case fCPY:
		c.compare(c.y, c.loadOperand(instr.mode))
	case fASL:
		c.rmwShift(instr.mode, c.asl)
	case fLSR:
		c.rmwShift(instr.mode, c.lsr)
	case fROL:
		c.rmwShift(instr.mode, c.rol)
	case fROR:
		c.rmwShift(instr.mode, c.ror)
	case fJMP:
		c.pc = c.effectiveAddr(instr.mode)
	case fJSR:
		c.jsr()
	case fRTS:
		c.rts()
	case fBEQ:
		c.branch(c.getFlag(flagZ))
	case fBNE:
		c.branch(!c.getFlag(flagZ))
	case fBCC:
		c.branch(!c.getFlag(flagC))
	case fBCS:
		c.branch(c.getFlag(flagC))
	case fBMI:
		c.branch(c.getFlag(flagN))
	case fBPL:
		c.branch(!c.getFlag(flagN))
	case fBVS:
		c.branch(c.getFlag(flagV))
	case fBVC:
		c.branch(!c.getFlag(flagV))
	case fCLC:
		c.setFlag(flagC, false)
		c.spend(1)
	case fCLD:
		c.setFlag(flagD, false)
		c.spend(1)
	case fCLI:
		c.setFlag(flagI, false)
		c.spend(1)
	case fCLV:
		c.setFlag(flagV, false)
		c.spend(1)
	case fSEC:
		c.setFlag(flagC, true)
		c.spend(1)
	case fSED:
		c.setFlag(flagD, true)
		c.spend(1)
	case fSEI:
		c.setFlag(flagI, true)
		c.spend(1)
	case fNOP:
		c.spend(1)
	case fBRK:
		c.brk()
	case fRTI:
		c.rti()
	}
}
