package cpu6502

import "fmt"

// DecodeError reports that Execute encountered a byte with no entry in
// the instruction table. It implements every documented legal 6502
// opcode, so DecodeError only fires on the illegal/undocumented opcodes
// this core deliberately does not support.
type DecodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu6502: unimplemented opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// UnimplementedFeatureError describes a recoverable gap in this core:
// currently only decimal mode. It is never returned from Execute — the
// CPU logs its Error() text once and continues with well-defined
// binary semantics — but it is a concrete error value so a host can
// format or compare it the same way it would a DecodeError.
type UnimplementedFeatureError struct {
	Feature string
	PC      uint16
}

func (e *UnimplementedFeatureError) Error() string {
	return fmt.Sprintf("cpu6502: %s requested at PC=0x%04X is not implemented, continuing with binary semantics", e.Feature, e.PC)
}
