package cpu6502

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ralphjzhang/cp6502/internal/memory"
)

func TestResetSetsEntryPointAndStackPointer(t *testing.T) {
	c := NewCPU()
	mem := memory.New()

	c.Reset(0x8000, mem)

	require.EqualValues(t, 0x8000, c.PC())
	require.EqualValues(t, 0xFF, c.SP())
	require.EqualValues(t, 0, c.A())
	require.EqualValues(t, 0, c.X())
	require.EqualValues(t, 0, c.Y())
	require.EqualValues(t, 0, c.Status())
}

func TestSetFlagAndGetFlag(t *testing.T) {
	c := NewCPU()
	require.False(t, c.getFlag(flagC))

	c.setFlag(flagC, true)
	require.True(t, c.getFlag(flagC))

	c.setFlag(flagC, false)
	require.False(t, c.getFlag(flagC))
}

func TestSetNZTracksZeroAndNegative(t *testing.T) {
	c := NewCPU()

	c.setNZ(0x00)
	require.True(t, c.getFlag(flagZ))
	require.False(t, c.getFlag(flagN))

	c.setNZ(0x80)
	require.False(t, c.getFlag(flagZ))
	require.True(t, c.getFlag(flagN))

	c.setNZ(0x01)
	require.False(t, c.getFlag(flagZ))
	require.False(t, c.getFlag(flagN))
}

func TestPushWordThenPopWordRoundTrips(t *testing.T) {
	c := NewCPU()
	mem := memory.New()
	c.Reset(0x0000, mem)
	c.mem = mem
	c.cycles = 1000

	c.pushWord(0xBEEF)
	got := c.popWord()

	require.EqualValues(t, 0xBEEF, got)
	require.EqualValues(t, 0xFF, c.sp)
}

func TestPushByteThenPopByteRoundTrips(t *testing.T) {
	c := NewCPU()
	mem := memory.New()
	c.Reset(0x0000, mem)
	c.mem = mem
	c.cycles = 1000

	c.pushByte(0x42)
	require.EqualValues(t, 0xFE, c.sp)

	got := c.popByte()
	require.EqualValues(t, 0x42, got)
	require.EqualValues(t, 0xFF, c.sp)
}

func TestDecodeErrorOnUnimplementedOpcode(t *testing.T) {
	c := NewCPU()
	mem := memory.New()
	c.Reset(0x0000, mem)
	mem.Write(0x0000, 0x02) // illegal opcode, not in the table

	consumed, err := c.Execute(10, mem)

	require.Zero(t, consumed)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.EqualValues(t, 0x02, decodeErr.Opcode)
	require.EqualValues(t, 0x0000, decodeErr.PC)
}

func TestUnimplementedFeatureErrorMessage(t *testing.T) {
	err := &UnimplementedFeatureError{Feature: "decimal mode", PC: 0x1234}
	require.Contains(t, err.Error(), "decimal mode")
	require.Contains(t, err.Error(), "0x1234")
}
