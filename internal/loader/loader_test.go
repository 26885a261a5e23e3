package loader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ralphjzhang/cp6502/internal/memory"
)

func TestLoadCopiesProgramAtTheEncodedAddress(t *testing.T) {
	mem := memory.New()
	img := []byte{0x00, 0x10, 0xA9, 0x00, 0xEA} // load at 0x1000

	entry, err := Load(img, mem)

	require.NoError(t, err)
	require.EqualValues(t, 0x1000, entry)
	require.EqualValues(t, 0xA9, mem.Read(0x1000))
	require.EqualValues(t, 0x00, mem.Read(0x1001))
	require.EqualValues(t, 0xEA, mem.Read(0x1002))
}

func TestLoadWrapsPastTopOfAddressSpace(t *testing.T) {
	mem := memory.New()
	img := []byte{0xFE, 0xFF, 0x11, 0x22, 0x33} // load at 0xFFFE

	entry, err := Load(img, mem)

	require.NoError(t, err)
	require.EqualValues(t, 0xFFFE, entry)
	require.EqualValues(t, 0x11, mem.Read(0xFFFE))
	require.EqualValues(t, 0x22, mem.Read(0xFFFF))
	require.EqualValues(t, 0x33, mem.Read(0x0000))
}

func TestLoadRejectsImageWithoutAnAddressHeader(t *testing.T) {
	mem := memory.New()

	_, err := Load([]byte{0x01}, mem)

	require.Error(t, err)
}
