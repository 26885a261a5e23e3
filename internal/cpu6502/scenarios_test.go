package cpu6502

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ralphjzhang/cp6502/internal/memory"
)

type pokeEntry struct {
	Addr  uint16  `yaml:"addr"`
	Bytes []uint8 `yaml:"bytes"`
}

type presetState struct {
	A *uint8 `yaml:"a"`
	X *uint8 `yaml:"x"`
	Y *uint8 `yaml:"y"`
	C *bool  `yaml:"c"`
	Z *bool  `yaml:"z"`
	N *bool  `yaml:"n"`
	V *bool  `yaml:"v"`
	D *bool  `yaml:"d"`
}

type expectState struct {
	A              *uint8  `yaml:"a"`
	PC             *uint16 `yaml:"pc"`
	CyclesConsumed *int    `yaml:"cycles_consumed"`
	C              *bool   `yaml:"c"`
	Z              *bool   `yaml:"z"`
	N              *bool   `yaml:"n"`
	V              *bool   `yaml:"v"`
}

type scenario struct {
	Name        string      `yaml:"name"`
	EntryPC     uint16      `yaml:"entry_pc"`
	Poke        []pokeEntry `yaml:"poke"`
	Presets     presetState `yaml:"presets"`
	CycleBudget int         `yaml:"cycle_budget"`
	Expect      expectState `yaml:"expect"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(raw, &scenarios))
	return scenarios
}

func TestGoldenScenarios(t *testing.T) {
	for _, s := range loadScenarios(t) {
		t.Run(s.Name, func(t *testing.T) {
			mem := memory.New()
			c := NewCPU()
			c.Reset(s.EntryPC, mem)

			for _, p := range s.Poke {
				mem.LoadBlock(p.Addr, p.Bytes)
			}

			if s.Presets.A != nil {
				c.a = *s.Presets.A
			}
			if s.Presets.X != nil {
				c.x = *s.Presets.X
			}
			if s.Presets.Y != nil {
				c.y = *s.Presets.Y
			}
			if s.Presets.C != nil {
				c.setFlag(flagC, *s.Presets.C)
			}
			if s.Presets.Z != nil {
				c.setFlag(flagZ, *s.Presets.Z)
			}
			if s.Presets.N != nil {
				c.setFlag(flagN, *s.Presets.N)
			}
			if s.Presets.V != nil {
				c.setFlag(flagV, *s.Presets.V)
			}
			if s.Presets.D != nil {
				c.setFlag(flagD, *s.Presets.D)
			}

			consumed, err := c.Execute(s.CycleBudget, mem)
			require.NoError(t, err)

			if s.Expect.CyclesConsumed != nil {
				require.Equal(t, *s.Expect.CyclesConsumed, consumed)
			}
			if s.Expect.A != nil {
				require.EqualValues(t, *s.Expect.A, c.A())
			}
			if s.Expect.PC != nil {
				require.EqualValues(t, *s.Expect.PC, c.PC())
			}
			if s.Expect.C != nil {
				require.Equal(t, *s.Expect.C, c.getFlag(flagC))
			}
			if s.Expect.Z != nil {
				require.Equal(t, *s.Expect.Z, c.getFlag(flagZ))
			}
			if s.Expect.N != nil {
				require.Equal(t, *s.Expect.N, c.getFlag(flagN))
			}
			if s.Expect.V != nil {
				require.Equal(t, *s.Expect.V, c.getFlag(flagV))
			}
		})
	}
}

// TestJSRThenRTSRoundTrip exercises scenario 4: JSR into a subroutine
// that loads A, RTS back to the caller, which loads A again. The
// budget stops exactly after the second LDA so the trailing BRK byte
// is never fetched.
func TestJSRThenRTSRoundTrip(t *testing.T) {
	mem := memory.New()
	c := NewCPU()
	c.Reset(0x1000, mem)

	mem.LoadBlock(0x1000, []byte{0x20, 0x09, 0x10, 0xA9, 0x42, 0x00})
	mem.LoadBlock(0x1009, []byte{0xA9, 0x11, 0x60})

	consumed, err := c.Execute(15, mem)

	require.NoError(t, err)
	require.Equal(t, 15, consumed)
	require.EqualValues(t, 0x42, c.A())
	require.EqualValues(t, 0x1005, c.PC())
}
