// Command cp6502run is a minimal host for the cp6502 core: it loads a
// program image, resets a CPU at the image's load address, runs it for
// a fixed cycle budget, and reports the resulting register state. It
// exists to give the core a place to run from, not to implement any of
// the hosting concerns (I/O, clocks, debugging) the core itself leaves
// out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"gopkg.in/yaml.v3"

	"github.com/ralphjzhang/cp6502/internal/cpu6502"
	"github.com/ralphjzhang/cp6502/internal/loader"
	"github.com/ralphjzhang/cp6502/internal/memory"
)

type traceReport struct {
	Entry           uint16 `yaml:"entry"`
	PC              uint16 `yaml:"pc"`
	SP              uint8  `yaml:"sp"`
	A               uint8  `yaml:"a"`
	X               uint8  `yaml:"x"`
	Y               uint8  `yaml:"y"`
	Status          uint8  `yaml:"status"`
	CyclesRequested int    `yaml:"cycles_requested"`
	CyclesConsumed  int    `yaml:"cycles_consumed"`
}

func main() {
	imgPath := flag.String("image", "", "path to a program image (2-byte little-endian load address, then code)")
	cycles := flag.Int("cycles", 1000, "cycle budget to pass to Execute")
	cpuProfile := flag.Bool("cpuprofile", false, "wrap Execute in a pkg/profile CPU profile")
	trace := flag.Bool("trace", false, "print the post-run register state as YAML instead of plain text")
	flag.Parse()

	if *imgPath == "" {
		log.Fatal("cp6502run: -image is required")
	}

	img, err := os.ReadFile(*imgPath)
	if err != nil {
		log.Fatalf("cp6502run: reading image: %v", err)
	}

	mem := memory.New()
	entry, err := loader.Load(img, mem)
	if err != nil {
		log.Fatalf("cp6502run: loading image: %v", err)
	}

	c := cpu6502.NewCPU()
	c.Reset(entry, mem)

	// Reset zeroes memory, so the image is loaded again after it.
	if _, err := loader.Load(img, mem); err != nil {
		log.Fatalf("cp6502run: loading image: %v", err)
	}

	if *cpuProfile {
		stop := profile.Start(profile.CPUProfile)
		defer stop.Stop()
	}

	consumed, err := c.Execute(*cycles, mem)
	if err != nil {
		log.Fatalf("cp6502run: %v", err)
	}

	report := traceReport{
		Entry:           entry,
		PC:              c.PC(),
		SP:              c.SP(),
		A:               c.A(),
		X:               c.X(),
		Y:               c.Y(),
		Status:          c.Status(),
		CyclesRequested: *cycles,
		CyclesConsumed:  consumed,
	}

	if *trace {
		out, err := yaml.Marshal(report)
		if err != nil {
			log.Fatalf("cp6502run: marshaling trace: %v", err)
		}
		fmt.Print(string(out))
		return
	}

	fmt.Printf("entry=0x%04X pc=0x%04X sp=0x%02X a=0x%02X x=0x%02X y=0x%02X status=0x%02X cycles=%d/%d\n",
		report.Entry, report.PC, report.SP, report.A, report.X, report.Y, report.Status,
		report.CyclesConsumed, report.CyclesRequested)
}
