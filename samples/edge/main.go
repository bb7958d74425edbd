package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/joha7809/Chisel-Erode/asm"
	"github.com/joha7809/Chisel-Erode/core"
)

const (
	side      = 20
	outputAt  = side * side
	memoryLen = 2 * side * side
)

//go:embed edge.asm
var edgeKernel string

// square returns an image with a white square of the given size in the
// middle.
func square(size int) []uint32 {
	img := make([]uint32, side*side)
	lo := (side - size) / 2

	for y := lo; y < lo+size; y++ {
		for x := lo; x < lo+size; x++ {
			img[y*side+x] = 1
		}
	}

	return img
}

func detectEdges(engine sim.Engine, img []uint32) ([]uint32, *core.Core, error) {
	_, words, err := asm.Assemble(edgeKernel)
	if err != nil {
		return nil, nil, err
	}

	memory := core.NewWordMemory(memoryLen)
	for i, v := range img {
		if err := memory.Write(uint32(i), v); err != nil {
			return nil, nil, err
		}
	}

	c := core.MakeBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithMemory(memory).
		Build("Core")

	c.MapProgram(words)

	err = engine.Run()
	if err != nil {
		return nil, c, err
	}

	if err := c.Fault(); err != nil {
		return nil, c, err
	}

	out := make([]uint32, side*side)
	for i := range out {
		out[i], _ = memory.Read(uint32(outputAt + i))
	}

	return out, c, nil
}

func render(img []uint32) string {
	var b strings.Builder
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if img[y*side+x] != 0 {
				b.WriteString("##")
			} else {
				b.WriteString("..")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func main() {
	engine := sim.NewSerialEngine()
	img := square(8)

	out, c, err := detectEdges(engine, img)
	if err != nil {
		panic(err)
	}

	fmt.Print(render(img))
	fmt.Println()
	fmt.Print(render(out))
	fmt.Printf("\n%d instructions in %.0f ns\n",
		c.Cycles(), float64(engine.CurrentTime()*1e9))

	atexit.Exit(0)
}
