//go:build amd64 && !purego

package unrolled4

import (
	"github.com/cwbudde/algo-mixeq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "unrolled4",
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		ProcessBlock: processBlock,
	})
}

// processBlock is a 4x-unrolled scalar kernel. The recursion is serial, so
// the gain comes from keeping history in registers across iterations.
func processBlock(c registry.Coefficients, s registry.State, buf []float64) registry.State {
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	x1, x2 := s.X1, s.X2
	y1, y2 := s.Y1, s.Y2

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		in0 := buf[i]
		out0 := (a0*in0 + a1*x1 + a2*x2) - (b1*y1 + b2*y2)

		in1 := buf[i+1]
		out1 := (a0*in1 + a1*in0 + a2*x1) - (b1*out0 + b2*y1)

		in2 := buf[i+2]
		out2 := (a0*in2 + a1*in1 + a2*in0) - (b1*out1 + b2*out0)

		in3 := buf[i+3]
		out3 := (a0*in3 + a1*in2 + a2*in1) - (b1*out2 + b2*out1)

		x2, x1 = in2, in3
		y2, y1 = out2, out3

		buf[i] = out0
		buf[i+1] = out1
		buf[i+2] = out2
		buf[i+3] = out3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := (a0*x + a1*x1 + a2*x2) - (b1*y1 + b2*y2)
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	return registry.State{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
