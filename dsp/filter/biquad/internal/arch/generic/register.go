package generic

import (
	"github.com/cwbudde/algo-mixeq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ProcessBlock: processBlock,
	})
}

func processBlock(c registry.Coefficients, s registry.State, buf []float64) registry.State {
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	x1, x2 := s.X1, s.X2
	y1, y2 := s.Y1, s.Y2

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		xa := buf[i]
		acc := a0*xa + a1*x1 + a2*x2
		ya := acc - (b1*y1 + b2*y2)

		xb := buf[i+1]
		acc = a0*xb + a1*xa + a2*x1
		yb := acc - (b1*ya + b2*y1)

		x2, x1 = xa, xb
		y2, y1 = ya, yb
		buf[i] = ya
		buf[i+1] = yb
	}

	if i < n {
		x := buf[i]
		acc := a0*x + a1*x1 + a2*x2
		y := acc - (b1*y1 + b2*y2)
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	return registry.State{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
