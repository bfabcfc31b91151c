package cli

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-mixeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-mixeq/dsp/filter/design"
	"github.com/cwbudde/algo-mixeq/dsp/mixer"
	"github.com/cwbudde/algo-mixeq/stats/level"
)

// PrintDesign prints the coefficients, poles and stability of a design.
func PrintDesign(w io.Writer, family design.Family, fc, q, gainDB float64, c biquad.Coefficients) {
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("%s  fc=%.6g  Q=%.4g  gain=%+.2f dB", family, fc, q, gainDB)))

	for _, kv := range []struct {
		k string
		v float64
	}{
		{"a0:", c.A0}, {"a1:", c.A1}, {"a2:", c.A2}, {"b1:", c.B1}, {"b2:", c.B2},
	} {
		PrintKV(w, kv.k, fmt.Sprintf("% .12f", kv.v))
	}

	poles := c.Poles()
	zeros := c.Zeros()
	fmt.Fprintln(w)
	PrintKV(w, "poles:", fmt.Sprintf("%.6f  %.6f", poles[0], poles[1]))
	PrintKV(w, "zeros:", fmt.Sprintf("%.6f  %.6f", zeros[0], zeros[1]))
	PrintKV(w, "stable:", c.IsStable())
}

// PrintParams prints the current mixer parameters on one line.
func PrintParams(w io.Writer, p mixer.Params) {
	fmt.Fprintf(w, "%s g1=%.2f g2=%.2f pan=%.2f master=%.2f bl=%.2f tl=%.2f br=%.2f tr=%.2f\n",
		KeyStyle.Render("params:"), p.Gain1, p.Gain2, p.Pan, p.Master, p.BassL, p.TrebleL, p.BassR, p.TrebleR)
}

// ResponseRow is one line of a response table.
type ResponseRow struct {
	FreqHz   float64
	Analytic float64
	Measured float64
}

// PrintResponse prints analytic and measured magnitudes side by side.
func PrintResponse(w io.Writer, rows []ResponseRow) {
	fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf("%10s %12s %12s", "freq [Hz]", "closed [dB]", "fft [dB]")))
	for _, r := range rows {
		fmt.Fprintf(w, "%10.1f %12.2f %12.2f\n", r.FreqHz, r.Analytic, r.Measured)
	}
}

// PrintLevels prints peak, RMS and clip counts of both output channels.
func PrintLevels(w io.Writer, left, right level.Stats) {
	fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf("%6s %12s %12s %10s", "ch", "peak [dBFS]", "rms [dBFS]", "clipped")))
	for _, ch := range []struct {
		name string
		s    level.Stats
	}{{"L", left}, {"R", right}} {
		fmt.Fprintf(w, "%6s %12.2f %12.2f %10d\n", ch.name, ch.s.Peak_dBFS, ch.s.RMS_dBFS, ch.s.Clipped)
	}
}
