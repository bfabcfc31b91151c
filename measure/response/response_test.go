package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-mixeq/dsp/core"
	"github.com/cwbudde/algo-mixeq/dsp/filter/crossover"
	"github.com/cwbudde/algo-mixeq/dsp/mixer"
	"github.com/cwbudde/algo-mixeq/internal/testutil"
)

const testSR = 44000.0

func newTestCrossover(t *testing.T) *crossover.Crossover {
	t.Helper()
	xo, err := crossover.NewHz(500, 0.707, testSR)
	if err != nil {
		t.Fatal(err)
	}
	return xo
}

func TestAnalyze_InvalidSize(t *testing.T) {
	xo := newTestCrossover(t)
	for _, n := range []int{0, 4, 100, 1000, -8} {
		if _, err := Analyze(xo, 1, 1, n); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: err = %v, want ErrInvalidSize", n, err)
		}
	}
	if _, err := Analyze(nil, 1, 1, 1024); !errors.Is(err, ErrNilInput) {
		t.Errorf("nil crossover: err = %v", err)
	}
}

func TestAnalyze_MatchesClosedForm(t *testing.T) {
	xo := newTestCrossover(t)
	tests := []struct {
		name         string
		bass, treble float64
	}{
		{name: "defaults", bass: 6, treble: 2},
		{name: "unity", bass: 1, treble: 1},
		{name: "bass only", bass: 1, treble: 0},
		{name: "treble only", bass: 0, treble: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Analyze(xo, tt.bass, tt.treble, 4096)
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Freqs) != 2049 || len(res.Magnitude) != 2049 || len(res.MagnitudeDB) != 2049 {
				t.Fatalf("bins = %d/%d/%d, want 2049", len(res.Freqs), len(res.Magnitude), len(res.MagnitudeDB))
			}
			testutil.RequireFinite(t, res.MagnitudeDB)

			for k, f := range res.Freqs {
				want := cmplx.Abs(xo.Response(f, tt.bass, tt.treble))
				if !core.NearlyEqual(res.Magnitude[k], want, 1e-9) {
					t.Fatalf("bin %d (f=%v): got %v, want %v", k, f, res.Magnitude[k], want)
				}
			}
		})
	}
}

func TestAnalyze_DoesNotAdvanceCaller(t *testing.T) {
	xo := newTestCrossover(t)
	xo.ProcessSample(0.5)
	low, high := xo.Low.State(), xo.High.State()

	if _, err := Analyze(xo, 6, 2, 256); err != nil {
		t.Fatal(err)
	}
	if xo.Low.State() != low || xo.High.State() != high {
		t.Fatal("Analyze changed caller state")
	}
}

func TestResult_At(t *testing.T) {
	xo := newTestCrossover(t)
	res, err := Analyze(xo, 6, 2, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.At(0); math.Abs(got-20*math.Log10(6)) > 1e-6 {
		t.Fatalf("At(0) = %v, want %v", got, 20*math.Log10(6))
	}
	if got := res.At(0.5); math.Abs(got-20*math.Log10(2)) > 1e-6 {
		t.Fatalf("At(0.5) = %v, want %v", got, 20*math.Log10(2))
	}
	if got := res.At(2); got != res.MagnitudeDB[len(res.MagnitudeDB)-1] {
		t.Fatal("At beyond Nyquist not clamped")
	}

	var empty Result
	if empty.At(0.1) != floorDB {
		t.Fatal("empty result should report the floor")
	}
}

func TestToneGain_MatchesClosedForm(t *testing.T) {
	f, err := mixer.NewFilters(500/testSR, 0.707)
	if err != nil {
		t.Fatal(err)
	}
	p := mixer.DefaultParams()

	for _, hz := range []float64{100, 1000, 5000} {
		left, right, err := ToneGain(f, p, hz, testSR, 4000, 8800)
		if err != nil {
			t.Fatal(err)
		}
		want := cmplx.Abs(f.Left.Response(hz/testSR, p.BassL, p.TrebleL)) * p.Gain1 * p.Master
		if math.Abs(left-want) > 0.02*want || math.Abs(right-want) > 0.02*want {
			t.Errorf("%v Hz: got L=%v R=%v, want %v", hz, left, right, want)
		}
	}
}

func TestToneGain_PanSilencesLeft(t *testing.T) {
	f, _ := mixer.NewFilters(500/testSR, 0.707)
	p := mixer.DefaultParams()
	p.Pan = 1

	left, right, err := ToneGain(f, p, 5000, testSR, 4000, 8800)
	if err != nil {
		t.Fatal(err)
	}
	if left != 0 {
		t.Fatalf("left gain = %v, want 0", left)
	}
	if right < 0.3 {
		t.Fatalf("right gain = %v, want unaffected", right)
	}
}

func TestToneGain_Invalid(t *testing.T) {
	f, _ := mixer.NewFilters(500/testSR, 0.707)
	p := mixer.DefaultParams()
	tests := []struct {
		name        string
		hz, sr, amp float64
		n           int
	}{
		{name: "zero freq", hz: 0, sr: testSR, amp: 1000, n: 1024},
		{name: "above nyquist", hz: 30000, sr: testSR, amp: 1000, n: 1024},
		{name: "zero rate", hz: 100, sr: 0, amp: 1000, n: 1024},
		{name: "zero amplitude", hz: 100, sr: testSR, amp: 0, n: 1024},
		{name: "too short", hz: 100, sr: testSR, amp: 1000, n: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ToneGain(f, p, tt.hz, tt.sr, tt.amp, tt.n)
			if !errors.Is(err, ErrInvalidTone) {
				t.Fatalf("err = %v, want ErrInvalidTone", err)
			}
		})
	}
	if _, _, err := ToneGain(nil, p, 100, testSR, 1000, 1024); !errors.Is(err, ErrNilInput) {
		t.Fatalf("nil filters: err = %v", err)
	}
}
