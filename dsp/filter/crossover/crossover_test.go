package crossover

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-mixeq/dsp/filter/design"
	"github.com/cwbudde/algo-mixeq/internal/testutil"
)

const (
	testSR = 44000.0
	testFc = 500.0 / testSR
	testQ  = 0.707
)

func TestNew_BandsMatchDesigner(t *testing.T) {
	xo, err := New(testFc, testQ)
	if err != nil {
		t.Fatal(err)
	}
	lp, _ := design.Design(design.LowPass, testFc, testQ, 0)
	hp, _ := design.Design(design.HighPass, testFc, testQ, 0)

	if xo.Low.Coefficients() != lp {
		t.Fatalf("low band = %+v, want %+v", xo.Low.Coefficients(), lp)
	}
	if xo.High.Coefficients() != hp {
		t.Fatalf("high band = %+v, want %+v", xo.High.Coefficients(), hp)
	}
	if xo.Fc() != testFc || xo.Q() != testQ {
		t.Fatalf("Fc/Q = %v/%v", xo.Fc(), xo.Q())
	}
}

func TestNewHz_Validation(t *testing.T) {
	tests := []struct {
		name          string
		freq, q, rate float64
		wantErr       bool
	}{
		{name: "valid", freq: 500, q: 0.707, rate: 44000},
		{name: "zero freq", freq: 0, q: 0.707, rate: 44000, wantErr: true},
		{name: "at nyquist", freq: 22000, q: 0.707, rate: 44000, wantErr: true},
		{name: "zero q", freq: 500, q: 0, rate: 44000, wantErr: true},
		{name: "zero rate", freq: 500, q: 0.707, rate: 0, wantErr: true},
		{name: "nan rate", freq: 500, q: 0.707, rate: math.NaN(), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xo, err := NewHz(tt.freq, tt.q, tt.rate)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if xo != nil {
					t.Fatal("expected nil crossover on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestProcessSample_BandsAreIndependentViews(t *testing.T) {
	xo, _ := New(testFc, testQ)
	lp, _ := design.New(design.LowPass, testFc, testQ, 0)
	hp, _ := design.New(design.HighPass, testFc, testQ, 0)

	in := testutil.DeterministicNoise(7, 1, 512)
	for i, x := range in {
		lo, hi := xo.ProcessSample(x)
		if wantLo := lp.ProcessSample(x); lo != wantLo {
			t.Fatalf("sample %d: lo = %v, want %v", i, lo, wantLo)
		}
		if wantHi := hp.ProcessSample(x); hi != wantHi {
			t.Fatalf("sample %d: hi = %v, want %v", i, hi, wantHi)
		}
	}
}

func TestProcessBlock_MatchesProcessSample(t *testing.T) {
	in := testutil.DeterministicSine(440, testSR, 0.8, 1000)

	ref, _ := New(testFc, testQ)
	wantLo := make([]float64, len(in))
	wantHi := make([]float64, len(in))
	for i, x := range in {
		wantLo[i], wantHi[i] = ref.ProcessSample(x)
	}

	xo, _ := New(testFc, testQ)
	lo := make([]float64, len(in))
	hi := make([]float64, len(in))
	xo.ProcessBlock(in[:300], lo[:300], hi[:300])
	xo.ProcessBlock(in[300:], lo[300:], hi[300:])

	for i := range in {
		if math.Abs(lo[i]-wantLo[i]) > 1e-12 || math.Abs(hi[i]-wantHi[i]) > 1e-12 {
			t.Fatalf("sample %d: got (%v, %v), want (%v, %v)", i, lo[i], hi[i], wantLo[i], wantHi[i])
		}
	}

	xo.ProcessBlock(nil, nil, nil)
}

func TestResponse_WeightedSum(t *testing.T) {
	xo, _ := New(testFc, testQ)

	// Equal weights notch out the cutoff.
	if mag := cmplx.Abs(xo.Response(testFc, 1, 1)); mag > 1e-9 {
		t.Fatalf("|LP+HP| at fc = %v, want ~0", mag)
	}

	// Band weights dominate far from the cutoff.
	if got := cmplx.Abs(xo.Response(1e-5, 6, 2)); math.Abs(got-6) > 1e-3 {
		t.Fatalf("low end gain = %v, want ~6", got)
	}
	if got := cmplx.Abs(xo.Response(0.5, 6, 2)); math.Abs(got-2) > 1e-9 {
		t.Fatalf("nyquist gain = %v, want 2", got)
	}

	lc, hc := xo.Low.Coefficients(), xo.High.Coefficients()
	f := 0.05
	want := 3*lc.Response(f) + 0.5*hc.Response(f)
	if got := xo.Response(f, 3, 0.5); cmplx.Abs(got-want) > 1e-15 {
		t.Fatalf("Response = %v, want %v", got, want)
	}
}

func TestResponse_MatchesMeasuredSteadyState(t *testing.T) {
	xo, _ := New(testFc, testQ)
	const bass, treble = 6.0, 2.0
	f := 2000.0 / testSR

	n := 8800
	in := testutil.DeterministicSine(2000, testSR, 1, n)
	peak := 0.0
	for i, x := range in {
		lo, hi := xo.ProcessSample(x)
		y := bass*lo + treble*hi
		if i > n/2 {
			peak = math.Max(peak, math.Abs(y))
		}
	}
	want := cmplx.Abs(xo.Response(f, bass, treble))
	if math.Abs(peak-want) > 0.03*want {
		t.Fatalf("measured peak %v, closed-form %v", peak, want)
	}
}

func TestReset(t *testing.T) {
	xo, _ := New(testFc, testQ)
	xo.ProcessSample(1)
	xo.ProcessSample(-0.5)
	xo.Reset()

	fresh, _ := New(testFc, testQ)
	for i := range 16 {
		x := float64(i%3) - 1
		lo, hi := xo.ProcessSample(x)
		wlo, whi := fresh.ProcessSample(x)
		if lo != wlo || hi != whi {
			t.Fatalf("sample %d after reset differs", i)
		}
	}
}

func TestProcessSample_ZeroAlloc(t *testing.T) {
	xo, _ := New(testFc, testQ)
	in := make([]float64, 128)
	lo := make([]float64, 128)
	hi := make([]float64, 128)
	allocs := testing.AllocsPerRun(100, func() {
		xo.ProcessSample(0.25)
		xo.ProcessBlock(in, lo, hi)
	})
	if allocs != 0 {
		t.Fatalf("allocs = %v, want 0", allocs)
	}
}

func BenchmarkCrossover_ProcessSample(b *testing.B) {
	xo, _ := New(testFc, testQ)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		xo.ProcessSample(0.5)
	}
}
