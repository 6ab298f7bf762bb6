package ident

import (
	"math"
	"testing"

	"github.com/zhidao-sysid/sysid/errs"
	"github.com/zhidao-sysid/sysid/fr"
	"github.com/zhidao-sysid/sysid/tf"
)

func sampleTF(t *testing.T, g tf.TF, omegas []float64) []fr.FR {
	t.Helper()
	out := make([]fr.FR, len(omegas))
	for i, omega := range omegas {
		c, err := g.FreqResponse(omega)
		if err != nil {
			t.Fatalf("FreqResponse(%g): %v", omega, err)
		}
		out[i] = fr.FromComplex(c, omega)
	}
	return out
}

func TestIdentifyRecoversFirstOrder(t *testing.T) {
	truth, err := tf.New([]float64{2}, []float64{1, 0.5})
	if err != nil {
		t.Fatalf("tf.New: %v", err)
	}
	omegas := []float64{0.1, 0.2, 0.5, 1, 2, 5, 10, 20}
	samples := sampleTF(t, truth, omegas)

	got, err := Identify(samples, 0, 1, 50, 1e-10)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if math.Abs(got.Num.At(0)-2) > 1e-4 {
		t.Fatalf("numerator = %v, want ~2", got.Num.Coeffs)
	}
	if got.Den.At(0) != 1.0 {
		t.Fatalf("den[0] = %v, want exactly 1.0", got.Den.At(0))
	}
	if math.Abs(got.Den.At(1)-0.5) > 1e-4 {
		t.Fatalf("den[1] = %v, want ~0.5", got.Den.At(1))
	}
}

func TestIdentifyRecoversSecondOrder(t *testing.T) {
	truth, err := tf.New([]float64{1}, []float64{1, 0.4, 0.25})
	if err != nil {
		t.Fatalf("tf.New: %v", err)
	}
	omegas := []float64{0.05, 0.1, 0.2, 0.4, 0.8, 1.2, 2, 3.5, 6, 10}
	samples := sampleTF(t, truth, omegas)

	got, err := Identify(samples, 0, 2, 100, 1e-10)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if math.Abs(got.Den.At(1)-0.4) > 1e-3 || math.Abs(got.Den.At(2)-0.25) > 1e-3 {
		t.Fatalf("den = %v, want [1, 0.4, 0.25]", got.Den.Coeffs)
	}
}

func TestIdentifyInsufficientData(t *testing.T) {
	samples := []fr.FR{{F: 1, G: 0, P: 0}}
	_, err := Identify(samples, 2, 2, 10, 1e-6)
	if !errs.Is(err, errs.InsufficientData) {
		t.Fatalf("err = %v, want InsufficientData", err)
	}
}

func TestIdentifyDegreeOutOfRange(t *testing.T) {
	samples := []fr.FR{{F: 1}, {F: 2}, {F: 3}}
	_, err := Identify(samples, 0, 0, 10, 1e-6)
	if !errs.Is(err, errs.DegreeOutOfRange) {
		t.Fatalf("err = %v, want DegreeOutOfRange", err)
	}
}

func TestIdentifyWithHistoryRecordsOneEntryPerIteration(t *testing.T) {
	truth, err := tf.New([]float64{2}, []float64{1, 0.5})
	if err != nil {
		t.Fatalf("tf.New: %v", err)
	}
	omegas := []float64{0.1, 0.2, 0.5, 1, 2, 5, 10, 20}
	samples := sampleTF(t, truth, omegas)

	got, history, err := IdentifyWithHistory(samples, 0, 1, 50, 1e-10)
	if err != nil {
		t.Fatalf("IdentifyWithHistory: %v", err)
	}
	if len(history) == 0 {
		t.Fatal("history is empty, want at least one recorded step size")
	}
	if len(history) > 50 {
		t.Fatalf("len(history) = %d, want <= max_iter (50)", len(history))
	}
	for i, v := range history {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("history[%d] = %v, want a finite step size", i, v)
		}
	}
	if math.Abs(got.Num.At(0)-2) > 1e-4 {
		t.Fatalf("numerator = %v, want ~2", got.Num.Coeffs)
	}
}

func TestIdentifyDefaultsAppliedForNonPositiveArgs(t *testing.T) {
	truth, err := tf.New([]float64{1}, []float64{1, 1})
	if err != nil {
		t.Fatalf("tf.New: %v", err)
	}
	omegas := []float64{0.1, 0.3, 1, 3, 10}
	samples := sampleTF(t, truth, omegas)

	_, err = Identify(samples, 0, 1, 0, 0)
	if err != nil && !errs.Is(err, errs.Nonconvergent) {
		t.Fatalf("Identify with defaults: %v", err)
	}
}
