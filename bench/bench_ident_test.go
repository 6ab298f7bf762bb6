package bench

import (
	"math"
	"testing"

	"github.com/zhidao-sysid/sysid/fr"
	"github.com/zhidao-sysid/sysid/ident"
	"github.com/zhidao-sysid/sysid/tf"
)

func benchmarkSamples(b *testing.B, n int) []fr.FR {
	b.Helper()
	g, err := tf.New([]float64{1}, []float64{1, 0.3, 0.02})
	if err != nil {
		b.Fatalf("tf.New: %v", err)
	}
	out := make([]fr.FR, n)
	for i := range out {
		frac := float64(i) / float64(n-1)
		f := math.Pow(10, -1+frac*3) // log-spaced 0.1..100 Hz
		omega := 2 * math.Pi * f
		c, err := g.FreqResponse(omega)
		if err != nil {
			b.Fatalf("FreqResponse: %v", err)
		}
		out[i] = fr.FromComplex(c, omega)
	}
	return out
}

func BenchmarkIdentifySecondOrder(b *testing.B) {
	samples := benchmarkSamples(b, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ident.Identify(samples, 0, 2, 200, 1e-11); err != nil {
			b.Fatalf("Identify: %v", err)
		}
	}
}

func BenchmarkIdentifyLargeSampleSet(b *testing.B) {
	samples := benchmarkSamples(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ident.Identify(samples, 0, 2, 200, 1e-11); err != nil {
			b.Fatalf("Identify: %v", err)
		}
	}
}
