// Package benchmarks provides performance benchmarks for CDF evaluation.
package benchmarks

import (
	"context"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/comalice/circstatx"
	"github.com/comalice/circstatx/internal/bessel"
	"github.com/comalice/circstatx/internal/primitives"
)

func BenchmarkCDF(b *testing.B) {
	for _, kappa := range Concentrations {
		b.Run(fmt.Sprintf("kappa=%g", kappa), func(b *testing.B) {
			vm, err := circstatx.New(0, kappa)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := vm.CDF(0.25); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCDFTerms(b *testing.B) {
	vm, err := circstatx.New(0, 4)
	if err != nil {
		b.Fatal(err)
	}
	for _, terms := range []int{10, 50, 100, 400} {
		ev := circstatx.NewEvaluator(circstatx.WithTerms(terms))
		b.Run(fmt.Sprintf("terms=%d", terms), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ev.CDF(vm, 0.25); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScaledSequence(b *testing.B) {
	dst := make([]float64, circstatx.DefaultTerms)
	for _, kappa := range Concentrations {
		b.Run(fmt.Sprintf("kappa=%g", kappa), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := bessel.ScaledSequenceInto(kappa, dst); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCDFBatch(b *testing.B) {
	vm, err := circstatx.New(0.5, 10)
	if err != nil {
		b.Fatal(err)
	}
	xs := GenPoints(0.5, 1024)
	for _, workers := range []int{1, 4, 16} {
		ev := circstatx.NewEvaluator(circstatx.WithConcurrency(workers))
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ev.CDFBatch(context.Background(), vm, xs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParamSetDecode(b *testing.B) {
	data := GenParamSetYAML(256)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var set primitives.ParamSet
		if err := yaml.Unmarshal(data, &set); err != nil {
			b.Fatal(err)
		}
		if err := set.Validate(); err != nil {
			b.Fatal(err)
		}
	}
}

func TestGenParamSetValid(t *testing.T) {
	set := GenParamSet(12)
	if err := set.Validate(); err != nil {
		t.Fatalf("generated set invalid: %v", err)
	}
	for _, x := range GenPoints(1, 7) {
		if x <= 1-3.1415926535897931 || x >= 1+3.1415926535897931 {
			t.Errorf("point %v outside range", x)
		}
	}
}
