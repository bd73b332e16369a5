package hann

import (
	"strconv"
	"testing"
)

func BenchmarkWindow(b *testing.B) {
	sizes := []int{100, 256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Window(n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSumSquares(b *testing.B) {
	sizes := []int{100, 1024, 4096}
	for _, n := range sizes {
		w, err := Window(n)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = SumSquares(w)
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	sizes := []int{256, 1024, 4096}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]float64, n)
			for i := 0; i < b.N; i++ {
				if err := Apply(buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
