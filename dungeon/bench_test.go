package dungeon_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/katalvlaran/cavern/dungeon"
)

func benchmarkNew(b *testing.B, height, width int, floors uint16, workers int) {
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := dungeon.New(ctx, height, width, floors, dungeon.Cave,
			dungeon.WithSeed(int64(i)), dungeon.WithWorkers(workers))
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNew_50x100_10Floors measures ten 50×100 floors on every core.
func BenchmarkNew_50x100_10Floors(b *testing.B) { benchmarkNew(b, 50, 100, 10, runtime.GOMAXPROCS(0)) }

// BenchmarkNew_100x200_10Floors measures ten 100×200 floors on every core.
func BenchmarkNew_100x200_10Floors(b *testing.B) { benchmarkNew(b, 100, 200, 10, runtime.GOMAXPROCS(0)) }

// BenchmarkNew_50x50_100Floors measures the fan-out over many small floors.
func BenchmarkNew_50x50_100Floors(b *testing.B) { benchmarkNew(b, 50, 50, 100, runtime.GOMAXPROCS(0)) }

// BenchmarkNew_50x50_100Floors_Serial is the single-worker baseline.
func BenchmarkNew_50x50_100Floors_Serial(b *testing.B) { benchmarkNew(b, 50, 50, 100, 1) }
