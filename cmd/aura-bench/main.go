// FILE: cmd/aura-bench/main.go
package main

import (
	"flag"
	"fmt"
	rand2 "math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/lixenwraith/aura/asset"
	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/registry"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/render/ggcanvas"
	"github.com/lixenwraith/aura/scene"
)

const seedText = "bench"

type benchmark struct {
	name  string
	calls int
	fn    func(b *testing.B)
}

// frameBench measures one Update+Draw of the named scene onto c
func frameBench(reg *registry.Registry, opts scene.Options, name string, c render.Canvas) func(b *testing.B) {
	return func(b *testing.B) {
		s, err := reg.Create(name, opts)
		if err != nil {
			b.Fatal(err)
		}
		s.Init(seedText, prng.FromString(seedText), scene.Context{DOB: time.Date(2012, 12, 22, 0, 0, 0, 0, time.UTC)})
		w, h := c.Size()
		v := render.NewView(float64(w), float64(h), 1, 0, 0)
		s.Resize(v.SceneSize())

		rec, _ := c.(*render.Recorder)
		now := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		for b.Loop() {
			now = now.Add(time.Second / 60)
			c.SetTransform(v.Matrix())
			c.Clear()
			s.Update(time.Second/60, now)
			s.Draw(c, v, now)
			if rec != nil {
				rec.Reset()
			}
		}
	}
}

func main() {
	size := flag.Int("size", 400, "canvas edge in pixels")
	png := flag.Bool("png", false, "include the raster canvas")
	flag.Parse()

	const n = 100
	const bound = 1000

	benchmarks := []benchmark{
		{"prng.Generator.Next (mulberry32)", n, func(b *testing.B) {
			g := prng.New(12345)
			for b.Loop() {
				for i := 0; i < n; i++ {
					_ = g.Next()
				}
			}
		}},
		{"prng.Intn via Generator", n, func(b *testing.B) {
			g := prng.New(12345)
			for b.Loop() {
				for i := 0; i < n; i++ {
					_ = prng.Intn(g, bound)
				}
			}
		}},
		{"math/rand/v2.PCG.Float64", n, func(b *testing.B) {
			rng := rand2.New(rand2.NewPCG(12345, 67890))
			for b.Loop() {
				for i := 0; i < n; i++ {
					_ = rng.Float64()
				}
			}
		}},
		{"prng.HashToSeed", 1, func(b *testing.B) {
			for b.Loop() {
				_ = prng.HashToSeed("1990-06-15T08:30")
			}
		}},
	}

	reg := registry.Default()
	opts := scene.DefaultOptions()
	opts.IntroDuration = 0
	opts.Loader = asset.NewLoader(asset.Embedded(), 64)

	var raster *ggcanvas.Canvas
	if *png {
		raster = ggcanvas.New(*size, *size)
		defer raster.Close()
	}
	for _, name := range reg.Names() {
		if name == registry.Contour {
			// glyph loads asynchronously; the frame cost before Ready is the placeholder ring
			continue
		}
		benchmarks = append(benchmarks,
			benchmark{name + " frame (dots)", 1, frameBench(reg, opts, name, render.NewDotBuffer(*size, *size))},
			benchmark{name + " frame (recorder)", 1, frameBench(reg, opts, name, render.NewRecorder(*size, *size))},
		)
		if raster != nil {
			benchmarks = append(benchmarks, benchmark{name + " frame (raster)", 1, frameBench(reg, opts, name, raster)})
		}
	}

	fmt.Printf("Benchmark: prng %d calls per iteration, bound=%d, canvas %dx%d\n\n", n, bound, *size, *size)
	fmt.Printf("%-40s %12s %12s\n", "Name", "ns/op", "ns/call")
	fmt.Println("--------------------------------------------------------------")

	for _, bm := range benchmarks {
		result := testing.Benchmark(bm.fn)
		if result.N == 0 {
			fmt.Fprintf(os.Stderr, "%s: failed\n", bm.name)
			continue
		}
		nsPerOp := float64(result.T.Nanoseconds()) / float64(result.N)
		fmt.Printf("%-40s %10.1f ns %9.2f ns\n", bm.name, nsPerOp, nsPerOp/float64(bm.calls))
	}

	// Same seed text, same sequence
	fmt.Println("\nSequence (seed text \"aura\", 5 values, bound=100):")
	for run := 0; run < 2; run++ {
		g := prng.FromString("aura")
		fmt.Printf("  run %d: ", run+1)
		for i := 0; i < 5; i++ {
			fmt.Printf("%3d ", prng.Intn(g, 100))
		}
		fmt.Println()
	}
}
