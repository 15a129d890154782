package sway

import (
	"testing"

	"honnef.co/go/curve"
)

// setupBenchMotions creates n forever-cycling scalar motions, each bound to
// its own value, already started.
func setupBenchMotions(n int) ([]*Motion, []float64) {
	values := make([]float64, n)
	motions := make([]*Motion, n)
	for i := range motions {
		m := NewMotion(BindValue("x", &values[i]), MotionConfig{
			To:       100.0,
			Duration: 1.0,
			Reverses: true,
			Repeats:  RepeatForever,
		})
		m.Start()
		motions[i] = m
	}
	return motions, values
}

// --- Motion Benchmarks ---

func BenchmarkMotionAdvance_Scalar(b *testing.B) {
	motions, _ := setupBenchMotions(1)
	m := motions[0]
	m.Advance(1.0 / 240) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Advance(1.0 / 240)
	}
}

func BenchmarkMotionAdvance_Rect(b *testing.B) {
	r := Rect{Width: 10, Height: 10}
	m := NewMotion(BindValue("frame", &r), MotionConfig{
		To:       Rect{X: 50, Y: 80, Width: 200, Height: 100},
		Duration: 1.0,
		Reverses: true,
		Repeats:  RepeatForever,
	})
	m.Start()
	m.Advance(1.0 / 240) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Advance(1.0 / 240)
	}
}

func BenchmarkMotionAdvance_Additive(b *testing.B) {
	x := 0.0
	bind := BindValue("x", &x)
	m1 := NewMotion(bind, MotionConfig{
		To: 100.0, Duration: 1.0, Reverses: true, Repeats: RepeatForever, Additive: true,
	})
	m2 := NewMotion(bind, MotionConfig{
		To: -40.0, Duration: 0.7, Reverses: true, Repeats: RepeatForever, Additive: true,
	})
	m1.Start()
	m2.Start()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m1.Advance(1.0 / 240)
		m2.Advance(1.0 / 240)
	}
}

func BenchmarkGroupAdvance_100Motions(b *testing.B) {
	motions, _ := setupBenchMotions(100)
	movers := make([]Mover, len(motions))
	for i, m := range motions {
		movers[i] = m
	}
	g := NewGroup(movers...)
	g.Advance(1.0 / 240) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.Advance(1.0 / 240)
	}
}

// --- Registry Benchmarks ---

func BenchmarkRegistryGenerate_Rect(b *testing.B) {
	r := Rect{Width: 10, Height: 10}
	bind := BindValue("frame", &r)
	end := Rect{X: 50, Y: 80, Width: 200, Height: 100}
	reg := DefaultRegistry()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := reg.Generate(bind, []TargetState{{End: end}}, false, 1); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Physics and Spring Benchmarks ---

func BenchmarkPhysicsMotionAdvance(b *testing.B) {
	x := 0.0
	m := NewPhysicsMotion(BindValue("x", &x), PhysicsMotionConfig{
		Paths: []string{""},
		// Frictionless lossless bouncing never rests, so every iteration
		// does full work.
		Physics: PhysicsConfig{
			Velocity:              400,
			Restitution:           1,
			UseCollisionDetection: true,
			Minimum:               0,
			Maximum:               1000,
		},
	})
	m.Start()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Advance(1.0 / 240)
	}
}

func BenchmarkSpringMotionAdvance(b *testing.B) {
	x := 0.0
	m := NewSpringMotion(BindValue("x", &x), SpringConfig{To: 100.0, Damping: 0.01})
	m.OnCompleted = func(s *SpringMotion) { s.Start() }
	m.Start()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Advance(1.0 / 240)
	}
}

// --- Path Benchmarks ---

func benchArc() *SegmentPath {
	return NewSegmentPath(
		curve.CubicBez{
			P0: curve.Point{X: 0, Y: 0},
			P1: curve.Point{X: 100, Y: 200},
			P2: curve.Point{X: 300, Y: -100},
			P3: curve.Point{X: 400, Y: 50},
		},
	)
}

func BenchmarkPathPointAt_Raw(b *testing.B) {
	p := benchArc()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.PointAt(float64(i%1000) / 1000)
	}
}

func BenchmarkPathPointAt_Table(b *testing.B) {
	ps := NewPathState(benchArc())
	ps.BuildLookupTable(512)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ps.PointAt(float64(i%1000) / 1000)
	}
}

func BenchmarkPathMotionAdvance(b *testing.B) {
	pos := Vec2{}
	ps := NewPathState(benchArc())
	ps.BuildLookupTable(512)
	m := NewPathMotion(BindValue("pos", &pos), ps, PathMotionConfig{
		Duration: 1.0,
		Reverses: true,
		Repeats:  RepeatForever,
	})
	m.Start()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Advance(1.0 / 240)
	}
}
