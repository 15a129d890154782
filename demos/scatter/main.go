// scatter sends a swarm of dots around a looping track and lets you blast
// them off it with a click. Path motions drive the dots along the shared
// curve at their own pace; a click flings every nearby dot radially and a
// spring pulls each one back onto the track. All shapes are procedural
// (no textures), so it compiles to WASM for the docs site.
package main

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/curve"

	"github.com/phanxgames/sway"
)

const (
	screenW = 1280
	screenH = 720

	dotCount  = 28
	dotRadius = 7.0

	// Explosion settings
	blastRadius = 260.0
	blastForce  = 180.0

	// Spring that pulls scattered dots back to the track
	pullFrequency = 5.0
	pullDamping   = 0.35
)

type dot struct {
	pos    sway.Vec2 // written by the path motion
	offset sway.Vec2 // scatter displacement; a spring returns it to zero
	tint   color.RGBA

	follow *sway.PathMotion
	pull   *sway.SpringMotion
}

type game struct {
	tempo *sway.FrameTempo
	track *sway.PathState
	trace []sway.Vec2
	dots  [dotCount]*dot
}

func newGame() *game {
	g := &game{tempo: sway.NewFrameTempo()}
	g.track = sway.NewPathState(newTrack())
	g.track.BuildLookupTable(1024)

	// Pre-sample the track once for the faint guide line.
	g.trace = make([]sway.Vec2, 257)
	for i := range g.trace {
		g.trace[i] = g.track.PointAt(float64(i) / 256)
	}

	for i := range g.dots {
		d := &dot{}
		c := colorful.Hsv(float64(i)*360/dotCount, 0.65, 0.95)
		r, gr, b := c.RGB255()
		d.tint = color.RGBA{R: r, G: gr, B: b, A: 0xff}

		// Each dot loops forever from its own phase; the wrap edge joins
		// the lap seamlessly.
		phase := rand.Float64()
		d.follow = sway.NewPathMotion(sway.BindValue("pos", &d.pos), g.track, sway.PathMotionConfig{
			Duration:      6 + rand.Float64()*8,
			StartPosition: phase,
			EndPosition:   phase + 1,
			Edge:          sway.EdgeWrap,
			Repeats:       sway.RepeatForever,
		})
		g.tempo.Attach(d.follow)
		d.follow.Start()
		g.dots[i] = d
	}
	return g
}

// newTrack builds a rounded figure-of-eight from cubic segments.
func newTrack() *sway.SegmentPath {
	pt := func(x, y float64) curve.Point { return curve.Point{X: x, Y: y} }
	return sway.NewSegmentPath(
		curve.CubicBez{P0: pt(640, 360), P1: pt(980, 120), P2: pt(1220, 360), P3: pt(980, 600)},
		curve.CubicBez{P0: pt(980, 600), P1: pt(760, 560), P2: pt(640, 360), P3: pt(640, 360)},
		curve.CubicBez{P0: pt(640, 360), P1: pt(300, 600), P2: pt(60, 360), P3: pt(300, 120)},
		curve.CubicBez{P0: pt(300, 120), P1: pt(520, 160), P2: pt(640, 360), P3: pt(640, 360)},
	)
}

func (g *game) Update() error {
	g.tempo.Tick()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.blast(float64(mx), float64(my))
	}
	return nil
}

// blast flings every dot near (cx, cy) radially off the track, with force
// falling off toward the blast edge, then springs it back.
func (g *game) blast(cx, cy float64) {
	for _, d := range g.dots {
		px := d.pos.X + d.offset.X
		py := d.pos.Y + d.offset.Y
		dx, dy := px-cx, py-cy
		dist := math.Hypot(dx, dy)
		if dist > blastRadius || dist < 0.1 {
			continue
		}

		strength := blastForce * (1 - dist/blastRadius)
		d.offset.X += dx / dist * strength
		d.offset.Y += dy / dist * strength

		if d.pull != nil {
			g.tempo.Detach(d.pull)
		}
		d.pull = sway.NewSpringMotion(sway.BindValue("offset", &d.offset), sway.SpringConfig{
			To:               sway.Vec2{},
			AngularFrequency: pullFrequency,
			Damping:          pullDamping,
		})
		g.tempo.Attach(d.pull)
		d.pull.Start()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x17, A: 0xff})

	guide := color.RGBA{R: 0x2c, G: 0x2c, B: 0x3a, A: 0xff}
	for i := 1; i < len(g.trace); i++ {
		a, b := g.trace[i-1], g.trace[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, guide, true)
	}

	for _, d := range g.dots {
		x := float32(d.pos.X + d.offset.X)
		y := float32(d.pos.Y + d.offset.Y)
		vector.DrawFilledCircle(screen, x, y, dotRadius, d.tint, true)
	}
}

func (g *game) Layout(_, _ int) (int, int) { return screenW, screenH }

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Sway - Scatter")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
