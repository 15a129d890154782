// Package sway animates arbitrary Go values by decomposing them into scalar
// components, interpolating each component, and writing the results back
// every tick.
//
// Unlike a plain tween library, sway does not require animated state to be a
// float64 you own. A [Motion] targets any value reachable through a
// [Binding] (a struct field, an [ebiten.GeoM], a color, a slice of floats),
// and a registry of [ValueAdapter] implementations breaks that value into the
// scalar [Property] descriptors that actually get interpolated. Adapters for
// the common Ebitengine and image types are registered by default, and you
// can add your own for project-specific types.
//
// # Quick start
//
// Bind a value, describe where it should go, and drive the motion from your
// game loop:
//
//	pos := sway.Vec2{X: 10, Y: 10}
//	motion := sway.NewMotion(sway.BindValue("pos", &pos), sway.MotionConfig{
//		To:       sway.Vec2{X: 90, Y: 50},
//		Duration: 1.5,
//		Easing:   ease.OutCubic,
//	})
//	motion.Start()
//
//	// in ebiten.Game.Update:
//	motion.Advance(1.0 / float64(ebiten.TPS()))
//
// Every mover exposes the same lifecycle (Start, Stop, Pause, Resume,
// Reset, Advance) through the [Mover] interface, and composites accept any
// Mover as a child:
//
//	group := sway.NewGroup(moveX, fadeOut)
//	seq := sway.NewSequence(group, bounceBack)
//	seq.Start()
//
// # Movers
//
// [Motion] interpolates between start and end values over a duration with an
// easing curve, optionally reversing, repeating, or blending additively.
// [PhysicsMotion] replaces the easing curve with a velocity/friction solver
// and boundary collisions. [SpringMotion] settles values with damped
// harmonic motion (via [harmonica]). [PathMotion] and [PathPhysicsMotion]
// travel along multi-segment geometric paths built from [curve] segments.
// [Group] runs children in parallel; [Sequence] runs them one after another.
//
// # Ticking
//
// Movers never advance themselves. Call [Mover.Advance] with a delta-time in
// seconds, either directly from your update loop or through a [TickerTempo]
// or [FrameTempo] that forwards ticks for you. All mover methods must be
// called from the goroutine that drives Advance; the only concurrency inside
// the package is the background path lookup-table build, which is
// synchronized internally.
//
// ECS integration for [Donburi] lives in sway/ecs.
//
// [harmonica]: https://github.com/charmbracelet/harmonica
// [curve]: https://honnef.co/go/curve
// [Donburi]: https://github.com/yohamta/donburi
package sway
