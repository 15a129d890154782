package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/sway"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiNotifier(t *testing.T) {
	world := donburi.NewWorld()
	notifier := NewDonburiNotifier(world)
	if notifier == nil {
		t.Fatal("NewDonburiNotifier returned nil")
	}
}

func TestDonburiNotifier_Notify(t *testing.T) {
	world := donburi.NewWorld()
	notifier := NewDonburiNotifier(world)

	var received []sway.StatusEvent
	MotionEventType.Subscribe(world, func(w donburi.World, e sway.StatusEvent) {
		received = append(received, e)
	})

	notifier.Notify(sway.StatusEvent{Kind: sway.EventStarted})
	notifier.Notify(sway.StatusEvent{
		Kind:     sway.EventUpdated,
		Point:    sway.Vec2{X: 100, Y: 200},
		HasPoint: true,
	})

	// Events are queued until processed.
	MotionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Kind != sway.EventStarted || e0.HasPoint {
		t.Errorf("event 0: %+v", e0)
	}

	e1 := received[1]
	if e1.Kind != sway.EventUpdated || !e1.HasPoint {
		t.Errorf("event 1: %+v", e1)
	}
	if e1.Point.X != 100 || e1.Point.Y != 200 {
		t.Errorf("event 1 point: (%v,%v)", e1.Point.X, e1.Point.Y)
	}
}

func TestDonburiNotifier_ImplementsNotifier(t *testing.T) {
	world := donburi.NewWorld()
	var notifier sway.Notifier = NewDonburiNotifier(world)
	_ = notifier // compile-time interface check
}

func TestDonburiNotifier_MotionEvents(t *testing.T) {
	world := donburi.NewWorld()

	var kinds []sway.EventKind
	MotionEventType.Subscribe(world, func(w donburi.World, e sway.StatusEvent) {
		kinds = append(kinds, e.Kind)
	})

	value := 0.0
	m := sway.Animate(sway.BindValue("value", &value), 10.0, 1.0, nil)
	m.Notifier = NewDonburiNotifier(world)

	m.Start()
	m.Advance(0.5)
	m.Advance(0.6)
	MotionEventType.ProcessEvents(world)

	want := []sway.EventKind{sway.EventStarted, sway.EventUpdated, sway.EventCompleted}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(kinds), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("event %d: expected %v, got %v", i, k, kinds[i])
		}
	}
}

func TestDonburiNotifier_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	notifier := NewDonburiNotifier(world)

	var count1, count2 int
	MotionEventType.Subscribe(world, func(w donburi.World, e sway.StatusEvent) {
		count1++
	})
	MotionEventType.Subscribe(world, func(w donburi.World, e sway.StatusEvent) {
		count2++
	})

	notifier.Notify(sway.StatusEvent{Kind: sway.EventCompleted})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestAttach_CreatesComponent(t *testing.T) {
	world := donburi.NewWorld()
	entry := world.Entry(world.Create())

	value := 0.0
	m := sway.Animate(sway.BindValue("value", &value), 10.0, 1.0, nil)
	Attach(entry, m)

	if !entry.HasComponent(MotionsComponent) {
		t.Fatal("Attach did not add the Motions component")
	}
	if got := len(MotionsComponent.Get(entry).Movers); got != 1 {
		t.Fatalf("expected 1 mover, got %d", got)
	}

	// A second Attach appends rather than replacing.
	other := 0.0
	Attach(entry, sway.Animate(sway.BindValue("other", &other), 1.0, 1.0, nil))
	if got := len(MotionsComponent.Get(entry).Movers); got != 2 {
		t.Fatalf("expected 2 movers, got %d", got)
	}
}

func TestAdvanceMotions(t *testing.T) {
	world := donburi.NewWorld()

	a, b := 0.0, 0.0
	ma := sway.Animate(sway.BindValue("a", &a), 10.0, 1.0, nil)
	mb := sway.Animate(sway.BindValue("b", &b), 100.0, 1.0, nil)
	ma.Start()
	mb.Start()

	Attach(world.Entry(world.Create()), ma)
	Attach(world.Entry(world.Create()), mb)

	AdvanceMotions(world, 0.5)

	if math.Abs(a-5) > 1e-9 {
		t.Errorf("a: expected 5, got %v", a)
	}
	if math.Abs(b-50) > 1e-9 {
		t.Errorf("b: expected 50, got %v", b)
	}

	AdvanceMotions(world, 0.5)
	if ma.State() != sway.StateCompleted || mb.State() != sway.StateCompleted {
		t.Errorf("expected both completed, got %v and %v", ma.State(), mb.State())
	}
	if a != 10 || b != 100 {
		t.Errorf("expected exact ends, got %v and %v", a, b)
	}
}
