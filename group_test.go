package sway

import (
	"math"
	"testing"
)

func TestGroupDistributesTicksToAllChildren(t *testing.T) {
	x, y := 0.0, 0.0
	g := NewGroup(
		Animate(BindValue("x", &x), 100.0, 1.0, nil),
		Animate(BindValue("y", &y), 50.0, 2.0, nil),
	)
	g.Start()

	g.Advance(0.5)
	if math.Abs(x-50) > 1e-9 {
		t.Errorf("x = %f, want 50", x)
	}
	if math.Abs(y-12.5) > 1e-9 {
		t.Errorf("y = %f, want 12.5", y)
	}
}

func TestGroupCompletesWhenAllChildrenComplete(t *testing.T) {
	x, y := 0.0, 0.0
	fast := Animate(BindValue("x", &x), 100.0, 0.5, nil)
	slow := Animate(BindValue("y", &y), 50.0, 1.0, nil)
	g := NewGroup(fast, slow)
	g.Start()

	g.Advance(0.5)
	if fast.State() != StateCompleted {
		t.Fatalf("fast child state = %v, want completed", fast.State())
	}
	if g.State() != StateMoving {
		t.Errorf("group state = %v, want still moving", g.State())
	}

	g.Advance(0.5)
	if g.State() != StateCompleted {
		t.Errorf("group state = %v, want completed", g.State())
	}
	if x != 100 || y != 50 {
		t.Errorf("x = %f, y = %f; want exact ends", x, y)
	}
}

func TestGroupSyncedReverseHoldsFastChild(t *testing.T) {
	x, y := 0.0, 0.0
	fast := Animate(BindValue("x", &x), 100.0, 0.5, nil)
	slow := Animate(BindValue("y", &y), 50.0, 1.0, nil)

	g := NewGroupWith(GroupConfig{Reverses: true, SyncsChildMotions: true}, fast, slow)

	var order []string
	fast.OnReversed = func(*Motion) { order = append(order, "fast") }
	slow.OnReversed = func(*Motion) { order = append(order, "slow") }
	g.OnReversed = func(*Group) { order = append(order, "group") }

	g.Start()

	// Fast reaches its forward end and parks there instead of reversing.
	g.Advance(0.5)
	if x != 100 {
		t.Fatalf("x = %f, want parked at 100", x)
	}
	if fast.Direction() != DirectionForward {
		t.Fatal("fast child reversed before the group released it")
	}

	// Parked means frozen: the fast child must not move while slow
	// finishes its forward leg.
	g.Advance(0.25)
	if x != 100 {
		t.Errorf("x = %f, want still 100 while held", x)
	}
	if math.Abs(y-37.5) > 1e-9 {
		t.Errorf("y = %f, want 37.5", y)
	}

	// Slow reaches its end; the group flips everything at once, children
	// first, then itself.
	g.Advance(0.25)
	if g.Direction() != DirectionReverse {
		t.Fatalf("group direction = %v, want reverse", g.Direction())
	}
	if len(order) != 3 || order[0] != "fast" || order[1] != "slow" || order[2] != "group" {
		t.Errorf("reverse order = %v, want [fast slow group]", order)
	}

	g.Advance(0.5)
	if x != 0 {
		t.Errorf("x = %f, want fast child back at 0", x)
	}
	g.Advance(0.5)
	if g.State() != StateCompleted || y != 0 {
		t.Errorf("state = %v, y = %f; want completed, 0", g.State(), y)
	}
}

func TestGroupUnsyncedReverseFlipsChildrenIndividually(t *testing.T) {
	x, y := 0.0, 0.0
	fast := Animate(BindValue("x", &x), 100.0, 0.5, nil)
	slow := Animate(BindValue("y", &y), 50.0, 1.0, nil)
	g := NewGroupWith(GroupConfig{Reverses: true}, fast, slow)
	g.Start()

	g.Advance(0.5)
	if fast.Direction() != DirectionReverse {
		t.Fatal("fast child should flip at its own forward end")
	}

	// Fast is already halfway home while slow is still outbound.
	g.Advance(0.25)
	if math.Abs(x-50) > 1e-9 {
		t.Errorf("x = %f, want 50 on the way back", x)
	}
	if math.Abs(y-37.5) > 1e-9 {
		t.Errorf("y = %f, want 37.5 still outbound", y)
	}

	g.Advance(0.25)
	g.Advance(1.0)
	if g.State() != StateCompleted {
		t.Errorf("state = %v, want completed", g.State())
	}
	if x != 0 || y != 0 {
		t.Errorf("x = %f, y = %f; want both back at 0", x, y)
	}
}

func TestGroupRepeats(t *testing.T) {
	x := 0.0
	child := Animate(BindValue("x", &x), 10.0, 1.0, nil)

	var childStarts int
	child.OnStarted = func(*Motion) { childStarts++ }

	g := NewGroupWith(GroupConfig{Repeats: 1}, child)

	var repeated, completed int
	g.OnRepeated = func(*Group) { repeated++ }
	g.OnCompleted = func(*Group) { completed++ }
	g.Start()

	g.Advance(1.0)
	if repeated != 1 || g.State() != StateMoving {
		t.Fatalf("after cycle 1: repeated = %d, state = %v", repeated, g.State())
	}

	// The repeat replays from the original start values.
	g.Advance(0.5)
	if math.Abs(x-5) > 1e-9 {
		t.Errorf("x = %f, want 5 on second cycle", x)
	}

	g.Advance(0.5)
	if completed != 1 || childStarts != 2 {
		t.Errorf("completed = %d, childStarts = %d; want 1, 2", completed, childStarts)
	}
}

func TestGroupStopCascades(t *testing.T) {
	x, y := 0.0, 0.0
	c1 := Animate(BindValue("x", &x), 100.0, 1.0, nil)
	c2 := Animate(BindValue("y", &y), 50.0, 1.0, nil)
	g := NewGroup(c1, c2)
	g.Start()
	g.Advance(0.25)

	g.Stop()
	if c1.State() != StateCompleted || c2.State() != StateCompleted {
		t.Error("children not stopped with the group")
	}
	if g.State() != StateCompleted {
		t.Errorf("group state = %v, want completed", g.State())
	}
	if math.Abs(x-25) > 1e-9 {
		t.Errorf("x = %f, want frozen at 25", x)
	}
}

func TestGroupPauseResumeCascades(t *testing.T) {
	x := 0.0
	c := Animate(BindValue("x", &x), 100.0, 1.0, nil)
	g := NewGroup(c)
	g.Start()
	g.Advance(0.25)

	g.Pause()
	if c.State() != StatePaused {
		t.Fatalf("child state = %v, want paused", c.State())
	}
	g.Advance(0.5)
	if math.Abs(x-25) > 1e-9 {
		t.Errorf("x = %f, moved while paused", x)
	}

	g.Resume()
	g.Advance(0.25)
	if math.Abs(x-50) > 1e-9 {
		t.Errorf("x = %f, want 50", x)
	}
}

func TestGroupResetReturnsChildrenToIdle(t *testing.T) {
	x := 0.0
	c := Animate(BindValue("x", &x), 100.0, 1.0, nil)
	g := NewGroup(c)
	g.Start()
	g.Advance(0.5)

	g.Reset()
	if g.State() != StateIdle || c.State() != StateIdle {
		t.Fatalf("states = %v/%v, want idle/idle", g.State(), c.State())
	}

	g.Start()
	g.Advance(0.25)
	if math.Abs(x-25) > 1e-9 {
		t.Errorf("x = %f, want 25 after reset and restart", x)
	}
}

func TestGroupDelay(t *testing.T) {
	x := 0.0
	c := Animate(BindValue("x", &x), 100.0, 1.0, nil)
	g := NewGroupWith(GroupConfig{Delay: 0.5}, c)
	g.Start()

	if g.State() != StateDelayed || c.State() != StateIdle {
		t.Fatalf("states = %v/%v, want delayed/idle", g.State(), c.State())
	}

	g.Advance(0.75)
	if math.Abs(x-25) > 1e-9 {
		t.Errorf("x = %f, want 25 from delay excess", x)
	}
}

func TestGroupAddNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding nil child")
		}
	}()
	NewGroup().Add(nil)
}

func TestGroupPropagatesReversesToLateChildren(t *testing.T) {
	x := 0.0
	g := NewGroupWith(GroupConfig{Reverses: true, SyncsChildMotions: true})

	c := Animate(BindValue("x", &x), 100.0, 1.0, nil)
	g.Add(c)

	g.Start()
	g.Advance(1.0)
	if !c.heldForReverse() {
		t.Error("late child did not inherit the group's reverse hold")
	}
}
