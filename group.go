package sway

// Internal contracts between composites and their children. Motion, Group,
// and Sequence implement all three; foreign Mover implementations degrade
// to documented fallbacks.
type reverseSetter interface {
	SetReverses(bool)
}

type reverseHolder interface {
	setHoldReverse(bool)
	heldForReverse() bool
	releaseReverse()
}

type reverseLegger interface {
	beginReverseLeg()
}

// GroupConfig controls a [Group]'s cycle behavior.
type GroupConfig struct {
	// Reverses plays every child's cycle back after its forward end. The
	// flag is propagated to each child, so children need not know they
	// are nested.
	Reverses bool
	// SyncsChildMotions makes the group withhold the reverse leg from
	// every child until all of them have finished their forward legs,
	// then release them simultaneously. Without it each child reverses
	// the instant it reaches its own forward end. Only meaningful
	// together with Reverses.
	SyncsChildMotions bool
	// Repeats is the number of additional full cycles after the first;
	// [RepeatForever] removes the budget.
	Repeats int
	// Delay postpones starting the children for this many seconds after
	// Start.
	Delay float64
}

// Group runs child movers in parallel: every tick is distributed to every
// child unconditionally, in registration order, and the group completes
// when all children have completed. Children may be motions or other
// composites to arbitrary depth.
type Group struct {
	OnStarted   func(*Group)
	OnStopped   func(*Group)
	OnUpdated   func(*Group)
	OnReversed  func(*Group)
	OnRepeated  func(*Group)
	OnPaused    func(*Group)
	OnResumed   func(*Group)
	OnCompleted func(*Group)

	// Notifier, when set, receives every status event after the matching
	// callback has run.
	Notifier Notifier

	children []Mover

	reverses bool
	syncs    bool
	repeats  int
	delay    float64

	state        MotionState
	direction    MotionDirection
	delayElapsed float64
	cyclesDone   int

	holdReverse bool
	held        bool
}

// NewGroup creates a parallel group with default behavior: play every child
// forward once and complete.
func NewGroup(children ...Mover) *Group {
	return NewGroupWith(GroupConfig{}, children...)
}

// NewGroupWith creates a parallel group with the given cycle behavior.
func NewGroupWith(cfg GroupConfig, children ...Mover) *Group {
	g := &Group{
		syncs:   cfg.SyncsChildMotions,
		repeats: cfg.Repeats,
		delay:   cfg.Delay,
	}
	if g.delay < 0 {
		g.delay = 0
	}
	for _, c := range children {
		g.Add(c)
	}
	g.SetReverses(cfg.Reverses)
	return g
}

// Add appends a child. The group's reverse settings are propagated to it.
func (g *Group) Add(child Mover) {
	if child == nil {
		panic("sway: cannot add nil child to Group")
	}
	g.children = append(g.children, child)
	g.propagate(child)
}

// Children returns the child movers in registration order.
func (g *Group) Children() []Mover { return g.children }

// propagate pushes the group's reverse ownership onto one child.
func (g *Group) propagate(child Mover) {
	if rs, ok := child.(reverseSetter); ok {
		rs.SetReverses(g.reverses)
	}
	if rh, ok := child.(reverseHolder); ok {
		rh.setHoldReverse(g.reverses && g.syncs)
	}
}

// SetReverses toggles reverse cycles for the group and all current
// children.
func (g *Group) SetReverses(reverses bool) {
	g.reverses = reverses
	for _, c := range g.children {
		g.propagate(c)
	}
}

// Reverses reports whether the group plays a reverse leg.
func (g *Group) Reverses() bool { return g.reverses }

// SetSyncsChildMotions toggles simultaneous reversal. See
// [GroupConfig.SyncsChildMotions].
func (g *Group) SetSyncsChildMotions(sync bool) {
	g.syncs = sync
	for _, c := range g.children {
		g.propagate(c)
	}
}

// SetRepeats sets how many additional full cycles run after the first.
func (g *Group) SetRepeats(cycles int) { g.repeats = cycles }

// Start starts every child in registration order. A no-op unless the group
// is idle or completed.
func (g *Group) Start() {
	if g.state != StateIdle && g.state != StateCompleted {
		return
	}
	g.delayElapsed = 0
	g.cyclesDone = 0
	g.direction = DirectionForward
	g.held = false
	if g.delay > 0 {
		g.state = StateDelayed
		return
	}
	g.beginMovement()
}

func (g *Group) beginMovement() {
	for _, c := range g.children {
		c.Start()
	}
	g.state = StateMoving
	g.emit(EventStarted, g.OnStarted)
}

// Stop stops every child, then the group itself. Emits one "stopped".
func (g *Group) Stop() {
	if g.state == StateCompleted {
		return
	}
	for _, c := range g.children {
		c.Stop()
	}
	g.state = StateCompleted
	g.held = false
	g.emit(EventStopped, g.OnStopped)
}

// Pause freezes the group and every child.
func (g *Group) Pause() {
	if g.state != StateMoving {
		return
	}
	for _, c := range g.children {
		c.Pause()
	}
	g.state = StatePaused
	g.emit(EventPaused, g.OnPaused)
}

// Resume unfreezes a paused group and every child.
func (g *Group) Resume() {
	if g.state != StatePaused {
		return
	}
	for _, c := range g.children {
		c.Resume()
	}
	g.state = StateMoving
	g.emit(EventResumed, g.OnResumed)
}

// Reset returns the group and every child to idle.
func (g *Group) Reset() {
	for _, c := range g.children {
		c.Reset()
	}
	g.state = StateIdle
	g.direction = DirectionForward
	g.delayElapsed = 0
	g.cyclesDone = 0
	g.held = false
}

// Advance distributes dt to every child unconditionally, then aggregates
// their states: reversal once all children are ready to reverse, completion
// once all children have completed.
func (g *Group) Advance(dt float64) {
	if dt < 0 {
		return
	}
	switch g.state {
	case StateDelayed:
		g.delayElapsed += dt
		if g.delayElapsed < g.delay {
			return
		}
		excess := g.delayElapsed - g.delay
		g.beginMovement()
		if excess > 0 && g.state == StateMoving {
			g.tick(excess)
		}
	case StateMoving:
		g.tick(dt)
	}
}

func (g *Group) tick(dt float64) {
	for _, c := range g.children {
		c.Advance(dt)
	}

	if g.reverses && g.direction == DirectionForward {
		if g.syncs {
			if g.allForwardDone() {
				if g.holdReverse {
					g.held = true
					return
				}
				g.reverseAll()
			}
		} else if g.allFlipped() {
			g.direction = DirectionReverse
			g.emit(EventReversed, g.OnReversed)
		}
		if g.direction == DirectionForward {
			g.emit(EventUpdated, g.OnUpdated)
			return
		}
		return
	}

	if g.allCompleted() {
		if g.repeats != 0 && (g.repeats < 0 || g.cyclesDone < g.repeats) {
			g.cyclesDone++
			g.direction = DirectionForward
			for _, c := range g.children {
				c.Reset()
				c.Start()
			}
			g.emit(EventRepeated, g.OnRepeated)
			return
		}
		g.state = StateCompleted
		g.emit(EventCompleted, g.OnCompleted)
		return
	}
	g.emit(EventUpdated, g.OnUpdated)
}

// allForwardDone reports whether every child has finished its forward leg:
// parked waiting for release, or already completed outright.
func (g *Group) allForwardDone() bool {
	for _, c := range g.children {
		if c.State() == StateCompleted {
			continue
		}
		if rh, ok := c.(reverseHolder); ok && rh.heldForReverse() {
			continue
		}
		return false
	}
	return true
}

// allFlipped reports whether every child has either flipped into its
// reverse leg on its own or completed.
func (g *Group) allFlipped() bool {
	for _, c := range g.children {
		if c.State() == StateCompleted || c.Direction() == DirectionReverse {
			continue
		}
		return false
	}
	return true
}

func (g *Group) allCompleted() bool {
	for _, c := range g.children {
		if c.State() != StateCompleted {
			return false
		}
	}
	return true
}

// reverseAll flips the group and releases every held child simultaneously.
func (g *Group) reverseAll() {
	g.direction = DirectionReverse
	for _, c := range g.children {
		if rh, ok := c.(reverseHolder); ok {
			rh.releaseReverse()
		}
	}
	g.emit(EventReversed, g.OnReversed)
}

func (g *Group) emit(kind EventKind, cb func(*Group)) {
	if cb != nil {
		cb(g)
	}
	if g.Notifier != nil {
		g.Notifier.Notify(StatusEvent{Kind: kind, Source: g})
	}
}

// State reports the group's lifecycle state.
func (g *Group) State() MotionState { return g.state }

// Direction reports which way the group is traveling.
func (g *Group) Direction() MotionDirection { return g.direction }

// setHoldReverse lets an outer syncing group own this group's reverse
// decision. Only effective when this group also syncs its children;
// otherwise children flip themselves and there is no single moment to
// withhold.
func (g *Group) setHoldReverse(hold bool) { g.holdReverse = hold }

// heldForReverse reports whether the group is parked at its forward end.
func (g *Group) heldForReverse() bool { return g.held }

// releaseReverse flips a held group and cascades the release to its
// children.
func (g *Group) releaseReverse() {
	if !g.held {
		return
	}
	g.held = false
	g.reverseAll()
}

// beginReverseLeg replays the whole group backward from its completed
// state, used by contiguous sequences. Children that cannot play backward
// are restarted forward instead.
func (g *Group) beginReverseLeg() {
	g.state = StateMoving
	g.held = false
	g.direction = DirectionReverse
	for _, c := range g.children {
		if rl, ok := c.(reverseLegger); ok {
			rl.beginReverseLeg()
		} else {
			c.Reset()
			c.Start()
		}
	}
	g.emit(EventReversed, g.OnReversed)
}
