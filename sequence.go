package sway

// SequenceReversingMode selects how a reversing [Sequence] plays its steps
// once it turns around.
type SequenceReversingMode uint8

const (
	// ReversingSequential replays steps in reverse order, each step
	// playing forward internally: A, B, C, then B again, A again.
	ReversingSequential SequenceReversingMode = iota
	// ReversingContiguous plays steps in reverse order with each step
	// itself running backward, so the whole sequence appears as one
	// continuous motion rewinding across step boundaries.
	ReversingContiguous
)

// String returns the mode name for logging and test output.
func (m SequenceReversingMode) String() string {
	if m == ReversingContiguous {
		return "contiguous"
	}
	return "sequential"
}

// SequenceConfig controls a [Sequence]'s cycle behavior.
type SequenceConfig struct {
	// Reverses plays the steps back after the last one finishes, in the
	// manner selected by ReversingMode. Unlike a Group, a Sequence never
	// toggles its steps' own Reverses flags up front.
	Reverses bool
	// ReversingMode selects sequential or contiguous reversal.
	ReversingMode SequenceReversingMode
	// Repeats is the number of additional full passes after the first;
	// [RepeatForever] removes the budget.
	Repeats int
	// Delay postpones starting the first step for this many seconds
	// after Start.
	Delay float64
}

// Sequence runs child movers one after another: only the current step
// receives ticks, and the sequence advances to the next step when the
// current one completes. Steps may be motions or other composites to
// arbitrary depth.
type Sequence struct {
	OnStarted   func(*Sequence)
	OnStopped   func(*Sequence)
	OnUpdated   func(*Sequence)
	OnReversed  func(*Sequence)
	OnRepeated  func(*Sequence)
	OnPaused    func(*Sequence)
	OnResumed   func(*Sequence)
	OnCompleted func(*Sequence)

	// Notifier, when set, receives every status event after the matching
	// callback has run.
	Notifier Notifier

	steps []Mover

	reverses bool
	mode     SequenceReversingMode
	repeats  int
	delay    float64

	cursor       int
	state        MotionState
	direction    MotionDirection
	delayElapsed float64
	cyclesDone   int

	holdReverse bool
	held        bool
}

// NewSequence creates a serial sequence with default behavior: play each
// step forward once, in order, and complete.
func NewSequence(steps ...Mover) *Sequence {
	return NewSequenceWith(SequenceConfig{}, steps...)
}

// NewSequenceWith creates a serial sequence with the given cycle behavior.
func NewSequenceWith(cfg SequenceConfig, steps ...Mover) *Sequence {
	s := &Sequence{
		reverses: cfg.Reverses,
		mode:     cfg.ReversingMode,
		repeats:  cfg.Repeats,
		delay:    cfg.Delay,
	}
	if s.delay < 0 {
		s.delay = 0
	}
	for _, step := range steps {
		s.Add(step)
	}
	return s
}

// Add appends a step.
func (s *Sequence) Add(step Mover) {
	if step == nil {
		panic("sway: cannot add nil step to Sequence")
	}
	s.steps = append(s.steps, step)
}

// Steps returns the steps in play order.
func (s *Sequence) Steps() []Mover { return s.steps }

// CurrentStep returns the step currently receiving ticks, or nil when the
// sequence is idle or completed.
func (s *Sequence) CurrentStep() Mover {
	if s.state != StateMoving && s.state != StatePaused {
		return nil
	}
	if s.cursor < 0 || s.cursor >= len(s.steps) {
		return nil
	}
	return s.steps[s.cursor]
}

// SetReverses toggles playing the steps back after the last one. The
// steps' own Reverses flags are left alone.
func (s *Sequence) SetReverses(reverses bool) { s.reverses = reverses }

// Reverses reports whether the sequence plays its steps back.
func (s *Sequence) Reverses() bool { return s.reverses }

// SetReversingMode selects sequential or contiguous reversal.
func (s *Sequence) SetReversingMode(mode SequenceReversingMode) { s.mode = mode }

// ReversingMode reports how the sequence reverses.
func (s *Sequence) ReversingMode() SequenceReversingMode { return s.mode }

// SetRepeats sets how many additional full passes run after the first.
func (s *Sequence) SetRepeats(cycles int) { s.repeats = cycles }

// Start begins the first step. A no-op unless the sequence is idle or
// completed.
func (s *Sequence) Start() {
	if s.state != StateIdle && s.state != StateCompleted {
		return
	}
	if len(s.steps) == 0 {
		panic("sway: cannot start an empty Sequence")
	}
	s.cursor = 0
	s.delayElapsed = 0
	s.cyclesDone = 0
	s.direction = DirectionForward
	s.held = false
	if s.delay > 0 {
		s.state = StateDelayed
		return
	}
	s.beginMovement()
}

func (s *Sequence) beginMovement() {
	s.steps[0].Start()
	s.state = StateMoving
	s.emit(EventStarted, s.OnStarted)
}

// Stop stops the current step and the sequence. Steps not yet reached stay
// idle; steps already completed stay completed. Emits one "stopped".
func (s *Sequence) Stop() {
	if s.state == StateCompleted {
		return
	}
	if cur := s.CurrentStep(); cur != nil {
		cur.Stop()
	}
	s.state = StateCompleted
	s.held = false
	s.emit(EventStopped, s.OnStopped)
}

// Pause freezes the current step and the sequence.
func (s *Sequence) Pause() {
	if s.state != StateMoving {
		return
	}
	if cur := s.CurrentStep(); cur != nil {
		cur.Pause()
	}
	s.state = StatePaused
	s.emit(EventPaused, s.OnPaused)
}

// Resume unfreezes a paused sequence and its current step.
func (s *Sequence) Resume() {
	if s.state != StatePaused {
		return
	}
	s.state = StateMoving
	if cur := s.CurrentStep(); cur != nil {
		cur.Resume()
	}
	s.emit(EventResumed, s.OnResumed)
}

// Reset returns the sequence and every step to idle.
func (s *Sequence) Reset() {
	for _, step := range s.steps {
		step.Reset()
	}
	s.cursor = 0
	s.state = StateIdle
	s.direction = DirectionForward
	s.delayElapsed = 0
	s.cyclesDone = 0
	s.held = false
}

// Advance ticks only the current step, then handles step transitions when
// it completes. Leftover time past a step boundary is not carried into the
// next step; the next step begins on the following tick.
func (s *Sequence) Advance(dt float64) {
	if dt < 0 {
		return
	}
	switch s.state {
	case StateDelayed:
		s.delayElapsed += dt
		if s.delayElapsed < s.delay {
			return
		}
		excess := s.delayElapsed - s.delay
		s.beginMovement()
		if excess > 0 && s.state == StateMoving {
			s.tick(excess)
		}
	case StateMoving:
		s.tick(dt)
	}
}

func (s *Sequence) tick(dt float64) {
	if s.held {
		return
	}
	step := s.steps[s.cursor]
	step.Advance(dt)
	if step.State() != StateCompleted {
		s.emit(EventUpdated, s.OnUpdated)
		return
	}

	if s.direction == DirectionForward {
		if s.cursor+1 < len(s.steps) {
			s.cursor++
			s.steps[s.cursor].Start()
			s.emit(EventUpdated, s.OnUpdated)
			return
		}
		// Forward pass finished.
		if s.reverses {
			if s.holdReverse {
				s.held = true
				return
			}
			s.turnBack()
			return
		}
		s.finishPass()
		return
	}

	// Reverse pass.
	if s.cursor > 0 {
		s.cursor--
		s.prepareReverseStep()
		s.emit(EventUpdated, s.OnUpdated)
		return
	}
	s.finishPass()
}

// turnBack flips the sequence at the end of its forward pass and replays
// the last step according to the reversing mode.
func (s *Sequence) turnBack() {
	s.direction = DirectionReverse
	s.cursor = len(s.steps) - 1
	s.prepareReverseStep()
	s.emit(EventReversed, s.OnReversed)
}

// prepareReverseStep puts the step at the cursor into play for the reverse
// pass. Contiguous mode plays the step backward; sequential mode (and any
// step that cannot play backward) replays it forward.
func (s *Sequence) prepareReverseStep() {
	step := s.steps[s.cursor]
	if s.mode == ReversingContiguous {
		if rl, ok := step.(reverseLegger); ok {
			rl.beginReverseLeg()
			return
		}
		Logger().Warn("sway: step cannot play backward, replaying forward",
			"step", typeName(step))
	}
	step.Reset()
	step.Start()
}

// finishPass ends a full pass: repeat if budget remains, complete
// otherwise.
func (s *Sequence) finishPass() {
	if s.repeats != 0 && (s.repeats < 0 || s.cyclesDone < s.repeats) {
		s.cyclesDone++
		for _, step := range s.steps {
			step.Reset()
		}
		s.cursor = 0
		s.direction = DirectionForward
		s.steps[0].Start()
		s.emit(EventRepeated, s.OnRepeated)
		return
	}
	s.state = StateCompleted
	s.emit(EventCompleted, s.OnCompleted)
}

func (s *Sequence) emit(kind EventKind, cb func(*Sequence)) {
	if cb != nil {
		cb(s)
	}
	if s.Notifier != nil {
		s.Notifier.Notify(StatusEvent{Kind: kind, Source: s})
	}
}

// State reports the sequence's lifecycle state.
func (s *Sequence) State() MotionState { return s.state }

// Direction reports which way the sequence is traveling through its steps.
func (s *Sequence) Direction() MotionDirection { return s.direction }

// setHoldReverse lets a syncing parent group own the reverse decision for
// the whole sequence.
func (s *Sequence) setHoldReverse(hold bool) { s.holdReverse = hold }

// heldForReverse reports whether the sequence is parked after its forward
// pass waiting for its parent's release.
func (s *Sequence) heldForReverse() bool { return s.held }

// releaseReverse turns a held sequence back.
func (s *Sequence) releaseReverse() {
	if !s.held {
		return
	}
	s.held = false
	s.turnBack()
}

// beginReverseLeg replays the whole sequence backward from its completed
// state, using its own reversing mode, so sequences nest inside contiguous
// sequences.
func (s *Sequence) beginReverseLeg() {
	if len(s.steps) == 0 {
		return
	}
	s.state = StateMoving
	s.held = false
	s.turnBack()
}
