package wave

// The combinators advance every child on every call, even when the
// result of one of them is discarded, so that nested time-dependent
// state stays in step with the caller's cadence.

type sum struct {
	wave1 Wave
	wave2 Wave
}

func (g *sum) Next(step float64) (Sample, bool) {
	v1, ok1 := g.wave1.Next(step)
	v2, ok2 := g.wave2.Next(step)
	switch {
	case ok1 && ok2:
		return v1 + v2, true
	case ok1:
		return v1, true
	case ok2:
		return v2, true
	}
	return 0, false
}

func (g *sum) Reset() {
	g.wave1.Reset()
	g.wave2.Reset()
}

type product struct {
	wave1 Wave
	wave2 Wave
}

func (g *product) Next(step float64) (Sample, bool) {
	v1, ok1 := g.wave1.Next(step)
	v2, ok2 := g.wave2.Next(step)
	if !ok1 || !ok2 {
		return 0, false
	}
	return v1 * v2, true
}

func (g *product) Reset() {
	g.wave1.Reset()
	g.wave2.Reset()
}

type looped struct {
	wave Wave
}

func (g *looped) Next(step float64) (Sample, bool) {
	if v, ok := g.wave.Next(step); ok {
		return v, true
	}
	// Retry exactly once after a reset. A child that stays empty even
	// then makes this call empty too, rather than spinning forever;
	// the next call starts over with the same reset-and-retry.
	g.wave.Reset()
	return g.wave.Next(step)
}

func (g *looped) Reset() {
	g.wave.Reset()
}

type delayed struct {
	wave  Wave
	delay float64
	time  float64
}

func (g *delayed) Next(step float64) (Sample, bool) {
	if g.time >= g.delay {
		return g.wave.Next(step)
	}
	g.time += step
	if g.time >= g.delay {
		// The delay ended partway through this step. Advance the child
		// by the overshoot so its state lines up with the moment the
		// delay expired, and discard the value.
		g.wave.Next(g.time - g.delay)
	}
	return 0, false
}

func (g *delayed) Reset() {
	g.wave.Reset()
	g.time = 0
}

// envelope walks one time accumulator through attack (0 to 1), decay
// (1 to sustain), hold (sustain) and release (sustain to 0). Once the
// accumulated time passes the total of the phase durations the envelope
// has ended for good. Zero-length phases are skipped instantly.
type envelope struct {
	attack  float64
	decay   float64
	sustain float64
	hold    float64
	release float64
	time    float64
}

func (g *envelope) Next(step float64) (Sample, bool) {
	t := g.time
	g.time += step
	switch {
	case t < g.attack:
		return t / g.attack, true
	case t < g.attack+g.decay:
		return 1 - (1-g.sustain)*(t-g.attack)/g.decay, true
	case t < g.attack+g.decay+g.hold:
		return g.sustain, true
	case t < g.attack+g.decay+g.hold+g.release:
		return g.sustain * (1 - (t-g.attack-g.decay-g.hold)/g.release), true
	}
	return 0, false
}

func (g *envelope) Reset() {
	g.time = 0
}
