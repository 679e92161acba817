package wave

import "math"

// The oscillators keep a phase accumulator in [0, 1) that advances by
// frequency*step per call and wraps modulo 1. The frequency (and duty)
// inputs are waveforms themselves; if one of them ends, the oscillator
// ends with it. The output sample is computed from the phase before the
// advance, so the first call always observes phase 0.

// Sine returns a sine wave with amplitude 1 whose frequency over time is
// controlled by freq (in cycles per second when stepped in seconds).
func Sine[F Value](freq F) Wave {
	return Wave{&sine{freq: lift(freq)}}
}

type sine struct {
	freq  Wave
	phase float64
}

func (g *sine) Next(step float64) (Sample, bool) {
	freq, ok := g.freq.Next(step)
	if !ok {
		return 0, false
	}
	phase := g.phase
	g.phase = math.Mod(g.phase+freq*step, 1)
	return math.Sin(2 * math.Pi * phase), true
}

func (g *sine) Reset() {
	g.freq.Reset()
	g.phase = 0
}

// Pulse returns a square-ish wave that is +1 while the phase is below
// duty and -1 for the rest of the cycle.
func Pulse[F, D Value](freq F, duty D) Wave {
	return Wave{&pulse{freq: lift(freq), duty: lift(duty)}}
}

type pulse struct {
	freq  Wave
	duty  Wave
	phase float64
}

func (g *pulse) Next(step float64) (Sample, bool) {
	freq, ok1 := g.freq.Next(step)
	duty, ok2 := g.duty.Next(step)
	if !ok1 || !ok2 {
		return 0, false
	}
	phase := g.phase
	g.phase = math.Mod(g.phase+freq*step, 1)
	if phase < duty {
		return 1, true
	}
	return -1, true
}

func (g *pulse) Reset() {
	g.freq.Reset()
	g.duty.Reset()
	g.phase = 0
}

// Triangle returns a triangle wave ramping from -1 up to 1 over the
// first duty fraction of the cycle and back down over the remainder.
// A duty of exactly 0 or 1 divides by zero in the ramp; this degenerate
// input is not guarded against.
func Triangle[F, D Value](freq F, duty D) Wave {
	return Wave{&triangle{freq: lift(freq), duty: lift(duty)}}
}

type triangle struct {
	freq  Wave
	duty  Wave
	phase float64
}

func (g *triangle) Next(step float64) (Sample, bool) {
	freq, ok1 := g.freq.Next(step)
	duty, ok2 := g.duty.Next(step)
	if !ok1 || !ok2 {
		return 0, false
	}
	phase := g.phase
	g.phase = math.Mod(g.phase+freq*step, 1)
	if phase < duty {
		return 2*phase/duty - 1, true
	}
	return 1 - 2*(phase-duty)/(1-duty), true
}

func (g *triangle) Reset() {
	g.freq.Reset()
	g.duty.Reset()
	g.phase = 0
}

// defaultNoiseSeed is the construction-time state of every noise wave,
// which makes noise output reproducible across runs.
const defaultNoiseSeed = 0x0123456789abcdef

// Noise returns pseudo-random rectangular noise. The phase runs in
// [0, 64) advancing by 2*freq*step; the output is the bit of a 64-bit
// seed selected by the integer part of the phase, mapped to +1/-1. The
// seed steps through a linear-congruential sequence each time the phase
// wraps.
func Noise[F Value](freq F) Wave {
	return Wave{&noise{freq: lift(freq), seed: defaultNoiseSeed}}
}

type noise struct {
	freq  Wave
	phase float64
	seed  uint64
}

func (g *noise) Next(step float64) (Sample, bool) {
	freq, ok := g.freq.Next(step)
	if !ok {
		return 0, false
	}
	phase := g.phase
	g.phase += 2 * freq * step
	if g.phase >= 64 {
		g.phase = math.Mod(g.phase, 64)
		g.seed = g.seed*2862933555777941757 + 3037000493
	}
	if g.seed>>uint(phase)&1 == 1 {
		return 1, true
	}
	return -1, true
}

func (g *noise) Reset() {
	g.freq.Reset()
	g.phase = 0
	g.seed = defaultNoiseSeed
}

// Slide returns a wave following quadratic motion from pos with the
// given initial velocity and constant acceleration. It never ends, which
// makes it useful as a frequency input for the other oscillators.
func Slide(pos, vel, acc float64) Wave {
	return Wave{&slide{pos: pos, vel: vel, acc: acc}}
}

type slide struct {
	pos  float64
	vel  float64
	acc  float64
	time float64
}

func (g *slide) Next(step float64) (Sample, bool) {
	t := g.time
	g.time += step
	return g.pos + (g.vel+0.5*g.acc*t)*t, true
}

func (g *slide) Reset() {
	g.time = 0
}
