package wave

// Sample is one amplitude value of a signal at a point in time.
// Audible signals stay roughly within [-1, 1]; control signals
// (e.g. frequency envelopes) are unconstrained.
type Sample = float64

// Generator produces a sequence of samples. Next advances the internal
// state by step seconds and reports false once the stream has ended;
// the end of a stream is a control signal, not an error. Reset rewinds
// every time-dependent state back to construction time, recursively.
type Generator interface {
	Next(step float64) (Sample, bool)
	Reset()
}

// Wave is the polymorphic handle over a generator graph. It owns exactly
// one Generator and delegates to it, so a Wave is itself a Generator.
// Waves are built with the package constructors; the zero Wave is not
// usable.
type Wave struct {
	gen Generator
}

func (w Wave) Next(step float64) (Sample, bool) {
	return w.gen.Next(step)
}

func (w Wave) Reset() {
	w.gen.Reset()
}

// Value is anything that can stand in for a waveform: a Wave itself or
// a bare number, which denotes an infinite constant wave.
type Value interface {
	float64 | int | Wave
}

// lift converts a Value into a Wave. All constructors and operators that
// accept wave-valued parameters go through this single conversion.
func lift[V Value](v V) Wave {
	switch v := any(v).(type) {
	case Wave:
		return v
	case float64:
		return Const(v)
	case int:
		return Const(float64(v))
	}
	panic("wave: unreachable")
}

// Const returns a wave that yields v forever.
func Const(v float64) Wave {
	return Wave{&constant{value: v}}
}

// Add sums two waveforms. The sum ends only when both inputs have ended;
// while a single input remains it is passed through unchanged.
func Add[A, B Value](a A, b B) Wave {
	return Wave{&sum{wave1: lift(a), wave2: lift(b)}}
}

// Mul multiplies two waveforms. The product ends as soon as either input
// ends.
func Mul[A, B Value](a A, b B) Wave {
	return Wave{&product{wave1: lift(a), wave2: lift(b)}}
}

// Looped returns a wave that repeats w forever by resetting it whenever
// it ends.
func (w Wave) Looped() Wave {
	return Wave{&looped{wave: w}}
}

// Delayed returns a wave that stays silent for the given number of
// seconds before playing w.
func (w Wave) Delayed(seconds float64) Wave {
	return Wave{&delayed{wave: w, delay: seconds}}
}

// ADSHR shapes the amplitude of w with an attack/decay/sustain/hold/
// release envelope. The result is the product of the envelope and w, so
// it ends as soon as either the envelope or w ends.
func (w Wave) ADSHR(attack, decay, sustain, hold, release float64) Wave {
	env := Wave{&envelope{
		attack:  attack,
		decay:   decay,
		sustain: sustain,
		hold:    hold,
		release: release,
	}}
	return Mul(env, w)
}

type constant struct {
	value Sample
}

func (g *constant) Next(step float64) (Sample, bool) {
	return g.value, true
}

func (g *constant) Reset() {}
