package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// take yields a fixed value a fixed number of times, then ends.
type take struct {
	total int
	left  int
	value Sample
}

func (g *take) Next(step float64) (Sample, bool) {
	if g.left <= 0 {
		return 0, false
	}
	g.left--
	return g.value, true
}

func (g *take) Reset() {
	g.left = g.total
}

// finite wraps take in a Wave handle.
func finite(n int, v Sample) Wave {
	return Wave{&take{total: n, left: n, value: v}}
}

// empty never yields a sample.
type empty struct{}

func (*empty) Next(step float64) (Sample, bool) { return 0, false }
func (*empty) Reset()                           {}

func TestSumOutlivesFiniteOperand(t *testing.T) {
	w := Add(finite(3, 2), 1)

	for i := range 20 {
		v, ok := w.Next(1)
		require.True(t, ok, "sum must not end while one operand remains")
		if i < 3 {
			require.Equal(t, Sample(3), v)
		} else {
			require.Equal(t, Sample(1), v)
		}
	}
}

func TestSumCommutes(t *testing.T) {
	w1 := Add(finite(2, 2), Sine(0.125))
	w2 := Add(Sine(0.125), finite(2, 2))

	values1, _ := collect(w1, 10, 1)
	values2, _ := collect(w2, 10, 1)
	require.InDeltaSlice(t, values1, values2, 1e-9)
}

func TestSumEndsWhenBothEnd(t *testing.T) {
	w := Add(finite(2, 1), finite(4, 2))

	values, oks := collect(w, 6, 1)
	require.Equal(t, []Sample{3, 3, 2, 2, 0, 0}, values)
	require.Equal(t, []bool{true, true, true, true, false, false}, oks)
}

func TestProductEndsWithEitherOperand(t *testing.T) {
	w := Mul(finite(2, 3), 2)

	values, oks := collect(w, 5, 1)
	require.Equal(t, []Sample{6, 6, 0, 0, 0}, values)
	require.Equal(t, []bool{true, true, false, false, false}, oks)
}

func TestProductAdvancesSurvivingOperand(t *testing.T) {
	// Even in the call where the product ends, the other operand must
	// have been stepped, so its phase stays in sync.
	p := Pulse(0.25, 0.5)
	w := Mul(finite(1, 1), p)

	_, ok := w.Next(1) // pulse phase 0 -> 0.25
	require.True(t, ok)
	_, ok = w.Next(1) // product ends, pulse still advanced to 0.5
	require.False(t, ok)

	v, ok := p.Next(1)
	require.True(t, ok)
	require.Equal(t, Sample(-1), v, "pulse should be past its duty cycle")
}

func TestLoopedRepeatsEnvelope(t *testing.T) {
	w := Const(1).ADSHR(0.1, 0.1, 0.5, 0.1, 0.1).Looped()

	// The envelope lasts 0.4s; at 0.1s per step the fifth call resets
	// it and yields the start of the attack ramp again.
	want := []Sample{0, 1, 0.5, 0.5, 0, 1, 0.5, 0.5, 0, 1, 0.5, 0.5}
	values, oks := collect(w, len(want), 0.1)
	require.NotContains(t, oks, false)
	require.InDeltaSlice(t, want, values, 1e-6)
}

func TestLoopedEmptyChildDoesNotSpin(t *testing.T) {
	w := Wave{&empty{}}.Looped()

	for range 10 {
		_, ok := w.Next(1)
		require.False(t, ok)
	}
}

func TestDelayedAlignsChildOnThreshold(t *testing.T) {
	w := Sine(1).Delayed(0.25)

	// Three silent calls; the third crosses the threshold at t=0.30 and
	// advances the sine by the 0.05 overshoot.
	for range 3 {
		_, ok := w.Next(0.1)
		require.False(t, ok)
	}
	v, ok := w.Next(0.1)
	require.True(t, ok)
	require.InDelta(t, math.Sin(2*math.Pi*0.05), v, 1e-6)
	v, ok = w.Next(0.1)
	require.True(t, ok)
	require.InDelta(t, math.Sin(2*math.Pi*0.15), v, 1e-6)
}

func TestDelayedZeroPassesThrough(t *testing.T) {
	w := Sine(0.125).Delayed(0)

	v, ok := w.Next(1)
	require.True(t, ok)
	require.InDelta(t, 0, v, 1e-6)
	v, ok = w.Next(1)
	require.True(t, ok)
	require.InDelta(t, math.Sqrt2/2, v, 1e-6)
}

func TestDelayedReset(t *testing.T) {
	w := Const(2).Delayed(0.15)

	_, ok := w.Next(0.1)
	require.False(t, ok)
	_, ok = w.Next(0.1)
	require.False(t, ok) // crossing call, value discarded
	v, ok := w.Next(0.1)
	require.True(t, ok)
	require.Equal(t, Sample(2), v)

	w.Reset()
	_, ok = w.Next(0.1)
	require.False(t, ok, "reset must restore the delay")
}

func TestADSHREnvelopeShape(t *testing.T) {
	w := Const(1).ADSHR(0.2, 0.2, 0.5, 0.2, 0.2)

	want := []Sample{
		0, 0.25, 0.5, 0.75, // attack ramps 0 to 1
		1, 0.875, 0.75, 0.625, // decay ramps 1 to sustain
		0.5, 0.5, 0.5, 0.5, // hold
		0.5, 0.375, 0.25, 0.125, // release ramps sustain to 0
	}
	values, oks := collect(w, len(want), 0.05)
	require.NotContains(t, oks, false)
	require.InDeltaSlice(t, want, values, 1e-6)

	_, ok := w.Next(0.05)
	require.False(t, ok, "envelope must end past its total duration")
	_, ok = w.Next(0.05)
	require.False(t, ok)
}

func TestADSHRZeroPhasesSkipInstantly(t *testing.T) {
	w := Const(2).ADSHR(0, 0, 0.5, 0.1, 0)

	v, ok := w.Next(0.05)
	require.True(t, ok)
	require.InDelta(t, 1, v, 1e-6) // straight into hold, scaled by the input
	v, ok = w.Next(0.05)
	require.True(t, ok)
	require.InDelta(t, 1, v, 1e-6)
	_, ok = w.Next(0.05)
	require.False(t, ok)
}

func TestADSHREndsInfiniteInput(t *testing.T) {
	// Envelope shaping is amplitude modulation: the product ends with
	// the envelope even though the underlying wave is infinite.
	w := Sine(440).ADSHR(0.01, 0.01, 0.5, 0.01, 0.01)

	n := 0
	for {
		_, ok := w.Next(0.005)
		if !ok {
			break
		}
		n++
	}
	require.Equal(t, 8, n) // 0.04s total at 0.005s per step
}

func TestResetReplaysGraph(t *testing.T) {
	w := Add(
		Add(Mul(Noise(5), 0.5), Sine(Slide(2, 0.5, 0.25))),
		Pulse(2, 0.25),
	)

	steps := []float64{0.1, 0.25, 0.5, 0.1, 0.1, 0.25, 0.5, 0.1, 0.1, 0.1, 0.25, 0.5}
	values := make([]Sample, len(steps))
	for i, step := range steps {
		var ok bool
		values[i], ok = w.Next(step)
		require.True(t, ok)
	}

	w.Reset()
	for i, step := range steps {
		v, ok := w.Next(step)
		require.True(t, ok)
		require.Equal(t, values[i], v, "replay diverged at call %d", i)
	}
}
