package callbacks

import (
	"Wavesynth/pkg/async"
	"Wavesynth/pkg/wave"
)

// Player fills device output buffers by stepping a waveform once per
// frame. After the wave ends it keeps emitting silence and notifies
// Done exactly once, so the driver can wait for playback to finish.
type Player struct {
	Wave      wave.Wave
	Step      float64 // seconds per frame, 1/sample rate
	Amplitude float64 // output scale in [0, 1]

	Done async.Signal[struct{}]
	done bool
}

func (p *Player) Update(in, out []int32) {
	for i := range out {
		v, ok := p.Wave.Next(p.Step)
		if !ok {
			out[i] = 0
			if !p.done {
				p.done = true
				p.Done.Notify()
			}
			continue
		}
		s := v * p.Amplitude
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		out[i] = int32(s * 0x7fffffff)
	}
}

// Reset rewinds the waveform so the player can be started over.
func (p *Player) Reset() {
	p.Wave.Reset()
	p.done = false
}
