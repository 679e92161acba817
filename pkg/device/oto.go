package device

import "github.com/ebitengine/oto/v3"

// OtoMono plays through the default system output via oto. Oto pulls
// PCM bytes from an io.Reader, so the buffer callback is adapted behind
// one; oto is output-only, the input frames handed to the callback stay
// silent.
type OtoMono struct {
	SampleRate float64
	player     *oto.Player
}

func (o *OtoMono) Start(callback func(in, out []int32)) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(o.SampleRate),
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		panic(err)
	}
	<-ready
	o.player = ctx.NewPlayer(&otoReader{callback: callback})
	o.player.Play()
}

func (o *OtoMono) Stop() {
	o.player.Close()
}

type otoReader struct {
	callback func(in, out []int32)
	in       [BufferSize]int32
	out      [BufferSize]int32
}

func (r *otoReader) Read(p []byte) (int, error) {
	n := 0
	for len(p)-n >= 2*BufferSize {
		cleari32(r.in[:])
		r.callback(r.in[:], r.out[:])
		for _, v := range r.out {
			s := v >> 16
			p[n] = byte(s)
			p[n+1] = byte(s >> 8)
			n += 2
		}
	}
	if n == 0 {
		// The remaining space is smaller than one update; pad with
		// silence instead of blocking the audio thread.
		for i := range p {
			p[i] = 0
		}
		n = len(p)
	}
	return n, nil
}
