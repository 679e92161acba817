package device

import "github.com/gordonklaus/portaudio"

// PortAudioMono plays through the default PortAudio output stream.
// Output-only, like OtoMono.
type PortAudioMono struct {
	SampleRate float64
	stream     *portaudio.Stream
	in         []int32
}

func (d *PortAudioMono) Start(callback func(in, out []int32)) {
	if err := portaudio.Initialize(); err != nil {
		panic(err)
	}
	d.in = alloci32(BufferSize)
	stream, err := portaudio.OpenDefaultStream(0, 1, d.SampleRate, BufferSize, func(out []int32) {
		cleari32(d.in)
		callback(d.in, out)
	})
	if err != nil {
		panic(err)
	}
	d.stream = stream
	if err := stream.Start(); err != nil {
		panic(err)
	}
}

func (d *PortAudioMono) Stop() {
	d.stream.Stop()
	d.stream.Close()
	portaudio.Terminate()
}
