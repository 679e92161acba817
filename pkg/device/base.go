package device

// Device drives a mono audio stream. Start invokes the callback once
// per buffer with the captured input frames and an output buffer to
// fill; the callback runs until Stop is called. Frames are int32 PCM
// scaled by 0x7fffffff.
type Device interface {
	Start(callback func(in, out []int32))
	Stop()
}

const BufferSize = 512
