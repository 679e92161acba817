package callbacks

// Recorder appends every input buffer to Track. Paired with a loopback
// device it captures what another callback produced.
type Recorder struct {
	Track []int32
}

func (r *Recorder) Update(in, out []int32) {
	r.Track = append(r.Track, in...)
}
