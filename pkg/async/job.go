package async

// Job runs f on its own goroutine and returns a channel that is closed
// when f returns.
func Job(f func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		f()
		close(done)
	}()
	return done
}
