package async

// Promise runs f on its own goroutine and returns a channel that yields
// its result once.
func Promise[R any](f func() R) <-chan R {
	out := make(chan R)
	go func() {
		out <- f()
	}()
	return out
}
