package async

// Await0 blocks until a job finishes.
func Await0(a <-chan struct{}) {
	<-a
}

// Await blocks until a promise resolves and returns its result.
func Await[R any](a <-chan R) R {
	return <-a
}
