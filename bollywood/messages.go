package bollywood

// Started is delivered to an actor after its goroutine has started.
type Started struct{}

// Stopping signals the actor to finish its current work and clean up.
// No user messages are delivered after Stopping.
type Stopping struct{}

// Stopped is the final message an actor receives before its goroutine exits.
type Stopped struct{}

// messageEnvelope wraps a user message with sender and request metadata.
type messageEnvelope struct {
	Sender    *PID
	Message   interface{}
	requestID string
	replyCh   chan interface{}
}
