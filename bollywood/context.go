package bollywood

// Context provides information and capabilities to an Actor while it is
// processing a single message.
type Context interface {
	// Engine returns the engine managing this actor.
	Engine() *Engine
	// Self returns the PID of the actor processing the message.
	Self() *PID
	// Sender returns the PID of the sending actor, if any.
	Sender() *PID
	// Message returns the message being processed.
	Message() interface{}
	// RequestID is non-empty when the message arrived via Ask.
	RequestID() string
	// Reply answers an Ask request. It is a no-op for plain sends.
	Reply(response interface{})
}

type context struct {
	engine    *Engine
	self      *PID
	sender    *PID
	message   interface{}
	requestID string
	replyCh   chan interface{}
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }
func (c *context) RequestID() string    { return c.requestID }

func (c *context) Reply(response interface{}) {
	if c.replyCh == nil {
		return
	}
	select {
	case c.replyCh <- response:
	default:
	}
}
