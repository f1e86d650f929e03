package bollywood

// Actor is the interface implemented by anything that processes mailbox
// messages. Receive is invoked sequentially, one message at a time.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a fresh Actor instance for Spawn.
type Producer func() Actor

// Props configures actor creation.
type Props struct {
	producer    Producer
	mailboxSize int
}

// NewProps creates a Props with the default mailbox size.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer, mailboxSize: defaultMailboxSize}
}

// WithMailboxSize overrides the bounded mailbox capacity.
func (p *Props) WithMailboxSize(size int) *Props {
	if size > 0 {
		p.mailboxSize = size
	}
	return p
}

// Produce creates a new actor instance using the configured producer.
func (p *Props) Produce() Actor {
	return p.producer()
}
