package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

const defaultMailboxSize = 100

// process is the running instance of an actor: its goroutine, mailbox and
// stop signal.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	mailbox chan *messageEnvelope
	props   *Props
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// sendEnvelope enqueues a message. Non-blocking: a full mailbox drops the
// message and returns false.
func (p *process) sendEnvelope(envelope *messageEnvelope) bool {
	_, isStopping := envelope.Message.(Stopping)
	_, isStopped := envelope.Message.(Stopped)
	if p.stopped.Load() && !isStopping && !isStopped {
		return false
	}

	select {
	case p.mailbox <- envelope:
		return true
	default:
		fmt.Printf("bollywood: actor %s mailbox full, dropping %T\n", p.pid.ID, envelope.Message)
		return false
	}
}

// run is the main loop for the actor process.
func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(&messageEnvelope{Message: Stopped{}})
		}
		// Remove from engine only after Stopped has been processed.
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("bollywood: actor %s panicked: %v\n%s\n", p.pid.ID, r, debug.Stack())
			p.stopped.Store(true)
			p.closeStopCh()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("bollywood: actor %s producer returned nil", p.pid.ID))
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				// Stopped directly via engine.Stop without a Stopping message
				// making it through the mailbox; invoke the handler now.
				p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			}
			return

		case envelope := <-p.mailbox:
			_, isStopping := envelope.Message.(Stopping)
			if p.stopped.Load() && !isStopping {
				continue
			}

			if isStopping {
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(envelope)
					p.closeStopCh()
				}
				continue
			}
			p.invokeReceive(envelope)
		}
	}
}

func (p *process) closeStopCh() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

// invokeReceive calls the actor's Receive method, recovering panics so a
// misbehaving handler cannot take down the process tree.
func (p *process) invokeReceive(envelope *messageEnvelope) {
	ctx := &context{
		engine:    p.engine,
		self:      p.pid,
		sender:    envelope.Sender,
		message:   envelope.Message,
		requestID: envelope.requestID,
		replyCh:   envelope.replyCh,
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("bollywood: actor %s panicked during Receive(%T): %v\n%s\n",
				p.pid.ID, envelope.Message, r, debug.Stack())
			if ctx.replyCh != nil {
				ctx.Reply(fmt.Errorf("actor %s panicked: %v", p.pid.ID, r))
			}
		}
	}()
	p.actor.Receive(ctx)
}
