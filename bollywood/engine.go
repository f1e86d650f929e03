package bollywood

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter uint64
	reqCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor based on the provided Props.
// It returns the PID of the newly created actor, or nil if the engine
// is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	e.Send(pid, Started{}, nil)

	return pid
}

// Send delivers a message to the actor identified by the PID. The send is
// non-blocking: if the target's mailbox is full the message is dropped.
// Sends to unknown or stopped actors are silently dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil {
		return
	}
	e.deliver(pid, &messageEnvelope{Sender: sender, Message: message})
}

// Ask sends a message and waits for the actor to Reply, up to the timeout.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if pid == nil {
		return nil, fmt.Errorf("bollywood: ask on nil PID")
	}

	reqID := fmt.Sprintf("req-%d", atomic.AddUint64(&e.reqCounter, 1))
	replyCh := make(chan interface{}, 1)

	delivered := e.deliver(pid, &messageEnvelope{
		Message:   message,
		requestID: reqID,
		replyCh:   replyCh,
	})
	if !delivered {
		return nil, fmt.Errorf("bollywood: ask %s to %s not delivered", reqID, pid)
	}

	select {
	case response := <-replyCh:
		if err, ok := response.(error); ok {
			return nil, err
		}
		return response, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("bollywood: ask %s to %s timed out", reqID, pid)
	}
}

func (e *Engine) deliver(pid *PID, envelope *messageEnvelope) bool {
	_, isStopping := envelope.Message.(Stopping)
	_, isStopped := envelope.Message.(Stopped)
	_, isStarted := envelope.Message.(Started)
	isSystemMsg := isStopping || isStopped || isStarted

	// User messages are dropped during shutdown; system messages still flow
	// so actors can clean up.
	if e.stopping.Load() && !isSystemMsg {
		return false
	}

	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if !ok {
		return false
	}
	return proc.sendEnvelope(envelope)
}

// Stop requests an actor to stop processing messages and shut down. The
// Stopping message is sent first so the actor can clean up, and the stop
// channel is closed directly so termination happens even with a full mailbox.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}

	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if ok {
		e.Send(pid, Stopping{}, nil)

		select {
		case <-proc.stopCh:
		default:
			close(proc.stopCh)
		}
	}
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits up to timeout for them to terminate.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	pidsToStop := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pidsToStop = append(pidsToStop, proc.pid)
	}
	e.mu.RUnlock()

	for _, pid := range pidsToStop {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	if len(e.actors) > 0 {
		fmt.Printf("bollywood: shutdown timeout, %d actors did not stop gracefully\n", len(e.actors))
		e.actors = make(map[string]*process)
	}
	e.mu.Unlock()
}
