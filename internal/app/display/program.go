package display

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// InvokeMsg carries a marshalled call into the bubbletea update loop
type InvokeMsg struct {
	call *invocation
}

type invocation struct {
	once sync.Once
	fn   func()
	done chan struct{}
}

// Run executes the carried call, it must be called from Update
func (m InvokeMsg) Run() {
	m.call.run()
}

func (c *invocation) run() {
	c.once.Do(func() {
		defer close(c.done)

		c.fn()
	})
}

// Program marshals calls onto a running bubbletea program's update loop
type Program struct {
	mu     sync.Mutex
	send   func(tea.Msg)
	exited chan struct{}
}

// NewProgram creates a detached marshaller, calls run inline until Attach
func NewProgram() *Program {
	return &Program{}
}

// Attach routes subsequent Invoke calls through send, usually tea.Program.Send
func (p *Program) Attach(send func(tea.Msg)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.send = send
	p.exited = make(chan struct{})
}

// Detach stops routing and releases callers waiting on the update loop
func (p *Program) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.exited != nil {
		close(p.exited)
	}

	p.send = nil
	p.exited = nil
}

// InvokeRequired reports whether a program is attached, even when called from its update loop
func (p *Program) InvokeRequired() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.send != nil
}

// Invoke runs fn on the update loop and waits for it, fn runs inline once the program has exited
func (p *Program) Invoke(fn func()) {
	p.mu.Lock()
	send, exited := p.send, p.exited
	p.mu.Unlock()

	call := &invocation{fn: fn, done: make(chan struct{})}

	if send == nil {
		call.run()
		return
	}

	send(InvokeMsg{call: call})

	select {
	case <-call.done:
	case <-exited:
		call.run()
	}
}
