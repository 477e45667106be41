package mainthread

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/declview/viewcore/errors"
)

// Executor is a designated single-goroutine execution context. State-affine
// work (a stateful view's body evaluation) is submitted with Call, which
// blocks the submitting goroutine until the work has run on the executor.
// The exchange is synchronous because the caller's control flow needs the
// result before it can proceed.
type Executor struct {
	calls     chan call
	done      chan struct{}
	gid       atomic.Int64
	closeOnce sync.Once
}

type call struct {
	fn   func()
	done chan struct{}
}

// New returns an executor. The caller must dedicate a goroutine to Run.
func New() *Executor {
	e := &Executor{
		calls: make(chan call),
		done:  make(chan struct{}),
	}
	e.gid.Store(-1)
	return e
}

// Run processes submitted calls until Close. It must run on exactly one
// goroutine; that goroutine becomes the executor's identity.
func (e *Executor) Run() {
	e.gid.Store(goid.Get())
	defer e.gid.Store(-1)

	for {
		select {
		case c := <-e.calls:
			c.fn()
			close(c.done)
		case <-e.done:
			return
		}
	}
}

// Close stops the executor. Pending and future Call invocations fail with a
// typed executor_stopped error.
func (e *Executor) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
	})
}

// IsCurrent reports whether the caller is already on the executor goroutine.
func (e *Executor) IsCurrent() bool {
	return e.gid.Load() == goid.Get()
}

// Call runs fn on the executor goroutine and blocks until it completes.
// Calling from the executor goroutine itself runs fn inline, so re-entrant
// submissions cannot deadlock.
func (e *Executor) Call(fn func()) error {
	if e.IsCurrent() {
		fn()
		return nil
	}

	c := call{fn: fn, done: make(chan struct{})}
	select {
	case e.calls <- c:
	case <-e.done:
		return errors.ExecutorStopped("executor closed before the call was accepted")
	}

	// Once accepted, Run always finishes the call before observing Close,
	// so the wait is unconditional. Racing it against e.done would report a
	// failure for work whose side effects still land.
	<-c.done
	return nil
}
