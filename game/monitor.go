package game

import (
	"sync"
	"time"
)

// DefaultWaitTimeout bounds every condition wait
const DefaultWaitTimeout = time.Second

// condition is a sync.Cond whose waits give up after a timeout. Callers
// must hold the lock and re-check their predicate in a loop: a return
// means "look again", never "the predicate holds".
type condition struct {
	l    sync.Locker
	cond *sync.Cond
}

func newCondition(l sync.Locker) *condition {
	return &condition{l: l, cond: sync.NewCond(l)}
}

// waitTimeout releases the lock and blocks until signalled or until
// timeout elapses, then reacquires the lock.
func (c *condition) waitTimeout(timeout time.Duration) {
	// the timer takes the lock, so it cannot fire before this waiter is queued
	t := time.AfterFunc(timeout, func() {
		c.l.Lock()
		c.cond.Broadcast()
		c.l.Unlock()
	})
	c.cond.Wait()
	t.Stop()
}

func (c *condition) signal() {
	c.cond.Signal()
}

func (c *condition) broadcast() {
	c.cond.Broadcast()
}
