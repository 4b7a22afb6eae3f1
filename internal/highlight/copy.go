package highlight

import (
	"sync"
	"time"
)

// CopiedFor is how long a code block shows its "copied" confirmation.
const CopiedFor = 2 * time.Second

// CopyState tracks the transient "copied" confirmation of one code block.
// Triggering again while the confirmation is showing restarts the timer.
type CopyState struct {
	mu       sync.Mutex
	copied   bool
	timer    *time.Timer
	gen      uint64
	delay    time.Duration
	onChange func(copied bool)
}

// NewCopyState returns a CopyState that calls onChange (if non-nil) whenever
// the confirmation turns on or off. A non-positive delay uses CopiedFor.
func NewCopyState(delay time.Duration, onChange func(copied bool)) *CopyState {
	if delay <= 0 {
		delay = CopiedFor
	}
	return &CopyState{delay: delay, onChange: onChange}
}

// Trigger marks the block as copied and (re)starts the reset timer.
func (c *CopyState) Trigger() {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	was := c.copied
	c.copied = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, func() { c.expire(gen) })
	c.mu.Unlock()

	if !was {
		c.notify(true)
	}
}

// Copied reports whether the confirmation is currently showing.
func (c *CopyState) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}

// Stop cancels any pending reset and detaches the change callback.
func (c *CopyState) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.onChange = nil
}

func (c *CopyState) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		// Superseded by a later Trigger or Stop.
		c.mu.Unlock()
		return
	}
	c.copied = false
	c.timer = nil
	c.mu.Unlock()

	c.notify(false)
}

func (c *CopyState) notify(copied bool) {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(copied)
	}
}
