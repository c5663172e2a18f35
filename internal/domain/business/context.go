package business

import "sync"

// Context holds which business is active for one owner's session. It is a
// two-state machine: Unselected until a business is chosen, then Selected.
// Selection changes only through SetActive or the default rule in
// ApplyDefault; it never falls back to Unselected while businesses exist.
type Context struct {
	mu     sync.RWMutex
	active *Business
}

// NewContext returns an unselected context.
func NewContext() *Context {
	return &Context{}
}

// SetActive switches the active business. All dependent reads issued after
// this call see the new tenant's data only.
func (c *Context) SetActive(b *Business) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = b
}

// Active returns the currently selected business, if any.
func (c *Context) Active() (*Business, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.active == nil {
		return nil, false
	}
	return c.active, true
}

// ApplyDefault selects the first business in the list when nothing is
// selected yet. It is a no-op when a selection already exists or the list
// is empty, and reports whether the context is selected afterwards.
func (c *Context) ApplyDefault(businesses []*Business) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil && len(businesses) > 0 {
		c.active = businesses[0]
	}
	return c.active != nil
}
