package bot

import (
	"sync"
	"time"
)

const (
	ActionPurgeAll = "PURGE_ALL"
	ActionPurgeOwn = "PURGE_OWN"
)

const confirmTTL = 5 * time.Minute

type pendingAction struct {
	action string
	armed  time.Time
}

// ConfirmManager holds the ephemeral second step of destructive commands.
// One pending action per owner, in memory only; a mismatched or stale token
// is a silent no-op, never an error.
type ConfirmManager struct {
	mu      sync.Mutex
	pending map[int64]pendingAction
	now     func() time.Time
}

func NewConfirmManager() *ConfirmManager {
	return &ConfirmManager{pending: make(map[int64]pendingAction), now: time.Now}
}

// Arm registers action as pending for owner, replacing any previous one.
func (c *ConfirmManager) Arm(ownerID int64, action string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[ownerID] = pendingAction{action: action, armed: c.now()}
}

// Confirm reports whether token matches the owner's pending action and is
// still fresh. The pending action is consumed either way once a match is
// attempted against it.
func (c *ConfirmManager) Confirm(ownerID int64, token string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pending[ownerID]
	if !ok {
		return false
	}
	delete(c.pending, ownerID)

	if p.action != token {
		return false
	}
	if c.now().Sub(p.armed) > confirmTTL {
		return false
	}
	return true
}

// Cancel drops any pending action for owner.
func (c *ConfirmManager) Cancel(ownerID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, ownerID)
}
