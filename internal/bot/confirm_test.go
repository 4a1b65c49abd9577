package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfirmManager(t *testing.T) {
	t.Run("armed action confirms once", func(t *testing.T) {
		c := NewConfirmManager()

		c.Arm(7, ActionPurgeAll)

		assert.True(t, c.Confirm(7, ActionPurgeAll))
		assert.False(t, c.Confirm(7, ActionPurgeAll), "second confirm must not fire")
	})

	t.Run("confirm without arming is a no-op", func(t *testing.T) {
		c := NewConfirmManager()

		assert.False(t, c.Confirm(7, ActionPurgeAll))
	})

	t.Run("mismatched token cancels silently", func(t *testing.T) {
		c := NewConfirmManager()

		c.Arm(7, ActionPurgeOwn)

		assert.False(t, c.Confirm(7, ActionPurgeAll))
		assert.False(t, c.Confirm(7, ActionPurgeOwn), "mismatch must consume the pending action")
	})

	t.Run("pending actions are per owner", func(t *testing.T) {
		c := NewConfirmManager()

		c.Arm(7, ActionPurgeAll)

		assert.False(t, c.Confirm(8, ActionPurgeAll))
		assert.True(t, c.Confirm(7, ActionPurgeAll))
	})

	t.Run("re-arming replaces the pending action", func(t *testing.T) {
		c := NewConfirmManager()

		c.Arm(7, ActionPurgeAll)
		c.Arm(7, ActionPurgeOwn)

		assert.False(t, c.Confirm(7, ActionPurgeAll))
	})

	t.Run("cancel drops the pending action", func(t *testing.T) {
		c := NewConfirmManager()

		c.Arm(7, ActionPurgeAll)
		c.Cancel(7)

		assert.False(t, c.Confirm(7, ActionPurgeAll))
	})

	t.Run("stale confirmations expire", func(t *testing.T) {
		c := NewConfirmManager()

		base := time.Now()
		c.now = func() time.Time { return base }
		c.Arm(7, ActionPurgeAll)

		c.now = func() time.Time { return base.Add(confirmTTL + time.Second) }
		assert.False(t, c.Confirm(7, ActionPurgeAll))
	})
}
