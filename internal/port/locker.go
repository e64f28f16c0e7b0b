package port

import "context"

// AdvisoryLocker provides cross-instance mutual exclusion for long-running
// operations. TryLock returns false without blocking when the key is held.
type AdvisoryLocker interface {
	TryLock(ctx context.Context, key int64) (bool, error)
	Unlock(ctx context.Context, key int64) error
}
