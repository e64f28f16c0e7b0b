package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/port"
)

// advisoryLocker implements port.AdvisoryLocker using Postgres session
// advisory locks. Each held lock pins its own connection, because advisory
// locks are session-scoped and a pooled connection would not be guaranteed
// to carry the lock at unlock time.
type advisoryLocker struct {
	db    *sqlx.DB
	mu    sync.Mutex
	conns map[int64]*sqlx.Conn
}

// NewAdvisoryLocker creates a new Postgres-backed AdvisoryLocker.
func NewAdvisoryLocker(db *sqlx.DB) port.AdvisoryLocker {
	return &advisoryLocker{db: db, conns: make(map[int64]*sqlx.Conn)}
}

func (l *advisoryLocker) TryLock(ctx context.Context, key int64) (bool, error) {
	l.mu.Lock()
	if _, held := l.conns[key]; held {
		l.mu.Unlock()
		return false, nil
	}
	l.mu.Unlock()

	conn, err := l.db.Connx(ctx)
	if err != nil {
		return false, fmt.Errorf("advisoryLocker.TryLock conn: %w", err)
	}

	var acquired bool
	if err := conn.GetContext(ctx, &acquired, "SELECT pg_try_advisory_lock($1)", key); err != nil {
		_ = conn.Close()
		return false, fmt.Errorf("advisoryLocker.TryLock: %w", err)
	}
	if !acquired {
		_ = conn.Close()
		return false, nil
	}

	l.mu.Lock()
	l.conns[key] = conn
	l.mu.Unlock()
	return true, nil
}

func (l *advisoryLocker) Unlock(ctx context.Context, key int64) error {
	l.mu.Lock()
	conn, held := l.conns[key]
	delete(l.conns, key)
	l.mu.Unlock()
	if !held {
		return nil
	}
	defer func() { _ = conn.Close() }()

	var released bool
	if err := conn.GetContext(ctx, &released, "SELECT pg_advisory_unlock($1)", key); err != nil {
		return fmt.Errorf("advisoryLocker.Unlock: %w", err)
	}
	return nil
}
