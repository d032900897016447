package packs

import (
	"context"
	"sync"
	"time"
)

// Locker holds at most one open-pack session per profile. Sessions expire
// after the lock duration so a crashed request cannot block a profile.
type Locker struct {
	sessions     sync.Map // profileID -> *Session
	lockDuration time.Duration
	now          func() time.Time
}

// Session is the token of one lock holder. Only the holder whose session
// is still stored can release it.
type Session struct {
	expires time.Time
}

func NewLocker(lockDuration time.Duration) *Locker {
	return &Locker{
		lockDuration: lockDuration,
		now:          time.Now,
	}
}

// Lock returns the caller's session for profileID, or false if a live
// session is held by someone else.
func (l *Locker) Lock(profileID string) (*Session, bool) {
	sess := &Session{expires: l.now().Add(l.lockDuration)}
	for {
		current, loaded := l.sessions.LoadOrStore(profileID, sess)
		if !loaded {
			return sess, true
		}
		if l.now().Before(current.(*Session).expires) {
			return nil, false
		}
		// Expired: take over only if nobody else did first.
		if l.sessions.CompareAndSwap(profileID, current, sess) {
			return sess, true
		}
	}
}

// Release frees profileID if sess is still the stored session. A holder
// whose session expired and was taken over releases nothing.
func (l *Locker) Release(profileID string, sess *Session) bool {
	if sess == nil {
		return false
	}
	return l.sessions.CompareAndDelete(profileID, sess)
}

func (l *Locker) Locked(profileID string) bool {
	v, ok := l.sessions.Load(profileID)
	return ok && l.now().Before(v.(*Session).expires)
}

func (l *Locker) cleanupExpired() {
	now := l.now()
	l.sessions.Range(func(key, value any) bool {
		if now.After(value.(*Session).expires) {
			l.sessions.CompareAndDelete(key, value)
		}
		return true
	})
}

// StartCleanupRoutine removes expired sessions until ctx is done.
func (l *Locker) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.cleanupExpired()
			}
		}
	}()
}
