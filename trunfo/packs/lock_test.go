package packs

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLocker_LockRelease(t *testing.T) {
	l := NewLocker(time.Minute)

	sess, ok := l.Lock("p1")
	if !ok || sess == nil {
		t.Fatal("first lock should succeed")
	}
	if _, ok := l.Lock("p1"); ok {
		t.Fatal("second lock on same profile should fail")
	}
	if _, ok := l.Lock("p2"); !ok {
		t.Fatal("lock on another profile should succeed")
	}
	if !l.Locked("p1") {
		t.Error("p1 should report locked")
	}

	if !l.Release("p1", sess) {
		t.Error("holder should release its own session")
	}
	if l.Locked("p1") {
		t.Error("p1 should be unlocked after release")
	}
	if l.Release("p1", sess) {
		t.Error("a second release of the same session should be a no-op")
	}
	if _, ok := l.Lock("p1"); !ok {
		t.Error("lock after release should succeed")
	}
}

func TestLocker_ExpiredTakeover(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLocker(30 * time.Second)
	l.now = func() time.Time { return now }

	if _, ok := l.Lock("p1"); !ok {
		t.Fatal("first lock should succeed")
	}

	now = now.Add(31 * time.Second)
	if l.Locked("p1") {
		t.Error("expired session should not report locked")
	}
	if _, ok := l.Lock("p1"); !ok {
		t.Error("lock should take over an expired session")
	}
}

func TestLocker_StaleReleaseKeepsNewHolder(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLocker(30 * time.Second)
	l.now = func() time.Time { return now }

	first, ok := l.Lock("p1")
	if !ok {
		t.Fatal("first lock should succeed")
	}
	now = now.Add(31 * time.Second)
	second, ok := l.Lock("p1")
	if !ok {
		t.Fatal("second caller should take over the expired session")
	}

	if l.Release("p1", first) {
		t.Error("expired holder must not release the new holder's session")
	}
	if !l.Locked("p1") {
		t.Fatal("new holder should still hold the lock")
	}
	if _, ok := l.Lock("p1"); ok {
		t.Fatal("a third caller must not acquire while the new holder is drawing")
	}

	if !l.Release("p1", second) {
		t.Error("new holder should release its own session")
	}
	if _, ok := l.Lock("p1"); !ok {
		t.Error("lock should be free after the new holder releases")
	}
}

func TestLocker_CleanupExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLocker(time.Second)
	l.now = func() time.Time { return now }

	l.Lock("old")
	now = now.Add(2 * time.Second)
	l.Lock("fresh")

	l.cleanupExpired()

	if _, ok := l.sessions.Load("old"); ok {
		t.Error("expired session should have been removed")
	}
	if _, ok := l.sessions.Load("fresh"); !ok {
		t.Error("live session should be kept")
	}
}

func TestLocker_Concurrent(t *testing.T) {
	l := NewLocker(time.Minute)

	var acquired atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := l.Lock("p1"); ok {
				acquired.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := acquired.Load(); got != 1 {
		t.Errorf("acquired %d locks, want exactly 1", got)
	}
}

func TestLocker_StartCleanupRoutineStops(t *testing.T) {
	l := NewLocker(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	l.StartCleanupRoutine(ctx, time.Millisecond)

	l.Lock("p1")
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, ok := l.sessions.Load("p1"); !ok {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if _, ok := l.sessions.Load("p1"); ok {
		t.Error("cleanup routine should have removed the expired session")
	}
}
