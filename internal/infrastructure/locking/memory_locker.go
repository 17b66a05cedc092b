package locking

import (
	"context"
	"sync"

	"instant_offer/internal/usecase/interfaces"
)

// MemoryLocker is a keyed mutex for a single process. Entries are dropped
// once nobody holds or waits for them.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

var _ interfaces.IQuoteLocker = (*MemoryLocker)(nil)

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*keyLock)}
}

func (l *MemoryLocker) Lock(ctx context.Context, quoteID string) (func(), error) {
	l.mu.Lock()
	kl, ok := l.locks[quoteID]
	if !ok {
		kl = &keyLock{sem: make(chan struct{}, 1)}
		l.locks[quoteID] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(quoteID, kl)
		return nil, interfaces.ErrLockTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.sem
			l.release(quoteID, kl)
		})
	}, nil
}

func (l *MemoryLocker) release(quoteID string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, quoteID)
	}
}

// held reports how many keys currently have holders or waiters.
func (l *MemoryLocker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
