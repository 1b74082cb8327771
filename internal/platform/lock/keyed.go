package lock

import (
	"context"
	"sync"

	"github.com/SscSPs/checkin_ledger/internal/core/ports"
)

// KeyedLocker is an in-process lock keyed by string. Keys are dropped once no
// goroutine holds or waits on them.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedSlot
}

type keyedSlot struct {
	ch   chan struct{}
	refs int
}

// NewKeyedLocker creates an empty KeyedLocker.
func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[string]*keyedSlot)}
}

var _ ports.DayLocker = (*KeyedLocker)(nil)

// Lock blocks until key is free or ctx is done.
func (l *KeyedLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	slot, ok := l.locks[key]
	if !ok {
		slot = &keyedSlot{ch: make(chan struct{}, 1)}
		l.locks[key] = slot
	}
	slot.refs++
	l.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
	case <-ctx.Done():
		l.deref(key, slot)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-slot.ch
			l.deref(key, slot)
		})
	}, nil
}

func (l *KeyedLocker) deref(key string, slot *keyedSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot.refs--
	if slot.refs == 0 {
		delete(l.locks, key)
	}
}

// size reports the number of live keys.
func (l *KeyedLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
