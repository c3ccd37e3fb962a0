package service

import (
	"sync"

	"assure/internal/assessment/models"
)

// keyedMutex serializes writers per composite key. Entries are reference
// counted and removed when the last holder releases, so the table stays
// bounded by in-flight writes rather than key cardinality.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[models.Key]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[models.Key]*keyLock)}
}

// lock acquires the mutex for key and returns the release function.
func (k *keyedMutex) lock(key models.Key) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
