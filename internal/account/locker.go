package account

import (
	"sort"
	"sync"
)

// Locker hands out per-account mutexes so read-modify-write sequences on the
// same account run one at a time within the process.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewLocker returns an empty Locker.
func NewLocker() *Locker {
	return &Locker{locks: make(map[string]*lockEntry)}
}

// Lock acquires the locks for ids in sorted order and returns the release func.
// Duplicate ids are locked once.
func (l *Locker) Lock(ids ...string) (unlock func()) {
	keys := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, id)
	}
	sort.Strings(keys)

	entries := make([]*lockEntry, len(keys))
	l.mu.Lock()
	for i, k := range keys {
		e, ok := l.locks[k]
		if !ok {
			e = &lockEntry{}
			l.locks[k] = e
		}
		e.refs++
		entries[i] = e
	}
	l.mu.Unlock()

	for _, e := range entries {
		e.mu.Lock()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(entries) - 1; i >= 0; i-- {
				entries[i].mu.Unlock()
			}
			l.mu.Lock()
			defer l.mu.Unlock()
			for i, k := range keys {
				entries[i].refs--
				if entries[i].refs == 0 {
					delete(l.locks, k)
				}
			}
		})
	}
}
