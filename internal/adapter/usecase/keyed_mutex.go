package usecase

import "sync"

// keyedMutex serializes work per string key. Event processing holds the key
// of one advertisement for the duration of a single read-modify-write, so
// two concurrent events on the same advertisement cannot lose an update
// while events on different advertisements proceed in parallel. Entries are
// reference counted and removed once the last holder releases them, so the
// map does not grow with the number of advertisements ever seen.
type keyedMutex struct {
	mu   sync.Mutex
	keys map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) {
	k.mu.Lock()
	if k.keys == nil {
		k.keys = make(map[string]*keyLock)
	}
	l, ok := k.keys[key]
	if !ok {
		l = &keyLock{}
		k.keys[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
}

func (k *keyedMutex) unlock(key string) {
	k.mu.Lock()
	l := k.keys[key]
	l.refs--
	if l.refs == 0 {
		delete(k.keys, key)
	}
	k.mu.Unlock()

	l.mu.Unlock()
}
