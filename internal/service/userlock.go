package service

import "sync"

// Locks serializes work on one user's cart. Services that touch the same carts
// must share one Locks value.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	sync.Mutex
	refs int
}

func NewLocks() *Locks {
	return &Locks{locks: make(map[string]*userLock)}
}

// lock blocks until username is free and returns the matching unlock func.
// Entries are dropped once nobody holds or waits for them.
func (l *Locks) lock(username string) func() {
	l.mu.Lock()
	ul, ok := l.locks[username]
	if !ok {
		ul = &userLock{}
		l.locks[username] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.Lock()

	return func() {
		ul.Unlock()

		l.mu.Lock()
		ul.refs--
		if ul.refs == 0 {
			delete(l.locks, username)
		}
		l.mu.Unlock()
	}
}

func (l *Locks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func orNewLocks(l *Locks) *Locks {
	if l == nil {
		return NewLocks()
	}
	return l
}
