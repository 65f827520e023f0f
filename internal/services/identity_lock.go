package services

import (
	"hash/fnv"
	"sync"
)

const identityLockStripes = 512

// identityLocks serializes spin processing per (campaign, phone) pair so
// two in-flight spins from the same phone cannot both pass the quota
// check before either has appended its ledger entry. Keys are hashed
// onto a fixed set of mutex stripes; unrelated identities land on
// different stripes and proceed in parallel. This only coordinates
// within one process — the redemption cap itself is enforced by the
// storage-level conditional increment, which needs no coordination.
type identityLocks struct {
	stripes [identityLockStripes]sync.Mutex
}

func newIdentityLocks() *identityLocks {
	return &identityLocks{}
}

// Lock acquires the stripe for the given key and returns its unlock func.
func (l *identityLocks) Lock(key string) func() {
	h := fnv.New32a()
	h.Write([]byte(key))
	m := &l.stripes[h.Sum32()%identityLockStripes]
	m.Lock()
	return m.Unlock
}
