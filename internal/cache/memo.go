package cache

import (
	"hash/maphash"
	"sync"
	"sync/atomic"
)

const numShards = 64

// Memo is a sharded concurrent map from color keys to palette indices.
// It distributes entries across 64 shards to reduce lock contention under
// parallel lookups. Entries are never evicted: the memo grows for the
// lifetime of its owner.
type Memo struct {
	shards [numShards]*shard
	seed   maphash.Seed

	hits   atomic.Int64
	misses atomic.Int64
}

type shard struct {
	mu sync.RWMutex
	m  map[uint64]int
}

// NewMemo creates an empty sharded memo.
func NewMemo() *Memo {
	m := &Memo{
		seed: maphash.MakeSeed(),
	}

	for i := 0; i < numShards; i++ {
		m.shards[i] = &shard{m: make(map[uint64]int)}
	}

	return m
}

// shard returns the shard for a given key using a fast hash.
// Keys are packed channel values, so the low bits alone distribute poorly;
// maphash mixes the full key.
func (m *Memo) shard(key uint64) *shard {
	var h maphash.Hash
	h.SetSeed(m.seed)

	var buf [8]byte
	buf[0] = byte(key)
	buf[1] = byte(key >> 8)
	buf[2] = byte(key >> 16)
	buf[3] = byte(key >> 24)
	buf[4] = byte(key >> 32)
	buf[5] = byte(key >> 40)
	buf[6] = byte(key >> 48)
	buf[7] = byte(key >> 56)

	_, _ = h.Write(buf[:])

	idx := h.Sum64() % numShards
	return m.shards[idx]
}

// Get returns the memoized index for key.
func (m *Memo) Get(key uint64) (int, bool) {
	s := m.shard(key)

	s.mu.RLock()
	idx, ok := s.m[key]
	s.mu.RUnlock()

	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}

	return idx, ok
}

// Set memoizes the index for key. Concurrent writers racing on the same key
// are last-write-wins; callers store deterministic values per key, so a lost
// write never changes the observable mapping.
func (m *Memo) Set(key uint64, idx int) {
	s := m.shard(key)

	s.mu.Lock()
	s.m[key] = idx
	s.mu.Unlock()
}

// Len returns the total number of memoized entries across all shards.
func (m *Memo) Len() int {
	total := 0
	for i := 0; i < numShards; i++ {
		s := m.shards[i]
		s.mu.RLock()
		total += len(s.m)
		s.mu.RUnlock()
	}
	return total
}

// Stats returns the hit/miss counters.
func (m *Memo) Stats() (hits, misses int64) {
	return m.hits.Load(), m.misses.Load()
}
