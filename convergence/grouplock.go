package convergence

import (
	"hash/crc32"
	"sync"
)

// StripedLock hands out the per-group mutex that keeps convergence runs for
// one group serialized while runs for different groups proceed in parallel.
// Groups hashing to the same stripe share a mutex, which only costs some
// parallelism, never correctness.
type StripedLock struct {
	locks []*sync.Mutex
}

func NewStripedLock(capacity int) *StripedLock {
	if capacity <= 0 {
		panic("invalid striped lock capacity")
	}
	locks := make([]*sync.Mutex, capacity)
	for i := range locks {
		locks[i] = &sync.Mutex{}
	}
	return &StripedLock{
		locks: locks,
	}
}

func (sl *StripedLock) GetLock(key string) *sync.Mutex {
	idx := crc32.ChecksumIEEE([]byte(key)) % uint32(len(sl.locks))
	return sl.locks[idx]
}
