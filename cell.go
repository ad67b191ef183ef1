package markerpack

import "sync/atomic"

const UpdateRetries = 5

// PairCell holds one packed marker pair that many goroutines can read and
// update without locks. The whole state is a single uint32, so a cell costs
// 4 bytes and never allocates.
//
// The zero value holds the pair (0, 0) and is ready to use.
// A PairCell must not be copied after first use.
type PairCell struct {
	word atomic.Uint32
}

// NewPairCell returns a cell holding the packed pair (s1, s2).
func NewPairCell(s1, s2 uint16) *PairCell {
	c := &PairCell{}
	c.Store(s1, s2)
	return c
}

// Word returns the packed word currently held.
func (c *PairCell) Word() uint32 {
	return c.word.Load()
}

// Load returns both fields of the pair currently held.
func (c *PairCell) Load() (s1, s2 uint16) {
	return UnpackMarkers(c.word.Load())
}

// Store replaces the pair. s2 is masked exactly as PackMarkers masks it.
func (c *PairCell) Store(s1, s2 uint16) {
	c.word.Store(PackMarkers(s1, s2))
}

// CompareAndSwap swaps in new only if the cell still holds old.
func (c *PairCell) CompareAndSwap(old, new uint32) bool {
	return c.word.CompareAndSwap(old, new)
}

// Update applies fn to the current pair and stores the result.
// Internally, this is a shorthand for calling UpdateN(fn, UpdateRetries).
func (c *PairCell) Update(fn func(s1, s2 uint16) (uint16, uint16)) bool {
	return c.UpdateN(fn, UpdateRetries)
}

// UpdateN applies fn to the current pair and atomically stores the result.
//
// fn may run more than once when other goroutines update the cell at the
// same time, so it must not have side effects. Each run sees a fresh snapshot.
//
// Returns:
//   - true if the new pair was stored
//   - false if all `retries` CAS attempts lost to concurrent writers (the cell is left as they wrote it)
func (c *PairCell) UpdateN(fn func(s1, s2 uint16) (uint16, uint16), retries int) bool {
	for i := 0; i < retries; i++ {
		old := c.word.Load()
		s1, s2 := fn(UnpackMarkers(old))
		if c.word.CompareAndSwap(old, PackMarkers(s1, s2)) {
			return true
		}
	}
	return false
}
