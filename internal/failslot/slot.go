// Package failslot provides a write-once error cell shared by parallel workers.
//
// The first error installed wins; later errors are dropped. Workers may poll
// Failed to stop picking up new work, but correctness never depends on it.
package failslot

import "sync/atomic"

// Slot holds the first error reported by any worker of a fan-out.
// The zero value is an empty slot ready for use.
type Slot struct {
	first atomic.Pointer[error]
}

// Set installs err if the slot is empty. Nil errors are ignored.
// Returns true when err became the recorded failure.
func (s *Slot) Set(err error) bool {
	if err == nil {
		return false
	}
	return s.first.CompareAndSwap(nil, &err)
}

// Failed reports whether an error has been recorded.
func (s *Slot) Failed() bool {
	return s.first.Load() != nil
}

// Err returns the recorded error, or nil.
func (s *Slot) Err() error {
	if p := s.first.Load(); p != nil {
		return *p
	}
	return nil
}
