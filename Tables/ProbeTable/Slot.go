package ProbeTable

import "github.com/g-m-twostay/go-tables/Tables"

type state byte

const (
	empty state = iota //never used since the last rehash; ends a probe sequence.
	tombstone
	occupied
)

type slot[K any, V any] struct {
	e  Tables.Entry[K, V]
	st state
}

func (s *slot[K, V]) used() bool {
	return s.st == occupied
}

func (s *slot[K, V]) fill(e Tables.Entry[K, V]) {
	s.e, s.st = e, occupied
}

// bury turns the slot into a tombstone and drops the entry so the GC can collect it.
func (s *slot[K, V]) bury() {
	s.e, s.st = Tables.Entry[K, V]{}, tombstone
}

func (s *slot[K, V]) String() string {
	switch s.st {
	case occupied:
		return s.e.String()
	case tombstone:
		return "tombstone"
	default:
		return "null"
	}
}
