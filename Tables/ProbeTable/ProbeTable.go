package ProbeTable

import (
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-tables/Tables"
)

var _ Tables.Table[int, int] = (*ProbeTable[int, int])(nil)

// ProbeTable is a hash table using open addressing with linear probing. Removed keys leave tombstones behind, which are skipped by lookups and reused by insertions. It's not thread-safe.
type ProbeTable[K any, V any] struct {
	slots []slot[K, V]
	sz    int //occupied slots, tombstones excluded.
	hashF func(K) int
	eq    func(K, K) bool
}

// New ProbeTable with capacity slots for keys that implement Tables.Hashable. Panics with a *Tables.CapacityError if capacity<1.
func New[K Tables.Hashable[K], V any](capacity int) *ProbeTable[K, V] {
	return newTable[K, V](capacity, Tables.HashOf[K](), Tables.EqualOf[K]())
}

// NewFunc makes a ProbeTable for comparable keys hashed by hashF. hashF can return negative values. Panics with a *Tables.CapacityError if capacity<1.
func NewFunc[K comparable, V any](capacity int, hashF func(K) int) *ProbeTable[K, V] {
	return newTable[K, V](capacity, hashF, Tables.Equal[K])
}

func newTable[K any, V any](capacity int, hashF func(K) int, eq func(K, K) bool) *ProbeTable[K, V] {
	Tables.CheckCapacity(capacity)
	return &ProbeTable[K, V]{slots: make([]slot[K, V], capacity), hashF: hashF, eq: eq}
}

func (u *ProbeTable[K, V]) Capacity() int {
	return len(u.slots)
}

func (u *ProbeTable[K, V]) Size() int {
	return u.sz
}

func (u *ProbeTable[K, V]) LoadFactor() float64 {
	return float64(u.sz) / float64(len(u.slots))
}

func (u *ProbeTable[K, V]) home(key K) int {
	return Tables.Home(u.hashF(key), len(u.slots))
}

// next slot index, wrapping at the end.
func (u *ProbeTable[K, V]) next(i int) int {
	if i++; i == len(u.slots) {
		return 0
	}
	return i
}

// find returns the index of the slot holding key, or -1. Tombstones are passed through; an empty slot or a full cycle ends the search.
func (u *ProbeTable[K, V]) find(key K) int {
	for i, n := u.home(key), 0; n < len(u.slots) && u.slots[i].st != empty; i, n = u.next(i), n+1 {
		if u.slots[i].used() && u.eq(u.slots[i].e.Key(), key) {
			return i
		}
	}
	return -1
}

// insert e into the slots without checking the load factor. Returns true if the size increased, false if an existing entry of the same key was replaced.
func (u *ProbeTable[K, V]) insert(e Tables.Entry[K, V]) bool {
	free, i := -1, u.home(e.Key())
	for n := 0; n < len(u.slots); i, n = u.next(i), n+1 {
		if s := &u.slots[i]; s.used() {
			if u.eq(s.e.Key(), e.Key()) {
				s.fill(e)
				return false
			}
		} else {
			if free < 0 {
				free = i
			}
			if s.st == empty { //nothing of e's key can lie past an empty slot.
				break
			}
		}
	}
	if free < 0 { //all slots occupied, grow instead of failing.
		u.Rehash(len(u.slots) << 1)
		return u.insert(e)
	}
	u.slots[free].fill(e)
	u.sz++
	return true
}

// Put key and val into the table, replacing the old value if key is present. Doubles the capacity when the load factor reaches Tables.MaxLoad.
func (u *ProbeTable[K, V]) Put(key K, val V) {
	if u.insert(Tables.MakeEntry(key, val)) && Tables.Overloaded(u.sz, len(u.slots)) {
		u.Rehash(len(u.slots) << 1)
	}
}

func (u *ProbeTable[K, V]) Get(key K) (val V, ok bool) {
	if i := u.find(key); i >= 0 {
		val, ok = u.slots[i].e.Value(), true
	}
	return
}

func (u *ProbeTable[K, V]) Has(key K) bool {
	return u.find(key) >= 0
}

// Remove key, leaving a tombstone in its slot.
func (u *ProbeTable[K, V]) Remove(key K) (val V, ok bool) {
	if i := u.find(key); i >= 0 {
		val, ok = u.slots[i].e.Value(), true
		u.slots[i].bury()
		u.sz--
	}
	return
}

// Rehash all entries into a new array of capacity slots, dropping the tombstones. Fails if capacity<Size()+1.
func (u *ProbeTable[K, V]) Rehash(capacity int) bool {
	if capacity < u.sz+1 {
		return false
	}
	old := u.slots
	u.slots, u.sz = make([]slot[K, V], capacity), 0
	for i := range old {
		if old[i].used() {
			u.insert(old[i].e)
		}
	}
	return true
}

func (u *ProbeTable[K, V]) Range(f func(K, V) bool) {
	for i := range u.slots {
		if u.slots[i].used() && !f(u.slots[i].e.Key(), u.slots[i].e.Value()) {
			return
		}
	}
}

func (u *ProbeTable[K, V]) String() string {
	var sb strings.Builder
	for i, first := 0, true; i < len(u.slots); i++ {
		if u.slots[i].used() {
			if !first {
				sb.WriteByte('\n')
			}
			sb.WriteString(u.slots[i].e.String())
			first = false
		}
	}
	return sb.String()
}

// Debug prints every slot as "[i]: key:value", "[i]: tombstone", or "[i]: null".
func (u *ProbeTable[K, V]) Debug() string {
	var sb strings.Builder
	for i := range u.slots {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[" + strconv.Itoa(i) + "]: ")
		sb.WriteString(u.slots[i].String())
	}
	return sb.String()
}
