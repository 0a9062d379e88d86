package ChainTable

import (
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-tables/Tables"
)

var _ Tables.Table[int, int] = (*ChainTable[int, int])(nil)

// ChainTable is a hash table using separate chaining: every bucket is a singly linked list of entries, new keys are appended at its tail. It's not thread-safe.
type ChainTable[K any, V any] struct {
	buckets []*node[K, V]
	sz      int
	hashF   func(K) int
	eq      func(K, K) bool
}

// New ChainTable with capacity buckets for keys that implement Tables.Hashable. Panics with a *Tables.CapacityError if capacity<1.
func New[K Tables.Hashable[K], V any](capacity int) *ChainTable[K, V] {
	return newTable[K, V](capacity, Tables.HashOf[K](), Tables.EqualOf[K]())
}

// NewFunc makes a ChainTable for comparable keys hashed by hashF. hashF can return negative values. Panics with a *Tables.CapacityError if capacity<1.
func NewFunc[K comparable, V any](capacity int, hashF func(K) int) *ChainTable[K, V] {
	return newTable[K, V](capacity, hashF, Tables.Equal[K])
}

func newTable[K any, V any](capacity int, hashF func(K) int, eq func(K, K) bool) *ChainTable[K, V] {
	Tables.CheckCapacity(capacity)
	return &ChainTable[K, V]{buckets: make([]*node[K, V], capacity), hashF: hashF, eq: eq}
}

func (u *ChainTable[K, V]) Capacity() int {
	return len(u.buckets)
}

func (u *ChainTable[K, V]) Size() int {
	return u.sz
}

func (u *ChainTable[K, V]) LoadFactor() float64 {
	return float64(u.sz) / float64(len(u.buckets))
}

func (u *ChainTable[K, V]) home(key K) int {
	return Tables.Home(u.hashF(key), len(u.buckets))
}

// search returns the link pointing at the node of key. If key is absent, the link is the nil tail of its chain.
func (u *ChainTable[K, V]) search(key K) **node[K, V] {
	pre := &u.buckets[u.home(key)]
	for ; *pre != nil && !u.eq((*pre).e.Key(), key); pre = &(*pre).nx {
	}
	return pre
}

// Put key and val into the table, replacing the old entry if key is present. Doubles the capacity, as many times as needed, until the load factor is below Tables.MaxLoad.
func (u *ChainTable[K, V]) Put(key K, val V) {
	pre := u.search(key)
	if *pre != nil {
		(*pre).e = Tables.MakeEntry(key, val)
		return
	}
	*pre = &node[K, V]{e: Tables.MakeEntry(key, val)}
	u.sz++
	for Tables.Overloaded(u.sz, len(u.buckets)) {
		u.Rehash(len(u.buckets) << 1)
	}
}

func (u *ChainTable[K, V]) Get(key K) (val V, ok bool) {
	if cur := *u.search(key); cur != nil {
		val, ok = cur.e.Value(), true
	}
	return
}

func (u *ChainTable[K, V]) Has(key K) bool {
	return *u.search(key) != nil
}

// Remove key by unlinking its node. Size is unchanged when key is absent.
func (u *ChainTable[K, V]) Remove(key K) (val V, ok bool) {
	if pre := u.search(key); *pre != nil {
		val, ok = (*pre).e.Value(), true
		*pre = (*pre).nx
		u.sz--
	}
	return
}

// Rehash relinks all nodes into capacity buckets. The relative order of nodes sharing a new bucket is kept. Fails if capacity<1.
func (u *ChainTable[K, V]) Rehash(capacity int) bool {
	if capacity < 1 {
		return false
	}
	old := u.buckets
	u.buckets = make([]*node[K, V], capacity)
	tails := make([]**node[K, V], capacity)
	for i := range tails {
		tails[i] = &u.buckets[i]
	}
	for _, h := range old {
		for cur := h; cur != nil; {
			nx := cur.nx
			i := u.home(cur.e.Key())
			cur.nx = nil
			*tails[i] = cur
			tails[i] = &cur.nx
			cur = nx
		}
	}
	return true
}

func (u *ChainTable[K, V]) Range(f func(K, V) bool) {
	for _, h := range u.buckets {
		for cur := h; cur != nil; cur = cur.nx {
			if !f(cur.e.Key(), cur.e.Value()) {
				return
			}
		}
	}
}

func (u *ChainTable[K, V]) String() string {
	var sb strings.Builder
	first := true
	for _, h := range u.buckets {
		for cur := h; cur != nil; cur = cur.nx {
			if !first {
				sb.WriteByte('\n')
			}
			sb.WriteString(cur.e.String())
			first = false
		}
	}
	return sb.String()
}

// Debug prints every bucket as "[i]: [key:value]->...->null".
func (u *ChainTable[K, V]) Debug() string {
	var sb strings.Builder
	for i, h := range u.buckets {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[" + strconv.Itoa(i) + "]: ")
		for cur := h; cur != nil; cur = cur.nx {
			sb.WriteString(cur.String())
		}
		sb.WriteString("null")
	}
	return sb.String()
}
