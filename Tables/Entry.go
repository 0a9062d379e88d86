package Tables

import "fmt"

// Entry is an immutable key value pair. Tables replace an Entry as a whole instead of changing it.
type Entry[K any, V any] struct {
	key K
	val V
}

func MakeEntry[K any, V any](key K, val V) Entry[K, V] {
	return Entry[K, V]{key, val}
}

func (e Entry[K, V]) Key() K {
	return e.key
}

func (e Entry[K, V]) Value() V {
	return e.val
}

// String formats the entry as "key:value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.key, e.val)
}
