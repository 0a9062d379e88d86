/*
Package Tables holds the parts shared by the single-threaded hash tables in ProbeTable and ChainTable.

# Collision resolution
ProbeTable resolves collisions by linear probing inside one slot array. Removed slots become tombstones, which keep probe sequences unbroken and are reused by later insertions. ChainTable keeps one singly linked list per bucket.

# Growth
Both tables grow by doubling once Size()/Capacity() reaches MaxLoad, rebuilding the whole storage and reinserting every live entry. They never shrink on their own, but Rehash can be called with any capacity that still fits the entries.

# Keys
A key type either implements Hashable and the table is built with New, or it's comparable and a hash function is passed to NewFunc. Hashes may be negative.
*/
package Tables

import "strconv"

// MaxLoad is the load factor at which a table doubles its capacity.
const MaxLoad = 0.8

// Hashable is the capability a key needs when it doesn't come with its own hash function.
type Hashable[K any] interface {
	Hash() int
	Equal(K) bool
}

// Table is the contract both ProbeTable and ChainTable fulfill.
type Table[K any, V any] interface {
	Capacity() int
	Size() int
	Put(K, V)
	//Get the value of a key. The bool is false when the key isn't present.
	Get(K) (V, bool)
	//Remove a key, returning its old value. The bool is false when the key isn't present.
	Remove(K) (V, bool)
	//Rehash rebuilds the storage with the given capacity. Returns false without changing anything if the capacity is too small.
	Rehash(int) bool
	Has(K) bool
	//Range calls f on every live entry in storage order until f returns false.
	Range(f func(K, V) bool)
	//String has one "key:value" line for every live entry.
	String() string
	//Debug has one line for every slot of the storage.
	Debug() string
}

// Home maps hash to a position in [0,capacity).
func Home(hash, capacity int) int {
	if p := hash % capacity; p < 0 {
		return -p
	} else {
		return p
	}
}

// Overloaded reports whether size elements in capacity slots reached MaxLoad.
func Overloaded(size, capacity int) bool {
	return float64(size)/float64(capacity) >= MaxLoad
}

// HashOf returns the hash function of a Hashable key type.
func HashOf[K Hashable[K]]() func(K) int {
	return func(k K) int {
		return k.Hash()
	}
}

// EqualOf returns the equality of a Hashable key type.
func EqualOf[K Hashable[K]]() func(K, K) bool {
	return func(a, b K) bool {
		return a.Equal(b)
	}
}

// Equal is == as a function.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// CapacityError is the panic value of the constructors when they are given a capacity below Min.
type CapacityError struct {
	Capacity, Min int
}

func (e *CapacityError) Error() string {
	return "capacity " + strconv.Itoa(e.Capacity) + " is less than " + strconv.Itoa(e.Min)
}

// CheckCapacity panics with a *CapacityError if capacity is less than 1.
func CheckCapacity(capacity int) {
	if capacity < 1 {
		panic(&CapacityError{capacity, 1})
	}
}
