// Package tabletest is the conformance suite shared by the table implementations.
package tabletest

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/g-m-twostay/go-tables/Tables"
	"github.com/google/go-cmp/cmp"
)

// Key has a hash chosen by the test so collisions can be forced. Keys are equal when their IDs are.
type Key struct {
	ID, H int
}

func (k Key) Hash() int {
	return k.H
}

func (k Key) Equal(o Key) bool {
	return k.ID == o.ID
}

// K makes a Key hashing to h.
func K(id, h int) Key {
	return Key{id, h}
}

type Factory func(capacity int) Tables.Table[Key, int]

type pair struct {
	K Key
	V int
}

// Run the suite against the tables made by newT.
func Run(t *testing.T, newT Factory) {
	t.Run("RoundTrip", func(t *testing.T) { roundTrip(t, newT) })
	t.Run("Dedup", func(t *testing.T) { dedup(t, newT) })
	t.Run("LoadFactor", func(t *testing.T) { loadFactor(t, newT) })
	t.Run("Remove", func(t *testing.T) { remove(t, newT) })
	t.Run("Rehash", func(t *testing.T) { rehash(t, newT) })
	t.Run("NegativeHash", func(t *testing.T) { negativeHash(t, newT) })
	t.Run("Range", func(t *testing.T) { ranges(t, newT) })
	t.Run("String", func(t *testing.T) { str(t, newT) })
	t.Run("BadCapacity", func(t *testing.T) { badCapacity(t, newT) })
	t.Run("Model", func(t *testing.T) { model(t, newT) })
}

// Snapshot the live entries of m sorted by key ID.
func Snapshot(m Tables.Table[Key, int]) []pair {
	var ps []pair
	m.Range(func(k Key, v int) bool {
		ps = append(ps, pair{k, v})
		return true
	})
	sort.Slice(ps, func(i, j int) bool { return ps[i].K.ID < ps[j].K.ID })
	return ps
}

func roundTrip(t *testing.T, newT Factory) {
	m := newT(4)
	for i := 0; i < 100; i++ {
		m.Put(K(i, i%5), i*10)
		if v, ok := m.Get(K(i, i%5)); !ok || v != i*10 {
			t.Fatalf("Get(%d) = %d, %t right after Put", i, v, ok)
		}
	}
	for i := 0; i < 100; i++ {
		if v, ok := m.Get(K(i, i%5)); !ok || v != i*10 {
			t.Errorf("Get(%d) = %d, %t, want %d", i, v, ok, i*10)
		}
		if !m.Has(K(i, i%5)) {
			t.Errorf("Has(%d) = false", i)
		}
	}
	if m.Size() != 100 {
		t.Errorf("Size() = %d, want 100", m.Size())
	}
	if _, ok := m.Get(K(100, 0)); ok {
		t.Error("found absent key")
	}
}

func dedup(t *testing.T, newT Factory) {
	for c := 1; c <= 8; c++ {
		m := newT(c)
		m.Put(K(1, 1), 1)
		m.Put(K(1, 1), 2)
		if v, _ := m.Get(K(1, 1)); v != 2 || m.Size() != 1 {
			t.Errorf("capacity %d: Get = %d, Size = %d, want 2, 1", c, v, m.Size())
		}
	}
	m := newT(8) //the duplicate sits behind a tombstone in the probe sequence or deep in a chain.
	m.Put(K(1, 0), 1)
	m.Put(K(2, 0), 2)
	m.Put(K(3, 0), 3)
	m.Remove(K(1, 0))
	m.Put(K(3, 0), 30)
	if v, _ := m.Get(K(3, 0)); v != 30 || m.Size() != 2 {
		t.Errorf("Get = %d, Size = %d, want 30, 2", v, m.Size())
	}
	m.Remove(K(3, 0))
	if m.Has(K(3, 0)) {
		t.Error("stale duplicate left behind")
	}
}

func loadFactor(t *testing.T, newT Factory) {
	for _, c := range []int{1, 2, 3, 5, 7} {
		m := newT(c)
		for i := 0; i < 64; i++ {
			m.Put(K(i, i*3), i)
			if Tables.Overloaded(m.Size(), m.Capacity()) {
				t.Fatalf("capacity %d: load %d/%d after Put", c, m.Size(), m.Capacity())
			}
		}
		if m.Capacity() < c {
			t.Errorf("shrunk from %d to %d", c, m.Capacity())
		}
	}
}

func remove(t *testing.T, newT Factory) {
	m := newT(8)
	if _, ok := m.Remove(K(5, 5)); ok || m.Size() != 0 {
		t.Error("removed from empty table")
	}
	for i := 0; i < 6; i++ {
		m.Put(K(i, 0), i)
	}
	if _, ok := m.Remove(K(99, 0)); ok || m.Size() != 6 {
		t.Errorf("failed removal changed size to %d", m.Size())
	}
	for i := 0; i < 6; i += 2 {
		if v, ok := m.Remove(K(i, 0)); !ok || v != i {
			t.Errorf("Remove(%d) = %d, %t", i, v, ok)
		}
		if _, ok := m.Remove(K(i, 0)); ok {
			t.Errorf("removed %d twice", i)
		}
	}
	if m.Size() != 3 {
		t.Errorf("Size() = %d, want 3", m.Size())
	}
	for i := 0; i < 6; i++ {
		if _, ok := m.Get(K(i, 0)); ok != (i%2 == 1) {
			t.Errorf("Get(%d) found = %t", i, ok)
		}
	}
	m.Put(K(0, 0), 100)
	if v, _ := m.Get(K(0, 0)); v != 100 || m.Size() != 4 {
		t.Errorf("reinsert: Get = %d, Size = %d", v, m.Size())
	}
}

func rehash(t *testing.T, newT Factory) {
	m := newT(4)
	for i := 0; i < 3; i++ {
		m.Put(K(i, i), i)
	}
	before := m.Debug()
	for _, c := range []int{0, -1} {
		if m.Rehash(c) {
			t.Errorf("Rehash(%d) succeeded", c)
		}
	}
	if m.Debug() != before {
		t.Errorf("failed Rehash changed storage:\n%s", cmp.Diff(before, m.Debug()))
	}
	want := Snapshot(m)
	if !m.Rehash(16) || m.Capacity() != 16 || m.Size() != 3 {
		t.Fatalf("Rehash(16): capacity %d, size %d", m.Capacity(), m.Size())
	}
	if diff := cmp.Diff(want, Snapshot(m)); diff != "" {
		t.Errorf("entries changed by Rehash (-want +got):\n%s", diff)
	}
	if !m.Rehash(m.Size() + 1) {
		t.Error("Rehash(Size()+1) failed")
	}
	for i := 0; i < 3; i++ {
		if v, ok := m.Get(K(i, i)); !ok || v != i {
			t.Errorf("Get(%d) = %d, %t after Rehash", i, v, ok)
		}
	}
}

func negativeHash(t *testing.T, newT Factory) {
	m := newT(5)
	hs := []int{-1, -5, -6, math.MinInt, 7, -7}
	for i, h := range hs {
		m.Put(K(i, h), i)
	}
	for i, h := range hs {
		if v, ok := m.Get(K(i, h)); !ok || v != i {
			t.Errorf("Get(hash %d) = %d, %t", h, v, ok)
		}
	}
	for i, h := range hs {
		if _, ok := m.Remove(K(i, h)); !ok {
			t.Errorf("Remove(hash %d) failed", h)
		}
	}
	if m.Size() != 0 {
		t.Errorf("Size() = %d, want 0", m.Size())
	}
}

func ranges(t *testing.T, newT Factory) {
	m := newT(8)
	for i := 0; i < 10; i++ {
		m.Put(K(i, i), i)
	}
	n := 0
	m.Range(func(Key, int) bool {
		n++
		return n < 4
	})
	if n != 4 {
		t.Errorf("Range didn't stop, called %d times", n)
	}
	if len(Snapshot(m)) != 10 {
		t.Errorf("Range visited %d entries, want 10", len(Snapshot(m)))
	}
}

func str(t *testing.T, newT Factory) {
	m := newT(8)
	if m.String() != "" {
		t.Errorf("empty table renders as %q", m.String())
	}
	m.Put(K(1, 1), 10)
	m.Put(K(2, 2), 20)
	m.Remove(K(1, 1))
	m.Put(K(3, 3), 30)
	lines := strings.Split(m.String(), "\n")
	sort.Strings(lines)
	want := []string{"{2 2}:20", "{3 3}:30"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("String() (-want +got):\n%s", diff)
	}
	if got := len(strings.Split(m.Debug(), "\n")); got != m.Capacity() {
		t.Errorf("Debug() has %d lines, want %d", got, m.Capacity())
	}
}

func badCapacity(t *testing.T, newT Factory) {
	for _, c := range []int{0, -3} {
		func() {
			defer func() {
				var ce *Tables.CapacityError
				if err, _ := recover().(error); !errors.As(err, &ce) || ce.Capacity != c {
					t.Errorf("capacity %d: recovered %v", c, err)
				}
			}()
			newT(c)
		}()
	}
}

// model runs random operations against the table and a gods hashmap and compares them.
func model(t *testing.T, newT Factory) {
	rg := rand.New(rand.NewSource(0))
	m, ref := newT(3), hashmap.New()
	for op := 0; op < 20000; op++ {
		id := rg.Intn(200)
		k := K(id, id%13-6)
		switch rg.Intn(4) {
		case 0, 1:
			m.Put(k, op)
			ref.Put(k, op)
		case 2:
			v, ok := m.Remove(k)
			rv, rok := ref.Get(k)
			ref.Remove(k)
			if ok != rok || (ok && v != rv.(int)) {
				t.Fatalf("op %d: Remove(%v) = %d, %t, want %v, %t", op, k, v, ok, rv, rok)
			}
		case 3:
			v, ok := m.Get(k)
			rv, rok := ref.Get(k)
			if ok != rok || (ok && v != rv.(int)) {
				t.Fatalf("op %d: Get(%v) = %d, %t, want %v, %t", op, k, v, ok, rv, rok)
			}
		}
		if m.Size() != ref.Size() {
			t.Fatalf("op %d: Size() = %d, want %d", op, m.Size(), ref.Size())
		}
	}
	var want []pair
	for _, k := range ref.Keys() {
		v, _ := ref.Get(k)
		want = append(want, pair{k.(Key), v.(int)})
	}
	sort.Slice(want, func(i, j int) bool { return want[i].K.ID < want[j].K.ID })
	if diff := cmp.Diff(want, Snapshot(m)); diff != "" {
		t.Errorf("entries differ from model (-want +got):\n%s", diff)
	}
}
