package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	gods "github.com/emirpasic/gods/maps/hashmap"
	Go_Tables "github.com/g-m-twostay/go-tables"
	"github.com/g-m-twostay/go-tables/Tables"
	"github.com/g-m-twostay/go-tables/Tables/ChainTable"
	"github.com/g-m-twostay/go-tables/Tables/ProbeTable"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/puzpuzpuz/xsync/v3"
)

const (
	benchmarkItemCount = 1 << 12
	initCap            = 16
)

// single-threaded baselines for the two tables: the native map, other hash maps, and two ordered trees.

func newProbe() Tables.Table[int, int] {
	return ProbeTable.NewFunc[int, int](initCap, Go_Tables.HashInt[int])
}

func newChain() Tables.Table[int, int] {
	return ChainTable.NewFunc[int, int](initCap, Go_Tables.HashInt[int])
}

func setupTable(b *testing.B, newT func() Tables.Table[int, int]) Tables.Table[int, int] {
	b.Helper()
	m := newT()
	for i := range benchmarkItemCount {
		m.Put(i, i)
	}
	return m
}

func benchTablePut(b *testing.B, newT func() Tables.Table[int, int]) {
	for range b.N {
		setupTable(b, newT)
	}
}

func benchTableGet(b *testing.B, newT func() Tables.Table[int, int]) {
	m := setupTable(b, newT)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func benchTableChurn(b *testing.B, newT func() Tables.Table[int, int]) {
	m := setupTable(b, newT)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			m.Remove(i)
			m.Put(i+benchmarkItemCount, i)
			m.Remove(i + benchmarkItemCount)
			m.Put(i, i)
		}
	}
}

func BenchmarkPutProbeTable(b *testing.B)   { benchTablePut(b, newProbe) }
func BenchmarkPutChainTable(b *testing.B)   { benchTablePut(b, newChain) }
func BenchmarkGetProbeTable(b *testing.B)   { benchTableGet(b, newProbe) }
func BenchmarkGetChainTable(b *testing.B)   { benchTableGet(b, newChain) }
func BenchmarkChurnProbeTable(b *testing.B) { benchTableChurn(b, newProbe) }
func BenchmarkChurnChainTable(b *testing.B) { benchTableChurn(b, newChain) }

func BenchmarkPutMap(b *testing.B) {
	for range b.N {
		m := make(map[int]int, initCap)
		for i := range benchmarkItemCount {
			m[i] = i
		}
	}
}

func BenchmarkGetMap(b *testing.B) {
	m := make(map[int]int, initCap)
	for i := range benchmarkItemCount {
		m[i] = i
	}
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if m[i] != i {
				b.Fail()
			}
		}
	}
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, int] {
	b.Helper()
	m := haxmap.New[int, int]()
	for i := range benchmarkItemCount {
		m.Set(i, i)
	}
	return m
}

func BenchmarkPutHaxMap(b *testing.B) {
	for range b.N {
		setupHaxMap(b)
	}
}

func BenchmarkGetHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func setupHashMap(b *testing.B) *hashmap.Map[int, int] {
	b.Helper()
	m := hashmap.New[int, int]()
	for i := range benchmarkItemCount {
		m.Set(i, i)
	}
	return m
}

func BenchmarkPutHashMap(b *testing.B) {
	for range b.N {
		setupHashMap(b)
	}
}

func BenchmarkGetHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func setupXSyncMap(b *testing.B) *xsync.MapOf[int, int] {
	b.Helper()
	m := xsync.NewMapOf[int, int]()
	for i := range benchmarkItemCount {
		m.Store(i, i)
	}
	return m
}

func BenchmarkPutXSyncMap(b *testing.B) {
	for range b.N {
		setupXSyncMap(b)
	}
}

func BenchmarkGetXSyncMap(b *testing.B) {
	m := setupXSyncMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if j, _ := m.Load(i); j != i {
				b.Fail()
			}
		}
	}
}

func setupGodsMap(b *testing.B) *gods.Map {
	b.Helper()
	m := gods.New()
	for i := range benchmarkItemCount {
		m.Put(i, i)
	}
	return m
}

func BenchmarkPutGodsMap(b *testing.B) {
	for range b.N {
		setupGodsMap(b)
	}
}

func BenchmarkGetGodsMap(b *testing.B) {
	m := setupGodsMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	m := btree.NewG[int](32, func(x, y int) bool { return x < y })
	for i := range benchmarkItemCount {
		m.ReplaceOrInsert(i)
	}
	return m
}

func BenchmarkPutBTree(b *testing.B) {
	for range b.N {
		setupBTree(b)
	}
}

func BenchmarkGetBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if j, ok := m.Get(i); !ok || j != i {
				b.Fail()
			}
		}
	}
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	m := llrb.New()
	for i := range benchmarkItemCount {
		m.ReplaceOrInsert(llrb.Int(i))
	}
	return m
}

func BenchmarkPutLLRB(b *testing.B) {
	for range b.N {
		setupLLRB(b)
	}
}

func BenchmarkGetLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if j := m.Get(llrb.Int(i)); j == nil || int(j.(llrb.Int)) != i {
				b.Fail()
			}
		}
	}
}
