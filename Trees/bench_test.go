package Trees

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/google/btree, https://github.com/petar/GoLLRB
// and https://github.com/emirpasic/gods red-black tree on the same random keys.
// The hash maps are only a baseline for Find, they keep no order.
const (
	bAddN = 1 << 16
	bQryN = bAddN / 2
)

var sideEff bool

func bKeys(b *testing.B) []int {
	b.Helper()
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	return all
}

func BenchmarkBST_Insert(b *testing.B) {
	all := bKeys(b)
	b.ResetTimer()
	for range b.N {
		tree := New[int](nil)
		for _, v := range all {
			tree.Insert(v)
		}
	}
}

func BenchmarkBST_Build(b *testing.B) {
	all := bKeys(b)
	b.ResetTimer()
	for range b.N {
		New(all)
	}
}

func BenchmarkBST_Remove(b *testing.B) {
	all := bKeys(b)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := New(all)
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

func BenchmarkBST_Rebalance(b *testing.B) {
	all := bKeys(b)
	tree := New[int](nil)
	for _, v := range all {
		tree.Insert(v)
	}
	b.ResetTimer()
	for range b.N {
		tree.Rebalance()
	}
}

func BenchmarkBST_Find(b *testing.B) {
	all := bKeys(b)
	tree := New(all)
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = tree.Find(v) != nil
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	all := bKeys(b)
	b.ResetTimer()
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, v := range all {
			tree.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkBTree_Remove(b *testing.B) {
	all := bKeys(b)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := btree.NewOrderedG[int](32)
		for _, v := range all {
			tree.ReplaceOrInsert(v)
		}
		b.StartTimer()
		for _, v := range all {
			tree.Delete(v)
		}
	}
}

func BenchmarkBTree_Find(b *testing.B) {
	all := bKeys(b)
	tree := btree.NewOrderedG[int](32)
	for _, v := range all {
		tree.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = tree.Has(v)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	all := bKeys(b)
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, v := range all {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkLLRB_Find(b *testing.B) {
	all := bKeys(b)
	tree := llrb.New()
	for _, v := range all {
		tree.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = tree.Has(llrb.Int(v))
		}
	}
}

func BenchmarkRBTree_Insert(b *testing.B) {
	all := bKeys(b)
	b.ResetTimer()
	for range b.N {
		tree := redblacktree.NewWithIntComparator()
		for _, v := range all {
			tree.Put(v, nil)
		}
	}
}

func BenchmarkRBTree_Find(b *testing.B) {
	all := bKeys(b)
	tree := redblacktree.NewWithIntComparator()
	for _, v := range all {
		tree.Put(v, nil)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			_, sideEff = tree.Get(v)
		}
	}
}

func BenchmarkHaxMap_Find(b *testing.B) {
	all := bKeys(b)
	m := haxmap.New[int, struct{}]()
	for _, v := range all {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			_, sideEff = m.Get(v)
		}
	}
}

func BenchmarkHashMap_Find(b *testing.B) {
	all := bKeys(b)
	m := hashmap.New[int, struct{}]()
	for _, v := range all {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			_, sideEff = m.Get(v)
		}
	}
}
