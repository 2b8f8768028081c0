package treemap

import (
	"context"

	"golang.org/x/exp/constraints"
)

type (
	ForEachFn[K constraints.Ordered, V any]      func(key K, value V, order int)
	ForEachUntilFn[K constraints.Ordered, V any] func(key K, value V, order int) bool
	FilterFn[K constraints.Ordered, V any]       func(key K, value V, order int) bool
	TransformerFn[K constraints.Ordered, V any]  func(key K, value V, order int) V
)

// Keys rebuilds the cached ordered key sequence from a fresh in-order
// traversal and returns it. The slice is owned by the dictionary and
// is invalidated by the next Keys or Clear call.
func (d *Dictionary[K, V]) Keys() []K {
	if cap(d.ks) < d.n {
		d.ks = make([]K, 0, d.n)
	} else {
		d.ks = d.ks[:0]
	}

	inorder(d.root, func(t *node[K, V]) {
		d.ks = append(d.ks, t.kv.Key)
	})

	return d.ks
}

// Values rebuilds the cached value sequence, ascending by key.
func (d *Dictionary[K, V]) Values() []V {
	if cap(d.vs) < d.n {
		d.vs = make([]V, 0, d.n)
	} else {
		d.vs = d.vs[:0]
	}

	inorder(d.root, func(t *node[K, V]) {
		d.vs = append(d.vs, t.kv.Value)
	})

	return d.vs
}

func (d *Dictionary[K, V]) ForEach(f ForEachFn[K, V]) {
	order := 0
	inorder(d.root, func(t *node[K, V]) {
		f(t.kv.Key, t.kv.Value, order)
		order++
	})
}

func (d *Dictionary[K, V]) ForEachUntil(ff ForEachUntilFn[K, V]) *Dictionary[K, V] {
	order := 0
	inorderUntil(d.root, func(t *node[K, V]) bool {
		canGoOn := ff(t.kv.Key, t.kv.Value, order)
		order++
		return canGoOn
	})

	return d
}

// Filter returns a new dictionary holding the pairs the predicate
// preserved; the receiver is untouched.
func (d *Dictionary[K, V]) Filter(f FilterFn[K, V]) *Dictionary[K, V] {
	result := New[K, V]()

	order := 0
	inorder(d.root, func(t *node[K, V]) {
		if f(t.kv.Key, t.kv.Value, order) {
			result.InsertPair(t.kv)
		}
		order++
	})

	return result
}

// Transform returns a new dictionary with every value mapped through f.
func (d *Dictionary[K, V]) Transform(f TransformerFn[K, V]) *Dictionary[K, V] {
	result := New[K, V]()

	order := 0
	inorder(d.root, func(t *node[K, V]) {
		result.Insert(t.kv.Key, f(t.kv.Key, t.kv.Value, order))
		order++
	})

	return result
}

// Pairs emits the pairs in ascending key order. The channel is fed
// from a snapshot taken before Pairs returns, so later mutation of the
// dictionary does not race the sending goroutine.
func (d *Dictionary[K, V]) Pairs(ctx context.Context) <-chan Pair[K, V] {
	snapshot := make([]Pair[K, V], 0, d.n)
	inorder(d.root, func(t *node[K, V]) {
		snapshot = append(snapshot, t.kv)
	})

	resultCh := make(chan Pair[K, V])

	go func() {
		defer close(resultCh)

		for _, p := range snapshot {
			select {
			case resultCh <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}

func inorder[K constraints.Ordered, V any](t *node[K, V], visit func(*node[K, V])) {
	if t == nil {
		return
	}

	inorder(t.left, visit)
	visit(t)
	inorder(t.right, visit)
}

func inorderUntil[K constraints.Ordered, V any](t *node[K, V], visit func(*node[K, V]) bool) bool {
	if t == nil {
		return true
	}

	if !inorderUntil(t.left, visit) {
		return false
	}
	if !visit(t) {
		return false
	}
	return inorderUntil(t.right, visit)
}
