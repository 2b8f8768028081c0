package treemap

import (
	"github.com/denismitr/dll"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type node[K constraints.Ordered, V any] struct {
	kv    Pair[K, V]
	left  *node[K, V]
	right *node[K, V]
}

// Dictionary is an ordered key-value container backed by an unbalanced
// binary search tree. Keys are kept unique and enumerate in ascending
// order. It is not safe for concurrent use.
type Dictionary[K constraints.Ordered, V any] struct {
	root *node[K, V]
	n    int
	ks   []K
	vs   []V
}

func New[K constraints.Ordered, V any]() *Dictionary[K, V] {
	return &Dictionary[K, V]{}
}

func (d *Dictionary[K, V]) Len() int {
	return d.n
}

func (d *Dictionary[K, V]) IsEmpty() bool {
	return d.n == 0
}

// AtOrInsert returns a pointer to the value stored under key, creating
// an entry with the zero value when the key is absent.
func (d *Dictionary[K, V]) AtOrInsert(key K) *V {
	return d.atOrInsert(&d.root, key)
}

func (d *Dictionary[K, V]) atOrInsert(t **node[K, V], key K) *V {
	curr := *t
	if curr == nil {
		curr = &node[K, V]{kv: Pair[K, V]{Key: key}}
		*t = curr
		d.n++
		return &curr.kv.Value
	}

	if key < curr.kv.Key {
		return d.atOrInsert(&curr.left, key)
	}
	if curr.kv.Key < key {
		return d.atOrInsert(&curr.right, key)
	}

	return &curr.kv.Value
}

// At fails with ErrKeyNotFound when the key is absent.
func (d *Dictionary[K, V]) At(key K) (V, error) {
	t := d.find(key)
	if t == nil {
		return zero[V](), errors.Wrapf(ErrKeyNotFound, "at %v", key)
	}

	return t.kv.Value, nil
}

// AtRef is the mutable variant of At.
func (d *Dictionary[K, V]) AtRef(key K) (*V, error) {
	t := d.find(key)
	if t == nil {
		return nil, errors.Wrapf(ErrKeyNotFound, "at %v", key)
	}

	return &t.kv.Value, nil
}

func (d *Dictionary[K, V]) Has(key K) bool {
	return d.find(key) != nil
}

func (d *Dictionary[K, V]) HasGet(key K) (V, bool) {
	t := d.find(key)
	if t == nil {
		return zero[V](), false
	}

	return t.kv.Value, true
}

func (d *Dictionary[K, V]) find(key K) *node[K, V] {
	curr := d.root
	for curr != nil {
		switch {
		case key < curr.kv.Key:
			curr = curr.left
		case curr.kv.Key < key:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// Insert adds the pair only when the key is not already present. An
// existing value is left untouched.
func (d *Dictionary[K, V]) Insert(key K, value V) (added bool) {
	return d.InsertPair(Pair[K, V]{Key: key, Value: value})
}

func (d *Dictionary[K, V]) InsertPair(p Pair[K, V]) (added bool) {
	return d.insertUnique(&d.root, p)
}

func (d *Dictionary[K, V]) insertUnique(t **node[K, V], p Pair[K, V]) bool {
	curr := *t
	if curr == nil {
		*t = &node[K, V]{kv: p}
		d.n++
		return true
	}

	if p.Key < curr.kv.Key {
		return d.insertUnique(&curr.left, p)
	}
	if curr.kv.Key < p.Key {
		return d.insertUnique(&curr.right, p)
	}

	return false
}

// Erase removes the entry for key and reports whether it was present.
// A node with two children is replaced by its in-order successor.
func (d *Dictionary[K, V]) Erase(key K) bool {
	return d.erase(&d.root, key)
}

func (d *Dictionary[K, V]) erase(t **node[K, V], key K) bool {
	curr := *t
	if curr == nil {
		return false
	}

	if key < curr.kv.Key {
		return d.erase(&curr.left, key)
	}
	if curr.kv.Key < key {
		return d.erase(&curr.right, key)
	}

	if curr.left == nil {
		*t = curr.right
		d.n--
		return true
	}
	if curr.right == nil {
		*t = curr.left
		d.n--
		return true
	}

	// two children: copy the successor pair, then erase the successor
	// from the right subtree; the count drops in that recursive erase
	s := minNode(curr.right)
	curr.kv = s.kv
	return d.erase(&curr.right, s.kv.Key)
}

func minNode[K constraints.Ordered, V any](t *node[K, V]) *node[K, V] {
	for t.left != nil {
		t = t.left
	}
	return t
}

func maxNode[K constraints.Ordered, V any](t *node[K, V]) *node[K, V] {
	for t.right != nil {
		t = t.right
	}
	return t
}

// Min returns the pair with the smallest key.
func (d *Dictionary[K, V]) Min() (Pair[K, V], bool) {
	if d.root == nil {
		return zero[Pair[K, V]](), false
	}

	return minNode(d.root).kv, true
}

// Max returns the pair with the largest key.
func (d *Dictionary[K, V]) Max() (Pair[K, V], bool) {
	if d.root == nil {
		return zero[Pair[K, V]](), false
	}

	return maxNode(d.root).kv, true
}

// Clear releases every node and resets the cached key and value
// sequences. The tree is drained through a queue, not recursion, so a
// degenerate chain cannot grow the stack. Child links are severed so a
// retained node reference does not keep the rest of the tree alive.
func (d *Dictionary[K, V]) Clear() {
	if d.root != nil {
		q := dll.New[*node[K, V]]()
		q.PushTail(dll.NewElement(d.root))
		for el := q.Head(); el != nil; el = q.Head() {
			t := el.Value()
			if t.left != nil {
				q.PushTail(dll.NewElement(t.left))
			}
			if t.right != nil {
				q.PushTail(dll.NewElement(t.right))
			}
			t.left, t.right = nil, nil
			q.Remove(el)
		}
	}

	d.root = nil
	d.n = 0
	d.ks = nil
	d.vs = nil
}

// Clone returns a deep, shape-preserving copy that shares no nodes
// with the receiver.
func (d *Dictionary[K, V]) Clone() *Dictionary[K, V] {
	return &Dictionary[K, V]{root: cloneNode(d.root), n: d.n}
}

func cloneNode[K constraints.Ordered, V any](t *node[K, V]) *node[K, V] {
	if t == nil {
		return nil
	}

	return &node[K, V]{
		kv:    t.kv,
		left:  cloneNode(t.left),
		right: cloneNode(t.right),
	}
}

func zero[T any]() T {
	var z T
	return z
}
