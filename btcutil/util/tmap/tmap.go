package tmap

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkt-cash/sidechaind/btcutil/er"
)

// Map is a tree-backed map, it is kept in order by a custom comparator on
// the keys. This allows you to:
// 1. Decide what constitutes equality
// 2. Use any key type that you like
// 3. Iterate over the entries in key order and find nearest neighbours
type Map[K, V any] struct {
	tm   *redblacktree.Tree
	comp func(a, b *K) int
}

// New creates a new tmap with the given comparator function, the comparator is used to
// identify duplicate keys and to order the map for ForEach, Floor and Ceiling.
func New[K, V any](comp func(a, b *K) int) *Map[K, V] {
	return &Map[K, V]{
		tm: redblacktree.NewWith(func(a interface{}, b interface{}) int {
			return comp((a).(*K), (b).(*K))
		}),
		comp: comp,
	}
}

// ForEach iterates over the entries in the tmap in the order defined by the comparator.
// It calls the function f with the key/value pairs. If the function returns an error
// then it stops before completing and returns that error. If the error is er.LoopBreak
// then it stops returning nil.
func ForEach[K, V any](s *Map[K, V], f func(k *K, v *V) er.R) er.R {
	it := s.tm.Iterator()
	for it.Next() {
		if err := f(it.Key().(*K), it.Value().(*V)); err != nil {
			if er.IsLoopBreak(err) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Insert adds a new key/value to the tmap. If it happens that there is an old
// entry which has a matching key, the old entry key and value are returned.
func Insert[K, V any](s *Map[K, V], k *K, v *V) (*K, *V) {
	if n, ok := s.tm.Ceiling(k); ok && s.comp(k, n.Key.(*K)) == 0 {
		oldK := n.Key.(*K)
		oldV := n.Value.(*V)
		s.tm.Remove(oldK)
		s.tm.Put(k, v)
		return oldK, oldV
	}
	s.tm.Put(k, v)
	return nil, nil
}

// GetEntry provides a key and value of an entry, based on an example of the key
// the returned key is a pointer to the actual key, while the input key k is
// something which is considered by the comparator to match the key.
func GetEntry[K, V any](s *Map[K, V], k *K) (*K, *V) {
	if n, ok := s.tm.Ceiling(k); ok && s.comp(k, n.Key.(*K)) == 0 {
		return n.Key.(*K), n.Value.(*V)
	}
	return nil, nil
}

// Floor returns the entry with the greatest key which is less than or equal to k,
// or nil, nil if every key is greater than k.
func Floor[K, V any](s *Map[K, V], k *K) (*K, *V) {
	if n, ok := s.tm.Floor(k); ok {
		return n.Key.(*K), n.Value.(*V)
	}
	return nil, nil
}

// Ceiling returns the entry with the smallest key which is greater than or equal
// to k, or nil, nil if every key is less than k.
func Ceiling[K, V any](s *Map[K, V], k *K) (*K, *V) {
	if n, ok := s.tm.Ceiling(k); ok {
		return n.Key.(*K), n.Value.(*V)
	}
	return nil, nil
}

// Max returns the entry with the greatest key, or nil, nil if the tmap is empty.
func Max[K, V any](s *Map[K, V]) (*K, *V) {
	if n := s.tm.Right(); n != nil {
		return n.Key.(*K), n.Value.(*V)
	}
	return nil, nil
}

// Len gives the size of the tmap, number of entries
func Len[K, V any](s *Map[K, V]) int {
	return s.tm.Size()
}

// Clear empties the tmap
func Clear[K, V any](s *Map[K, V]) {
	s.tm.Clear()
}
