// Package intervalmap provides an ordered associative container which maps
// every key in a totally-ordered key space to a value, storing only the
// breakpoints at which the value changes instead of one entry per key.
// Point lookup resolves in O(log N) and Assign rewrites a half-open range
// [begin, end) in O(log N + M), where M is the number of breakpoints the
// range supersedes.
//
// The container is kept canonical at all times: no two adjacent breakpoints
// carry equal values and no stored breakpoint is redundant, so the breakpoint
// count is always the minimum needed to represent the visible value sequence.
//
// A Map is not safe for concurrent mutation. Assign performs multiple
// dependent reads and writes against the breakpoint store; callers sharing a
// Map across goroutines must serialize access with their own lock.
package intervalmap

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/tidwall/btree"
)

// breakpoint is a stored (key, value) pair. The entry means "the value in
// effect becomes value starting at key and remains so until the next larger
// stored key, or becomes the map's default value if there is none".
type breakpoint[K cmp.Ordered, V comparable] struct {
	key   K
	value V
}

// Map is a sparse interval map over a totally-ordered key space.
//
// Map is created with a default value which is in effect for every key
// strictly less than the smallest stored breakpoint, and in every gap the
// canonical form leaves between explicitly assigned runs. Users are not
// supposed to create Map-s directly; instead, they should call New().
type Map[K cmp.Ordered, V comparable] struct {
	defaultValue V
	tree         *btree.BTreeG[breakpoint[K, V]]
}

// New initializes a new instance of Map with the given default value.
func New[K cmp.Ordered, V comparable](defaultValue V) *Map[K, V] {
	less := func(a, b breakpoint[K, V]) bool {
		return a.key < b.key
	}

	return &Map[K, V]{
		defaultValue: defaultValue,
		tree:         btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
	}
}

// DefaultValue returns the value in effect outside all explicitly assigned
// runs.
func (m *Map[K, V]) DefaultValue() V {
	return m.defaultValue
}

// Len returns the number of stored breakpoints.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get returns the value in effect at key. The lookup is total: every key of
// the key space resolves, including the type's minimum and maximum values.
//
// If the map is empty, or key precedes the smallest stored breakpoint, the
// default value is returned. An exact breakpoint match returns that
// breakpoint's value; any other key returns the value of the greatest stored
// key below it.
func (m *Map[K, V]) Get(key K) V {
	value := m.defaultValue

	m.tree.Descend(breakpoint[K, V]{key: key}, func(item breakpoint[K, V]) bool {
		value = item.value

		return false
	})

	return value
}

// MinKey returns the smallest stored breakpoint key. The second return value
// is false if the map stores no breakpoints.
func (m *Map[K, V]) MinKey() (K, bool) {
	item, ok := m.tree.Min()

	return item.key, ok
}

// MaxKey returns the largest stored breakpoint key. The second return value
// is false if the map stores no breakpoints.
func (m *Map[K, V]) MaxKey() (K, bool) {
	item, ok := m.tree.Max()

	return item.key, ok
}

// Clone copies the map. The backing tree is copied lazily (copy-on-write),
// so cloning is cheap and the clones may diverge independently.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		defaultValue: m.defaultValue,
		tree:         m.tree.Copy(),
	}
}

// Assign reassigns the half-open range [begin, end) to value, keeping the
// map canonical. It reports whether any change occurred.
//
// The call is rejected, with no mutation, when begin >= end, and when the
// assignment would violate canonical form: the value already in effect
// immediately before begin equals value, or the value in effect exactly at
// end equals value. The rejection rule is deliberately this narrow pairwise
// test rather than a full range-equivalence check; an assignment whose value
// matches either neighboring run is refused wholesale.
//
// Breakpoints stored inside [begin, end) are superseded and removed. When
// the run started by the last of them extends past end, that run survives:
// it is re-anchored with a fresh breakpoint at end carrying its value. A
// breakpoint already stored exactly at end is left untouched. Otherwise the
// new run is terminated at end with the default value.
//
// The code inside this function is the most important one throughout the
// package. It is extensively covered with tests. If you find a bug, please
// add the corresponding case in intervalmap_test.go.
func (m *Map[K, V]) Assign(begin, end K, value V) bool {
	if begin >= end {
		return false
	}

	if m.tree.Len() == 0 && value != m.defaultValue {
		m.tree.Set(breakpoint[K, V]{key: begin, value: value})
		m.tree.Set(breakpoint[K, V]{key: end, value: m.defaultValue})

		return true
	}

	// Consecutive runs must stay heterogeneous (canonical form).
	if value == m.prevValue(begin) || value == m.Get(end) {
		return false
	}

	overlapped := m.keysInRange(begin, end)
	endSet := false

	if len(overlapped) > 0 {
		if _, exists := m.tree.Get(breakpoint[K, V]{key: end}); !exists {
			// Only the run started by the last overlapped breakpoint can
			// continue past end.
			last := overlapped[len(overlapped)-1]
			if m.keyExceeds(last.key, end) {
				m.tree.Set(breakpoint[K, V]{key: end, value: last.value})

				endSet = true
			}
		}

		for _, item := range overlapped {
			m.tree.Delete(breakpoint[K, V]{key: item.key})
		}
	}

	m.tree.Set(breakpoint[K, V]{key: begin, value: value})

	if !endSet {
		if _, exists := m.tree.Get(breakpoint[K, V]{key: end}); !exists {
			m.tree.Set(breakpoint[K, V]{key: end, value: m.defaultValue})
		}
	}

	return true
}

// ForEach visits each stored breakpoint in ascending key order. The view is
// for diagnostics and testing; its exact content is not a stability
// contract.
func (m *Map[K, V]) ForEach(callback func(key K, value V)) {
	m.tree.Scan(func(item breakpoint[K, V]) bool {
		callback(item.key, item.value)

		return true
	})
}

// Dump formats the stored breakpoints into a string. Useful for error
// messages, panic()-s and debugging.
func (m *Map[K, V]) Dump() string {
	buffer := strings.Builder{}

	m.ForEach(func(key K, value V) {
		fmt.Fprintf(&buffer, "%v %v\n", key, value)
	})

	return buffer.String()
}

// Validate checks the canonical-form integrity of the map.
// The checks are as follows:
//
// 1. Breakpoint keys must monotonically increase and never duplicate.
//
// 2. No two consecutive breakpoints may carry equal values, and the first
// breakpoint's value must differ from the default value. Either violation
// means a stored breakpoint is redundant.
func (m *Map[K, V]) Validate() {
	previous := m.defaultValue
	first := true

	var previousKey K

	m.tree.Scan(func(item breakpoint[K, V]) bool {
		if !first && item.key <= previousKey {
			panic(fmt.Sprintf("breakpoint keys must increase: %v after %v", item.key, previousKey))
		}

		if item.value == previous {
			panic(fmt.Sprintf("redundant breakpoint at %v: value %v equals its predecessor", item.key, item.value))
		}

		previousKey = item.key
		previous = item.value
		first = false

		return true
	})
}

// nextKey returns the smallest stored key strictly greater than key.
func (m *Map[K, V]) nextKey(key K) (K, bool) {
	var (
		next  K
		found bool
	)

	m.tree.Ascend(breakpoint[K, V]{key: key}, func(item breakpoint[K, V]) bool {
		if item.key == key {
			return true
		}

		next = item.key
		found = true

		return false
	})

	return next, found
}

// prevKey returns the largest stored key strictly less than key.
func (m *Map[K, V]) prevKey(key K) (K, bool) {
	var (
		prev  K
		found bool
	)

	m.tree.Descend(breakpoint[K, V]{key: key}, func(item breakpoint[K, V]) bool {
		if item.key == key {
			return true
		}

		prev = item.key
		found = true

		return false
	})

	return prev, found
}

// nextValue returns the value stored at the next key after key, or the
// default value if there is no next key.
func (m *Map[K, V]) nextValue(key K) V {
	next, ok := m.nextKey(key)
	if !ok {
		return m.defaultValue
	}

	item, _ := m.tree.Get(breakpoint[K, V]{key: next})

	return item.value
}

// prevValue returns the value stored at the previous key before key, or the
// default value if there is no previous key.
func (m *Map[K, V]) prevValue(key K) V {
	prev, ok := m.prevKey(key)
	if !ok {
		return m.defaultValue
	}

	item, _ := m.tree.Get(breakpoint[K, V]{key: prev})

	return item.value
}

// keysInRange returns the stored breakpoints with begin <= key < end, in
// ascending key order.
func (m *Map[K, V]) keysInRange(begin, end K) []breakpoint[K, V] {
	var items []breakpoint[K, V]

	m.tree.Ascend(breakpoint[K, V]{key: begin}, func(item breakpoint[K, V]) bool {
		if item.key >= end {
			return false
		}

		items = append(items, item)

		return true
	})

	return items
}

// keyExceeds reports whether the run started at key extends strictly past
// threshold: the next stored key is greater than threshold, or there is no
// next key at all, in which case the run is open-ended and always exceeds.
func (m *Map[K, V]) keyExceeds(key, threshold K) bool {
	next, ok := m.nextKey(key)
	if !ok {
		return true
	}

	return next > threshold
}
