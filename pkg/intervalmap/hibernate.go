package intervalmap

import "fmt"

// Hibernated is the compressed dormant form of a Map[uint32, uint32]. The
// breakpoints are flattened into a key column and a value column, the key
// column is delta-encoded, and both columns are LZ4-compressed. A dormant
// map cannot be queried or assigned to; Boot() restores a live Map.
//
// Hibernation is an in-memory state only, not a wire or storage format.
type Hibernated struct {
	defaultValue uint32
	keys         []byte
	values       []byte
	count        int
}

// Hibernate compresses the map into its dormant form. The map itself is
// left untouched; callers wishing to reclaim its memory drop their
// reference to it.
func Hibernate(m *Map[uint32, uint32]) (*Hibernated, error) {
	count := m.Len()
	if count == 0 {
		return &Hibernated{defaultValue: m.defaultValue, keys: nil, values: nil, count: 0}, nil
	}

	keys := make([]uint32, 0, count)
	values := make([]uint32, 0, count)

	m.ForEach(func(key, value uint32) {
		keys = append(keys, key)
		values = append(values, value)
	})

	// Keys are sorted; deltas compress far better than absolute values.
	deltaEncodeUInt32Column(keys)

	compressedKeys, err := compressUInt32Column(keys)
	if err != nil {
		return nil, fmt.Errorf("hibernate keys: %w", err)
	}

	compressedValues, err := compressUInt32Column(values)
	if err != nil {
		return nil, fmt.Errorf("hibernate values: %w", err)
	}

	return &Hibernated{
		defaultValue: m.defaultValue,
		keys:         compressedKeys,
		values:       compressedValues,
		count:        count,
	}, nil
}

// Len returns the number of breakpoints held in the dormant form.
func (h *Hibernated) Len() int {
	return h.count
}

// CompressedSize returns the total size of the compressed columns in bytes.
func (h *Hibernated) CompressedSize() int {
	return len(h.keys) + len(h.values)
}

// Boot decompresses the dormant form back into a live Map.
func (h *Hibernated) Boot() (*Map[uint32, uint32], error) {
	m := New[uint32, uint32](h.defaultValue)
	if h.count == 0 {
		return m, nil
	}

	keys := make([]uint32, h.count)

	err := decompressUInt32Column(h.keys, keys)
	if err != nil {
		return nil, fmt.Errorf("boot keys: %w", err)
	}

	deltaDecodeUInt32Column(keys)

	values := make([]uint32, h.count)

	err = decompressUInt32Column(h.values, values)
	if err != nil {
		return nil, fmt.Errorf("boot values: %w", err)
	}

	for i := 0; i < h.count; i++ {
		m.tree.Set(breakpoint[uint32, uint32]{key: keys[i], value: values[i]})
	}

	return m, nil
}
