package intervalmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompressDecompressColumn verifies the LZ4 column round trip.
func TestCompressDecompressColumn(t *testing.T) {
	t.Parallel()

	data := make([]uint32, 1000)
	for idx := range data {
		data[idx] = 7
	}

	packed, err := compressUInt32Column(data)
	require.NoError(t, err)
	assert.NotEmpty(t, packed)
	assert.Less(t, len(packed), len(data)*uint32ByteSize)

	for idx := range data {
		data[idx] = 0
	}

	require.NoError(t, decompressUInt32Column(packed, data))

	for idx := range data {
		assert.Equal(t, uint32(7), data[idx], "value at index %d should be 7", idx)
	}
}

// TestDeltaEncodeDecodeColumn verifies the delta transform round trip on a
// sorted sequence.
func TestDeltaEncodeDecodeColumn(t *testing.T) {
	t.Parallel()

	data := []uint32{3, 10, 11, 40, 1000}
	original := []uint32{3, 10, 11, 40, 1000}

	deltaEncodeUInt32Column(data)
	assert.Equal(t, []uint32{3, 7, 1, 29, 960}, data)

	deltaDecodeUInt32Column(data)
	assert.Equal(t, original, data)
}

// TestDeltaEncodeShortColumns verifies the transform on empty and
// single-element columns.
func TestDeltaEncodeShortColumns(t *testing.T) {
	t.Parallel()

	deltaEncodeUInt32Column(nil)
	deltaDecodeUInt32Column(nil)

	single := []uint32{42}
	deltaEncodeUInt32Column(single)
	assert.Equal(t, []uint32{42}, single)
}
