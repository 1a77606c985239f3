package intervalmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// uint32ByteSize is the number of bytes in a uint32.
const uint32ByteSize = 4

// ErrEmptyBlock is returned when LZ4 produces an empty compressed block.
var ErrEmptyBlock = errors.New("empty compressed block")

// compressUInt32Column compresses one column of uint32-s with LZ4 block
// compression.
func compressUInt32Column(data []uint32) ([]byte, error) {
	buf := new(bytes.Buffer)

	writeErr := binary.Write(buf, binary.LittleEndian, data)
	if writeErr != nil {
		return nil, fmt.Errorf("serialize column: %w", writeErr)
	}

	compressed := make([]byte, lz4.CompressBlockBound(buf.Len()))

	written, err := lz4.CompressBlock(buf.Bytes(), compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("compress column: %w", err)
	}

	if written == 0 {
		return nil, ErrEmptyBlock
	}

	return compressed[:written], nil
}

// decompressUInt32Column decompresses a column previously compressed with
// compressUInt32Column into `result`, which must be preallocated to the
// original length.
func decompressUInt32Column(data []byte, result []uint32) error {
	decompressed := make([]byte, len(result)*uint32ByteSize)

	_, err := lz4.UncompressBlock(data, decompressed)
	if err != nil {
		return fmt.Errorf("decompress column: %w", err)
	}

	readErr := binary.Read(bytes.NewReader(decompressed), binary.LittleEndian, result)
	if readErr != nil {
		return fmt.Errorf("deserialize column: %w", readErr)
	}

	return nil
}

// deltaEncodeUInt32Column replaces each element with the difference from its
// predecessor, in place. The first element is left unchanged. Sorted
// breakpoint keys become small, repetitive values that compress much better
// with LZ4.
func deltaEncodeUInt32Column(data []uint32) {
	for i := len(data) - 1; i > 0; i-- {
		data[i] -= data[i-1]
	}
}

// deltaDecodeUInt32Column performs a prefix-sum to restore original values
// from deltas produced by deltaEncodeUInt32Column. The operation is
// performed in place.
func deltaDecodeUInt32Column(data []uint32) {
	for i := 1; i < len(data); i++ {
		data[i] += data[i-1]
	}
}
