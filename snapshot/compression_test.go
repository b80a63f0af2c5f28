package snapshot

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
)

func TestCompressBlock_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("hello world! "), 1000)

	for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			compressed, err := compressBlock(data, c)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(data)/2)

			decompressed, err := decompressBlock(compressed, c)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestDecompressBlock_RejectsImpossibleSize(t *testing.T) {
	block := make([]byte, blockHeaderSize, blockHeaderSize+4)
	binary.LittleEndian.PutUint32(block[0:], math.MaxUint32)
	binary.LittleEndian.PutUint32(block[4:], 4)
	block = append(block, 0x28, 0xb5, 0x2f, 0xfd)

	for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			_, err := decompressBlock(block, c)
			assert.ErrorContains(t, err, "impossible")
		})
	}
}

func TestDecompressBlock_ZSTDSizeMismatch(t *testing.T) {
	data := bytes.Repeat([]byte("abc"), 500)

	compressed, err := compressBlock(data, CompressionZSTD)
	require.NoError(t, err)
	require.NotZero(t, binary.LittleEndian.Uint32(compressed[4:]), "expected a compressed block")

	for _, size := range []uint32{uint32(len(data)) - 1, uint32(len(data)) + 1} {
		tampered := bytes.Clone(compressed)
		binary.LittleEndian.PutUint32(tampered[0:], size)

		_, err := decompressBlock(tampered, CompressionZSTD)
		assert.Error(t, err, "declared %d", size)
	}
}

func TestDecodeRejectsOversizedBody(t *testing.T) {
	s, err := column.New(model.TypeString, column.WithCapacity(200))
	require.NoError(t, err)
	for row := 0; row < s.Cap(); row++ {
		require.NoError(t, s.Set(row, model.String("repeated cell text")))
	}

	data, err := Encode(s, WithCompression(CompressionLZ4))
	require.NoError(t, err)

	_, block, err := parseHeader(data)
	require.NoError(t, err)
	require.NotZero(t, binary.LittleEndian.Uint32(block[4:]), "expected a compressed block")

	binary.LittleEndian.PutUint32(data[len(data)-len(block):], math.MaxUint32)
	_, err = Decode(data)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}
