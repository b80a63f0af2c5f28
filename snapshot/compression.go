package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/colstore/internal/conv"
)

// Compression defines the algorithm applied to a snapshot body.
type Compression uint8

const (
	// CompressionNone stores the body as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the name stored in snapshot headers.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCompression resolves a compression by its header name.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// ZSTD encoder/decoder pools
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedBlock))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// CompressedSize == 0 means the data is stored uncompressed.
const blockHeaderSize = 8

// Upper bounds on output per input byte, checked before a declared size is
// allocated. A zstd RLE block yields 128 KiB from 4 bytes.
const (
	lz4MaxExpansion  = 255
	zstdMaxExpansion = 1 << 16
)

// maxDecodedBlock is the largest size the u32 field can declare.
const maxDecodedBlock = math.MaxUint32

// compressBlock frames data, compressing it when that saves at least 10%.
func compressBlock(data []byte, c Compression) ([]byte, error) {
	size, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("snapshot body too large: %w", err)
	}

	var compressed []byte
	switch c {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZSTD:
		compressed = compressBlockZSTD(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], size)
		binary.LittleEndian.PutUint32(result[4:], 0)
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], size)
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

func compressBlockZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

// decompressBlock reverses compressBlock.
func decompressBlock(data []byte, c Compression) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, errors.New("block too small for header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])
	payload := data[blockHeaderSize:]

	if compressedSize == 0 {
		if uint64(len(payload)) != uint64(uncompressedSize) {
			return nil, errors.New("block data size mismatch")
		}
		return payload, nil
	}
	if uint64(len(payload)) != uint64(compressedSize) {
		return nil, errors.New("compressed block size mismatch")
	}

	switch c {
	case CompressionLZ4:
		if uint64(uncompressedSize) > (uint64(len(payload))+1)*lz4MaxExpansion {
			return nil, fmt.Errorf("declared size %d impossible for %d byte lz4 block", uncompressedSize, len(payload))
		}
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		if uint64(uncompressedSize) > (uint64(len(payload))+1)*zstdMaxExpansion {
			return nil, fmt.Errorf("declared size %d impossible for %d byte zstd block", uncompressedSize, len(payload))
		}
		var fh zstd.Header
		if err := fh.Decode(payload); err != nil {
			return nil, err
		}
		if fh.HasFCS && fh.FrameContentSize != uint64(uncompressedSize) {
			return nil, fmt.Errorf("zstd frame declares %d bytes, block %d", fh.FrameContentSize, uncompressedSize)
		}

		decoded, err := dec.DecodeAll(payload, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, err
		}
		if uint64(len(decoded)) != uint64(uncompressedSize) {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: compressed block with compression %s", ErrUnknownCompression, c)
	}
}
