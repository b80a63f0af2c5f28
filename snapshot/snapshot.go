package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/colstore/codec"
	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/internal/bitmap"
	"github.com/hupe1980/colstore/internal/conv"
	"github.com/hupe1980/colstore/model"
)

const (
	magic = "CSNP"
	// Version is the current snapshot format version.
	Version = 1
)

// Header describes the storage captured in a snapshot.
type Header struct {
	Version     int    `json:"version"`
	Type        string `json:"type"`
	Capacity    int    `json:"capacity"`
	Nulls       uint64 `json:"nulls"`
	Compression string `json:"compression"`
}

// Encode captures s into a self-describing byte stream.
//
// The caller must not mutate s during the call.
func Encode(s column.Storage, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	return encode(s, &o)
}

// Decode rebuilds a storage from a stream produced by Encode.
func Decode(data []byte, opts ...Option) (column.Storage, error) {
	o := applyOptions(opts)
	return decode(data, &o)
}

// EncodeAll encodes several storages in parallel. The result is index-aligned
// with storages. Every storage must be distinct and unmodified during the call.
func EncodeAll(ctx context.Context, storages []column.Storage, opts ...Option) ([][]byte, error) {
	o := applyOptions(opts)
	out := make([][]byte, len(storages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, s := range storages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := encode(s, &o)
			if err != nil {
				return fmt.Errorf("storage %d: %w", i, err)
			}
			out[i] = b
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeAll decodes several snapshots in parallel. The result is index-aligned with data.
func DecodeAll(ctx context.Context, data [][]byte, opts ...Option) ([]column.Storage, error) {
	o := applyOptions(opts)
	out := make([]column.Storage, len(data))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, d := range data {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := decode(d, &o)
			if err != nil {
				return fmt.Errorf("snapshot %d: %w", i, err)
			}
			out[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadHeader returns the header of a snapshot without decoding its body.
func ReadHeader(data []byte) (Header, error) {
	h, _, err := parseHeader(data)
	return h, err
}

// Stream layout:
//
//	magic "CSNP" | u8 codec name length | codec name |
//	u32 header length | header | compressed body block
func encode(s column.Storage, o *options) ([]byte, error) {
	nulls := s.Nulls()

	body, err := encodeBody(s, nulls)
	if err != nil {
		return nil, err
	}
	block, err := compressBlock(body, o.compression)
	if err != nil {
		return nil, err
	}

	h := Header{
		Version:     Version,
		Type:        s.Type().String(),
		Capacity:    s.Cap(),
		Nulls:       nulls.GetCardinality(),
		Compression: o.compression.String(),
	}
	name := o.codec.Name()
	if len(name) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: codec name %q too long", ErrUnknownCodec, name)
	}

	out := make([]byte, 0, len(magic)+1+len(name)+4+128+len(block))
	out = append(out, magic...)
	out = append(out, byte(len(name)))
	out = append(out, name...)

	// The header length is patched in once the header is encoded.
	lenAt := len(out)
	out = append(out, 0, 0, 0, 0)
	out, err = codec.Append(o.codec, out, h)
	if err != nil {
		return nil, fmt.Errorf("marshal header with %s: %w", name, err)
	}
	hdrLen, err := conv.IntToUint32(len(out) - lenAt - 4)
	if err != nil {
		return nil, fmt.Errorf("header too large: %w", err)
	}
	binary.LittleEndian.PutUint32(out[lenAt:], hdrLen)
	out = append(out, block...)

	o.logger.Debug("snapshot encoded",
		"type", h.Type,
		"rows", h.Capacity,
		"nulls", h.Nulls,
		"compression", h.Compression,
		"bytes", len(out),
	)
	return out, nil
}

// Body layout: uvarint bitmap length | roaring null set |
// per row: uvarint text length | ToText cell (empty for nulls)
func encodeBody(s column.Storage, nulls *roaring.Bitmap) ([]byte, error) {
	var bm bytes.Buffer
	if _, err := nulls.WriteTo(&bm); err != nil {
		return nil, fmt.Errorf("write null bitmap: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(binary.MaxVarintLen64 + bm.Len() + s.Cap()*2)

	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], uint64(bm.Len()))
	buf.Write(scratch[:n])
	buf.Write(bm.Bytes())

	for row := 0; row < s.Cap(); row++ {
		var text string
		if !s.IsNull(row) {
			var err error
			if text, err = s.ToText(s.Get(row)); err != nil {
				return nil, fmt.Errorf("encode row %d: %w", row, err)
			}
		}
		n := binary.PutUvarint(scratch[:], uint64(len(text)))
		buf.Write(scratch[:n])
		buf.WriteString(text)
	}
	return buf.Bytes(), nil
}

func parseHeader(data []byte) (Header, []byte, error) {
	var h Header
	if len(data) < len(magic)+1 || string(data[:len(magic)]) != magic {
		return h, nil, fmt.Errorf("%w: bad magic", ErrInvalidSnapshot)
	}
	off := len(magic)

	nameLen := int(data[off])
	off++
	if len(data) < off+nameLen+4 {
		return h, nil, fmt.Errorf("%w: truncated preamble", ErrInvalidSnapshot)
	}
	name := string(data[off : off+nameLen])
	off += nameLen

	c, ok := codec.ByName(name)
	if !ok {
		return h, nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	hdrLen := binary.LittleEndian.Uint32(data[off:])
	off += 4
	if uint64(len(data)-off) < uint64(hdrLen) {
		return h, nil, fmt.Errorf("%w: truncated header", ErrInvalidSnapshot)
	}
	if err := c.Unmarshal(data[off:off+int(hdrLen)], &h); err != nil {
		return h, nil, fmt.Errorf("%w: header: %w", ErrInvalidSnapshot, err)
	}
	off += int(hdrLen)

	if h.Version != Version {
		return h, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, h.Version)
	}
	return h, data[off:], nil
}

func decode(data []byte, o *options) (column.Storage, error) {
	h, block, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	typ, err := model.ParseType(h.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	comp, err := ParseCompression(h.Compression)
	if err != nil {
		return nil, err
	}
	raw, err := decompressBlock(block, comp)
	if err != nil {
		return nil, fmt.Errorf("%w: body: %w", ErrInvalidSnapshot, err)
	}
	// Every row takes at least one length byte.
	if h.Capacity < 0 || h.Capacity > len(raw) {
		return nil, fmt.Errorf("%w: capacity %d does not match body", ErrInvalidSnapshot, h.Capacity)
	}

	s, err := column.New(typ, o.columnOptions...)
	if err != nil {
		return nil, err
	}
	if err := s.Grow(h.Capacity); err != nil {
		return nil, err
	}

	bmLen, off, err := readLength(raw, 0)
	if err != nil {
		return nil, err
	}
	nulls, err := bitmap.ReadFrom(bytes.NewReader(raw[off:off+bmLen]), h.Capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if uint64(nulls.Count()) != h.Nulls {
		return nil, fmt.Errorf("%w: header reports %d nulls, bitmap holds %d", ErrInvalidSnapshot, h.Nulls, nulls.Count())
	}
	off += bmLen

	for row := 0; row < h.Capacity; row++ {
		var n int
		if n, off, err = readLength(raw, off); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		text := string(raw[off : off+n])
		off += n

		if nulls.IsNull(row) {
			if err := s.Set(row, model.Null()); err != nil {
				return nil, err
			}
			continue
		}
		v, err := s.FromText(text)
		if err != nil {
			return nil, fmt.Errorf("decode row %d: %w", row, err)
		}
		if err := s.Set(row, v); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", row, err)
		}
	}
	if off != len(raw) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidSnapshot, len(raw)-off)
	}

	o.logger.Debug("snapshot decoded",
		"type", h.Type,
		"rows", h.Capacity,
		"nulls", h.Nulls,
		"compression", h.Compression,
	)
	return s, nil
}

// readLength reads a uvarint length at off and checks that many bytes follow.
func readLength(raw []byte, off int) (n, next int, err error) {
	u, k := binary.Uvarint(raw[off:])
	if k <= 0 {
		return 0, 0, fmt.Errorf("%w: bad length prefix at offset %d", ErrInvalidSnapshot, off)
	}
	next = off + k
	if u > uint64(len(raw)-next) {
		return 0, 0, fmt.Errorf("%w: length %d exceeds body at offset %d", ErrInvalidSnapshot, u, off)
	}
	return int(u), next, nil
}
