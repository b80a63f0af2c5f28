package snapshot

import "errors"

var (
	// ErrInvalidSnapshot is returned when a byte stream is not a well-formed snapshot.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrUnknownCodec is returned when a snapshot names a codec that is not built in.
	ErrUnknownCodec = errors.New("unknown snapshot codec")
	// ErrUnknownCompression is returned for an unsupported compression.
	ErrUnknownCompression = errors.New("unknown snapshot compression")
)
