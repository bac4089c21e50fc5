package ibw

import (
	"errors"

	"github.com/robert-malhotra/go-ibw/internal/wave"
)

// Decode failures surfaced by this package. The wave-structure kinds are
// the internal parser's sentinels re-exported so errors.Is works across
// the package boundary; the metadata kinds belong to this layer.
var (
	// ErrUnsupportedVersion means the leading version word is not a
	// recognized binary wave version in either byte order.
	ErrUnsupportedVersion = wave.ErrUnsupportedVersion

	// ErrChecksum means the header's 16-bit additive checksum failed.
	ErrChecksum = wave.ErrChecksum

	// ErrTruncated means a declared section boundary runs past the end
	// of the buffer.
	ErrTruncated = wave.ErrTruncated

	// ErrUnsupportedType means the wave holds complex or text data.
	ErrUnsupportedType = wave.ErrUnsupportedType

	// ErrInvalidWave means the header is self-inconsistent or the wave
	// is not a 2D scan image.
	ErrInvalidWave = wave.ErrInvalidWave

	// ErrMissingMetadata means a note key required for pixel scaling is
	// absent or non-numeric.
	ErrMissingMetadata = errors.New("missing required scan metadata")

	// ErrZeroDenominator means degenerate scan parameters produced a
	// zero denominator in the scaling computation.
	ErrZeroDenominator = errors.New("zero denominator computing pixel scaling")

	// ErrSchemaMismatch means the assembled metadata value count does
	// not match the standardized schema length.
	ErrSchemaMismatch = errors.New("metadata values do not match schema length")
)
