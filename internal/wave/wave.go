// Package wave handles parsing of Igor binary wave (.ibw) containers.
//
// A binary wave file is a fixed-layout bin header, a version-dependent
// wave header, the sample array, and a set of variable-length trailing
// sections (formula, note text, units, dimension labels). The bin header
// version selects the layout; versions 1-3 share the 110-byte WaveHeader2
// structure while version 5 uses the 320-byte WaveHeader5.
package wave

import (
	stdbin "encoding/binary"
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-ibw/internal/binary"
)

// Errors
var (
	ErrUnsupportedVersion = errors.New("unsupported binary wave version")
	ErrChecksum           = errors.New("binary wave header checksum mismatch")
	ErrTruncated          = errors.New("truncated binary wave")
	ErrUnsupportedType    = errors.New("unsupported wave data type")
	ErrInvalidWave        = errors.New("invalid wave structure")
)

// Numeric type codes from the wave header's type field. Complex and text
// waves are not supported.
const (
	TypeComplex  = 0x01
	TypeFloat32  = 0x02
	TypeFloat64  = 0x04
	TypeInt8     = 0x08
	TypeInt16    = 0x10
	TypeInt32    = 0x20
	TypeUnsigned = 0x40
)

// MaxDims is the maximum number of wave dimensions (fixed by the format).
const MaxDims = 4

// LabelSlotSize is the width of one dimension-label slot in bytes.
const LabelSlotSize = 32

// Header holds the decoded bin+wave header fields along with the derived
// section table. All offsets and sizes are validated against the buffer
// before a Header is returned.
type Header struct {
	Version int
	Order   stdbin.ByteOrder

	Type  uint16
	Name  string
	Npnts int

	// Dims holds the non-zero dimension extents; dimension 0 varies
	// fastest in the stored sample array.
	Dims []int

	// Per-dimension scaling (delta and offset) and units.
	SFA       [MaxDims]float64
	SFB       [MaxDims]float64
	DataUnits string
	DimUnits  [MaxDims]string

	CreationDate uint32
	ModDate      uint32

	// Derived section boundaries.
	DataOffset int
	DataSize   int
	NoteOffset int
	NoteSize   int

	LabelOffsets [MaxDims]int
	LabelSizes   [MaxDims]int
}

// NumChannels returns the extent of the third dimension, or 1 for waves
// with fewer than three dimensions.
func (h *Header) NumChannels() int {
	if len(h.Dims) < 3 {
		return 1
	}
	return h.Dims[2]
}

// ItemSize returns the per-sample width in bytes for a wave type code.
func ItemSize(waveType uint16) (int, error) {
	if waveType&TypeComplex != 0 {
		return 0, fmt.Errorf("%w: complex (type 0x%02x)", ErrUnsupportedType, waveType)
	}
	switch waveType &^ TypeUnsigned {
	case TypeFloat32:
		return 4, nil
	case TypeFloat64:
		return 8, nil
	case TypeInt8:
		return 1, nil
	case TypeInt16:
		return 2, nil
	case TypeInt32:
		return 4, nil
	default:
		// Type 0 is a text wave.
		return 0, fmt.Errorf("%w: type 0x%02x", ErrUnsupportedType, waveType)
	}
}

// Wave is a fully decoded binary wave: header, samples in storage order,
// per-dimension label slots, and the raw note text.
type Wave struct {
	Header *Header

	// Data holds the samples converted to float64, dimension 0 fastest.
	Data []float64

	// Labels holds the 32-byte label slots per dimension, NUL-trimmed.
	// Slot 0 of each dimension names the dimension as a whole.
	Labels [][]string

	// Note is the raw free-text note section.
	Note []byte
}

// Read parses a complete binary wave from buf.
func Read(buf []byte) (*Wave, error) {
	h, err := ReadHeader(buf)
	if err != nil {
		return nil, err
	}

	data, err := ExtractData(buf, h)
	if err != nil {
		return nil, err
	}

	labels, err := ExtractLabels(buf, h)
	if err != nil {
		return nil, err
	}

	return &Wave{
		Header: h,
		Data:   data,
		Labels: labels,
		Note:   buf[h.NoteOffset : h.NoteOffset+h.NoteSize],
	}, nil
}

// ReadHeader detects the byte order and version, validates the header
// checksum, and parses the version-appropriate header variant. The
// returned header's section table is guaranteed to lie within buf.
func ReadHeader(buf []byte) (*Header, error) {
	order, version, err := detectVersion(buf)
	if err != nil {
		return nil, err
	}

	if err := verifyChecksum(buf, order, version); err != nil {
		return nil, err
	}

	var h *Header
	switch version {
	case 1, 2, 3:
		h, err = readV123(buf, order, version)
	case 5:
		h, err = readV5(buf, order)
	}
	if err != nil {
		return nil, err
	}

	if err := h.validate(len(buf)); err != nil {
		return nil, err
	}
	return h, nil
}

// Supported versions. Version 4 was never released by Igor.
func supportedVersion(v int16) bool {
	return v == 1 || v == 2 || v == 3 || v == 5
}

// detectVersion reads the leading version word, trying little-endian
// first and falling back to big-endian (waves written on 68k Macs).
func detectVersion(buf []byte) (stdbin.ByteOrder, int, error) {
	if len(buf) < 2 {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrTruncated, len(buf))
	}

	le := int16(stdbin.LittleEndian.Uint16(buf[:2]))
	if supportedVersion(le) {
		return stdbin.LittleEndian, int(le), nil
	}

	be := int16(stdbin.BigEndian.Uint16(buf[:2]))
	if supportedVersion(be) {
		return stdbin.BigEndian, int(be), nil
	}

	return nil, 0, fmt.Errorf("%w: version word 0x%04x", ErrUnsupportedVersion, stdbin.LittleEndian.Uint16(buf[:2]))
}

// checksummedSize returns the length of the header prefix covered by the
// 16-bit additive checksum for the given version.
func checksummedSize(version int) int {
	switch version {
	case 1:
		return binHeader1Size + waveHeader2Size
	case 2:
		return binHeader2Size + waveHeader2Size
	case 3:
		return binHeader3Size + waveHeader2Size
	default: // 5
		return binHeader5Size + waveHeader5Size
	}
}

func verifyChecksum(buf []byte, order stdbin.ByteOrder, version int) error {
	n := checksummedSize(version)
	if len(buf) < n {
		return fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncated, n, len(buf))
	}
	if !binary.VerifySum16(buf[:n], order) {
		return fmt.Errorf("%w: sum 0x%04x over %d header bytes", ErrChecksum, binary.Sum16(buf[:n], order), n)
	}
	return nil
}

// validate checks every derived section boundary against the buffer
// length. Declared sizes that overrun the buffer are a decode failure,
// never a silent truncation.
func (h *Header) validate(bufLen int) error {
	check := func(name string, off, size int) error {
		if size < 0 || off < 0 {
			return fmt.Errorf("%w: negative %s section (offset %d, size %d)", ErrInvalidWave, name, off, size)
		}
		if off+size > bufLen {
			return fmt.Errorf("%w: %s section ends at %d, buffer is %d bytes", ErrTruncated, name, off+size, bufLen)
		}
		return nil
	}

	if err := check("data", h.DataOffset, h.DataSize); err != nil {
		return err
	}
	if err := check("note", h.NoteOffset, h.NoteSize); err != nil {
		return err
	}
	for d := 0; d < MaxDims; d++ {
		if h.LabelSizes[d] == 0 {
			continue
		}
		if err := check(fmt.Sprintf("dimension %d labels", d), h.LabelOffsets[d], h.LabelSizes[d]); err != nil {
			return err
		}
	}

	product := 1
	for _, n := range h.Dims {
		product *= n
	}
	if product != h.Npnts {
		return fmt.Errorf("%w: npnts %d does not match dimension product %d", ErrInvalidWave, h.Npnts, product)
	}
	return nil
}
