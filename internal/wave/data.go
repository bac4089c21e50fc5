package wave

import (
	"fmt"
	"math"
)

// ExtractData reads the sample array described by h from buf and converts
// every element to float64, preserving storage order (dimension 0
// fastest). The element count times the element width must fit inside
// the declared data section.
func ExtractData(buf []byte, h *Header) ([]float64, error) {
	itemSize, err := ItemSize(h.Type)
	if err != nil {
		return nil, err
	}
	if h.Npnts*itemSize != h.DataSize {
		return nil, fmt.Errorf("%w: %d samples of %d bytes disagree with data section size %d",
			ErrInvalidWave, h.Npnts, itemSize, h.DataSize)
	}
	if h.DataOffset+h.DataSize > len(buf) {
		return nil, fmt.Errorf("%w: data section ends at %d, buffer is %d bytes",
			ErrTruncated, h.DataOffset+h.DataSize, len(buf))
	}

	raw := buf[h.DataOffset : h.DataOffset+h.DataSize]
	out := make([]float64, h.Npnts)
	unsigned := h.Type&TypeUnsigned != 0

	switch h.Type &^ TypeUnsigned {
	case TypeFloat32:
		for i := range out {
			out[i] = float64(math.Float32frombits(h.Order.Uint32(raw[i*4:])))
		}
	case TypeFloat64:
		for i := range out {
			out[i] = math.Float64frombits(h.Order.Uint64(raw[i*8:]))
		}
	case TypeInt8:
		for i := range out {
			if unsigned {
				out[i] = float64(raw[i])
			} else {
				out[i] = float64(int8(raw[i]))
			}
		}
	case TypeInt16:
		for i := range out {
			v := h.Order.Uint16(raw[i*2:])
			if unsigned {
				out[i] = float64(v)
			} else {
				out[i] = float64(int16(v))
			}
		}
	case TypeInt32:
		for i := range out {
			v := h.Order.Uint32(raw[i*4:])
			if unsigned {
				out[i] = float64(v)
			} else {
				out[i] = float64(int32(v))
			}
		}
	}

	return out, nil
}
