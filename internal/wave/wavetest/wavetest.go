// Package wavetest builds synthetic Igor binary wave containers for
// tests. The encoders produce byte-exact v2/v5 layouts with valid header
// checksums; the public module remains decode-only.
package wavetest

import (
	stdbin "encoding/binary"
	"math"

	"github.com/robert-malhotra/go-ibw/internal/binary"
	"github.com/robert-malhotra/go-ibw/internal/wave"
)

// Wave5 describes a synthetic version 5 wave.
type Wave5 struct {
	Order stdbin.ByteOrder // nil means little-endian
	Type  uint16           // zero means float32
	Name  string
	Dims  []int

	// Data holds the samples in storage order, dimension 0 fastest.
	// Its length must equal the product of Dims.
	Data []float64

	// DimLabels holds the 32-byte label slots per dimension, including
	// the leading whole-dimension slot.
	DimLabels [wave.MaxDims][]string

	Note string

	// BadChecksum corrupts the checksum field after encoding.
	BadChecksum bool
}

// Encode serializes the wave into a complete .ibw byte buffer.
func (w Wave5) Encode() []byte {
	order := w.Order
	if order == nil {
		order = stdbin.LittleEndian
	}
	waveType := w.Type
	if waveType == 0 {
		waveType = wave.TypeFloat32
	}
	itemSize, err := wave.ItemSize(waveType)
	if err != nil {
		panic(err)
	}

	npnts := 1
	for _, n := range w.Dims {
		npnts *= n
	}
	dataSize := npnts * itemSize

	labelsSize := 0
	for _, slots := range w.DimLabels {
		labelsSize += len(slots) * wave.LabelSlotSize
	}

	buf := make([]byte, 384+dataSize+len(w.Note)+labelsSize)

	// BinHeader5
	order.PutUint16(buf[0:], 5)
	order.PutUint32(buf[4:], uint32(320+dataSize)) // wfmSize
	order.PutUint32(buf[12:], uint32(len(w.Note))) // noteSize
	for d, slots := range w.DimLabels {
		order.PutUint32(buf[36+4*d:], uint32(len(slots)*wave.LabelSlotSize))
	}

	// WaveHeader5
	order.PutUint32(buf[64+12:], uint32(npnts))
	order.PutUint16(buf[64+16:], waveType)
	copy(buf[64+28:64+28+32], w.Name)
	for d, n := range w.Dims {
		order.PutUint32(buf[64+68+4*d:], uint32(n))
	}

	putSamples(buf[384:384+dataSize], w.Data, waveType, order)

	pos := 384 + dataSize
	copy(buf[pos:], w.Note)
	pos += len(w.Note)
	for _, slots := range w.DimLabels {
		for _, label := range slots {
			copy(buf[pos:pos+wave.LabelSlotSize], label)
			pos += wave.LabelSlotSize
		}
	}

	fix := binary.ChecksumFix(buf[:384], order)
	if w.BadChecksum {
		fix++
	}
	order.PutUint16(buf[2:], fix)
	return buf
}

// Wave2 describes a synthetic version 2 wave (one-dimensional, float32).
type Wave2 struct {
	Order stdbin.ByteOrder
	Name  string
	Data  []float64
	Note  string
}

// Encode serializes the wave into a version 2 byte buffer.
func (w Wave2) Encode() []byte {
	order := w.Order
	if order == nil {
		order = stdbin.LittleEndian
	}
	dataSize := len(w.Data) * 4
	buf := make([]byte, 126+dataSize+16+len(w.Note))

	// BinHeader2
	order.PutUint16(buf[0:], 2)
	order.PutUint32(buf[2:], uint32(110+dataSize+16)) // wfmSize
	order.PutUint32(buf[6:], uint32(len(w.Note)))     // noteSize

	// WaveHeader2
	order.PutUint16(buf[16:], wave.TypeFloat32)
	copy(buf[16+6:16+6+20], w.Name)
	order.PutUint32(buf[16+42:], uint32(len(w.Data))) // npnts

	putSamples(buf[126:126+dataSize], w.Data, wave.TypeFloat32, order)
	copy(buf[126+dataSize+16:], w.Note)

	order.PutUint16(buf[14:], binary.ChecksumFix(buf[:126], order))
	return buf
}

func putSamples(dst []byte, data []float64, waveType uint16, order stdbin.ByteOrder) {
	for i, v := range data {
		switch waveType &^ wave.TypeUnsigned {
		case wave.TypeFloat32:
			order.PutUint32(dst[i*4:], math.Float32bits(float32(v)))
		case wave.TypeFloat64:
			order.PutUint64(dst[i*8:], math.Float64bits(v))
		case wave.TypeInt8:
			dst[i] = byte(int8(v))
		case wave.TypeInt16:
			order.PutUint16(dst[i*2:], uint16(int16(v)))
		case wave.TypeInt32:
			order.PutUint32(dst[i*4:], uint32(int32(v)))
		}
	}
}
