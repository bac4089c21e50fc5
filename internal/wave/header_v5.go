package wave

import (
	stdbin "encoding/binary"

	"github.com/robert-malhotra/go-ibw/internal/binary"
)

/*
Version 5 Layout:

BinHeader5 (64 bytes):
Offset  Size  Description
0       2     Version (5)
2       2     Checksum (sum over first 384 bytes must be 0)
4       4     wfmSize: WaveHeader5 plus wave data
8       4     formulaSize
12      4     noteSize
16      4     dataEUnitsSize
20      4x4   dimEUnitsSize[4]
36      4x4   dimLabelsSize[4]
52      4     sIndicesSize
56      4     optionsSize1
60      4     optionsSize2

WaveHeader5 (320 bytes, offsets relative to its start at 64):
0       4     next (memory handle, ignore)
4       4     creationDate
8       4     modDate
12      4     npnts
16      2     type
18      2     dLock
20      6     whpad1
26      2     whVersion
28      32    bname
60      4     whpad2
64      4     dFolder (handle)
68      4x4   nDim[4]
84      8x4   sfA[4]
116     8x4   sfB[4]
148     4     dataUnits
152     4x4   dimUnits[4][4]
168     2     fsValid
170     2     whpad3
172     8     topFullScale
180     8     botFullScale
188     4+16  dataEUnits, dimEUnits[4] (handles)
208     16    dimLabels[4] (handles)
224     4     waveNoteH (handle)
228     64    whUnused[16]
292     2+2+2 aModified, wModified, swModified
298     1+1   useBits, kindBits
300     4     formula (handle)
304     4     depID
308     2+2   whpad4, srcFldr
312     4+4   fileName, sIndices (handles)

The wave data begins at 384. The trailing sections follow the data in
order: formula, note, extended data units, extended dimension units,
dimension labels, sIndices.
*/

const (
	binHeader5Size  = 64
	waveHeader5Size = 320
)

func readV5(buf []byte, order stdbin.ByteOrder) (*Header, error) {
	h := &Header{Version: 5, Order: order}
	r := binary.NewReader(buf, order)

	// BinHeader5. The data size is derived from npnts rather than
	// wfmSize, so wfmSize is skipped.
	b := r.At(8)
	formulaSize, err := b.ReadInt32()
	if err != nil {
		return nil, err
	}
	noteSize, err := b.ReadInt32()
	if err != nil {
		return nil, err
	}
	dataEUnitsSize, err := b.ReadInt32()
	if err != nil {
		return nil, err
	}
	var dimEUnitsSize, dimLabelsSize [MaxDims]int32
	for d := range dimEUnitsSize {
		if dimEUnitsSize[d], err = b.ReadInt32(); err != nil {
			return nil, err
		}
	}
	for d := range dimLabelsSize {
		if dimLabelsSize[d], err = b.ReadInt32(); err != nil {
			return nil, err
		}
	}
	// WaveHeader5
	w := r.At(binHeader5Size + 4)
	if h.CreationDate, err = w.ReadUint32(); err != nil {
		return nil, err
	}
	if h.ModDate, err = w.ReadUint32(); err != nil {
		return nil, err
	}
	npnts, err := w.ReadInt32()
	if err != nil {
		return nil, err
	}
	h.Npnts = int(npnts)
	waveType, err := w.ReadUint16()
	if err != nil {
		return nil, err
	}
	h.Type = waveType

	w = r.At(binHeader5Size + 28)
	if h.Name, err = w.ReadString(32); err != nil {
		return nil, err
	}

	w = r.At(binHeader5Size + 68)
	var dims [MaxDims]int32
	for d := range dims {
		if dims[d], err = w.ReadInt32(); err != nil {
			return nil, err
		}
	}
	for d := range h.SFA {
		if h.SFA[d], err = w.ReadFloat64(); err != nil {
			return nil, err
		}
	}
	for d := range h.SFB {
		if h.SFB[d], err = w.ReadFloat64(); err != nil {
			return nil, err
		}
	}
	if h.DataUnits, err = w.ReadString(4); err != nil {
		return nil, err
	}
	for d := range h.DimUnits {
		if h.DimUnits[d], err = w.ReadString(4); err != nil {
			return nil, err
		}
	}

	// Non-zero extents are contiguous from dimension 0.
	for _, n := range dims {
		if n <= 0 {
			break
		}
		h.Dims = append(h.Dims, int(n))
	}
	if len(h.Dims) == 0 {
		h.Dims = []int{h.Npnts}
	}

	itemSize, err := ItemSize(h.Type)
	if err != nil {
		return nil, err
	}

	// Section table: data, then the variable-length tail.
	h.DataOffset = binHeader5Size + waveHeader5Size
	h.DataSize = h.Npnts * itemSize

	pos := h.DataOffset + h.DataSize
	pos += int(formulaSize)
	h.NoteOffset = pos
	h.NoteSize = int(noteSize)
	pos += h.NoteSize
	pos += int(dataEUnitsSize)
	for d := range dimEUnitsSize {
		pos += int(dimEUnitsSize[d])
	}
	for d := range dimLabelsSize {
		h.LabelOffsets[d] = pos
		h.LabelSizes[d] = int(dimLabelsSize[d])
		pos += h.LabelSizes[d]
	}

	return h, nil
}
