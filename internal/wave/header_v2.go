package wave

import (
	stdbin "encoding/binary"

	"github.com/robert-malhotra/go-ibw/internal/binary"
)

/*
Version 1-3 Layout:

BinHeader1 (8 bytes):   version(2) wfmSize(4) checksum(2)
BinHeader2 (16 bytes):  version(2) wfmSize(4) noteSize(4) pictSize(4) checksum(2)
BinHeader3 (20 bytes):  version(2) wfmSize(4) noteSize(4) formulaSize(4) pictSize(4) checksum(2)

WaveHeader2 (110 bytes, offsets relative to its start):
Offset  Size  Description
0       2     type
2       4     next (handle)
6       20    bname
26      2     whVersion
28      2     srcFldr
30      4     fileName (handle)
34      4     dataUnits
38      4     xUnits
42      4     npnts
46      2     aModified
48      8     hsA (x scaling delta)
56      8     hsB (x scaling offset)
64      2+2+2 wModified, swModified, fsValid
70      8     topFullScale
78      8     botFullScale
86      1+1   useBits, kindBits
88      4     formula (handle)
92      4     depID
96      4     creationDate
100     2     wUnused
102     4     modDate
106     4     waveNoteH (handle)

The wave data begins right after the header. Versions 2 and 3 follow the
data with 16 bytes of padding and then the note text; version 3 appends
the formula text after the note. Version 1 has no trailing sections.
These versions are always one-dimensional and carry no dimension labels.
*/

const (
	binHeader1Size  = 8
	binHeader2Size  = 16
	binHeader3Size  = 20
	waveHeader2Size = 110

	// Bytes between the wave data and the note text in v2/v3 files.
	v2TailPadding = 16
)

func readV123(buf []byte, order stdbin.ByteOrder, version int) (*Header, error) {
	h := &Header{Version: version, Order: order}
	r := binary.NewReader(buf, order)

	binSize := binHeader1Size
	switch version {
	case 2:
		binSize = binHeader2Size
	case 3:
		binSize = binHeader3Size
	}

	var noteSize, formulaSize int32
	var err error
	if version >= 2 {
		b := r.At(6)
		if noteSize, err = b.ReadInt32(); err != nil {
			return nil, err
		}
		if version == 3 {
			if formulaSize, err = b.ReadInt32(); err != nil {
				return nil, err
			}
		}
	}
	_ = formulaSize // follows the note, nothing after it is decoded

	w := r.At(binSize)
	waveType, err := w.ReadUint16()
	if err != nil {
		return nil, err
	}
	h.Type = waveType

	w = r.At(binSize + 6)
	if h.Name, err = w.ReadString(20); err != nil {
		return nil, err
	}

	w = r.At(binSize + 34)
	if h.DataUnits, err = w.ReadString(4); err != nil {
		return nil, err
	}
	if h.DimUnits[0], err = w.ReadString(4); err != nil {
		return nil, err
	}
	npnts, err := w.ReadInt32()
	if err != nil {
		return nil, err
	}
	h.Npnts = int(npnts)
	h.Dims = []int{h.Npnts}

	w = r.At(binSize + 48)
	if h.SFA[0], err = w.ReadFloat64(); err != nil {
		return nil, err
	}
	if h.SFB[0], err = w.ReadFloat64(); err != nil {
		return nil, err
	}

	w = r.At(binSize + 96)
	if h.CreationDate, err = w.ReadUint32(); err != nil {
		return nil, err
	}
	w = r.At(binSize + 102)
	if h.ModDate, err = w.ReadUint32(); err != nil {
		return nil, err
	}

	itemSize, err := ItemSize(h.Type)
	if err != nil {
		return nil, err
	}

	h.DataOffset = binSize + waveHeader2Size
	h.DataSize = h.Npnts * itemSize
	if version >= 2 {
		h.NoteOffset = h.DataOffset + h.DataSize + v2TailPadding
		h.NoteSize = int(noteSize)
	} else {
		h.NoteOffset = h.DataOffset + h.DataSize
		h.NoteSize = 0
	}

	return h, nil
}
