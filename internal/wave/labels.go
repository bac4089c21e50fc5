package wave

import (
	"fmt"

	"github.com/robert-malhotra/go-ibw/internal/binary"
)

// ExtractLabels decodes the dimension-label sections into one slot list
// per dimension. Each section is a run of 32-byte NUL-padded slots; slot
// 0 names the dimension as a whole and is usually empty. Empty slots are
// kept so slot positions line up with element indices.
//
// Versions 1-3 have no label sections; every dimension gets a nil list.
func ExtractLabels(buf []byte, h *Header) ([][]string, error) {
	labels := make([][]string, MaxDims)
	for d := 0; d < MaxDims; d++ {
		size := h.LabelSizes[d]
		if size == 0 {
			continue
		}
		off := h.LabelOffsets[d]
		if off < 0 || off+size > len(buf) {
			return nil, fmt.Errorf("%w: dimension %d labels end at %d, buffer is %d bytes",
				ErrTruncated, d, off+size, len(buf))
		}

		section := buf[off : off+size]
		for pos := 0; pos < len(section); pos += LabelSlotSize {
			end := pos + LabelSlotSize
			if end > len(section) {
				end = len(section)
			}
			labels[d] = append(labels[d], binary.TrimFixed(section[pos:end]))
		}
	}
	return labels, nil
}

// Channels flattens the label slots across dimensions, keeping only
// non-empty entries in their original order. For scan images only the
// channel dimension carries labels, so the result is the channel list.
func (w *Wave) Channels() []string {
	var out []string
	for _, dim := range w.Labels {
		for _, label := range dim {
			if label != "" {
				out = append(out, label)
			}
		}
	}
	return out
}
