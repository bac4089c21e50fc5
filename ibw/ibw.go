// Package ibw decodes Asylum Research / Igor binary wave (.ibw) scan
// image files into a numeric height image plus a standardized metadata
// record.
//
// Decoding is a pure, single-pass transformation over an in-memory byte
// buffer: the input is not retained, every output is freshly allocated,
// and concurrent decodes over independent buffers need no coordination.
package ibw

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-ibw/internal/wave"
)

// Result holds everything decoded from one scan image file.
type Result struct {
	// Image is the selected channel plane after the standard viewing
	// transform, with heights in nanometres.
	Image *mat.Dense

	// Metadata is the standardized record; see StandardMetadataKeys
	// for its key set and order.
	Metadata Metadata

	// Channels lists the non-empty channel labels found in the file,
	// in their original order.
	Channels []string

	// Notes is the full parsed key/value note map, for callers that
	// need instrument parameters beyond the standardized record.
	Notes map[string]string

	// Scaling carries the pixels-per-nanometre factors for both axes.
	// The standardized record exports only the slow-axis value.
	Scaling Scaling
}

// Decode parses a complete .ibw container and extracts the named
// channel. A channel name not present in the file falls back to the
// first available channel rather than failing.
func Decode(data []byte, channel string) (*Result, error) {
	w, err := wave.Read(data)
	if err != nil {
		return nil, err
	}

	dims := w.Header.Dims
	if len(dims) < 2 {
		return nil, fmt.Errorf("%w: %d-dimensional wave is not a scan image", ErrInvalidWave, len(dims))
	}

	channels := w.Channels()
	plane, name := selectChannel(channels, channel)
	if plane >= w.Header.NumChannels() {
		return nil, fmt.Errorf("%w: channel %q at index %d, wave has %d planes",
			ErrInvalidWave, name, plane, w.Header.NumChannels())
	}

	notes := wave.ParseNotes(w.Note)

	scaling, err := computeScaling(notes, dims)
	if err != nil {
		return nil, err
	}

	metadata, err := normalize(notes, scaling, name)
	if err != nil {
		return nil, err
	}

	return &Result{
		Image:    imageForPlane(w.Data, dims, plane),
		Metadata: metadata,
		Channels: channels,
		Notes:    notes,
		Scaling:  scaling,
	}, nil
}

// selectChannel resolves a requested channel name against the discovered
// labels. Unknown names fall back to index 0; a label-less wave decodes
// plane 0 under an empty name.
func selectChannel(channels []string, requested string) (int, string) {
	for i, c := range channels {
		if c == requested {
			return i, c
		}
	}
	if len(channels) > 0 {
		return 0, channels[0]
	}
	return 0, ""
}
