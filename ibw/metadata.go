package ibw

import (
	"fmt"
	"strconv"
)

// StandardMetadataKeys is the fixed, order-significant key set of the
// standardized metadata record shared across all supported instrument
// formats. Every Metadata produced by this package has exactly these
// keys; iterate this slice to visit them in schema order.
var StandardMetadataKeys = []string{
	"num_frames",
	"x_range_nm",
	"fps",
	"line_rate",
	"y_pixels",
	"x_pixels",
	"pixel_to_nanometre_scaling_factor",
	"channel",
	"timestamps",
}

// Metadata is a standardized metadata record. Key set and order are
// defined by StandardMetadataKeys.
type Metadata map[string]interface{}

// Scan note keys consumed by this package. Each consumer applies an
// explicit per-field policy to an absent or non-numeric key: the scaling
// inputs (computeScaling) abort the decode with ErrMissingMetadata,
// while the record fields below degrade to zero. FastScanSize is under
// both policies: required for Scaling.Fast, defaulted for x_range_nm.
const (
	noteSlowScanSize = "SlowScanSize" // scan height in metres; required (scaling)
	noteFastScanSize = "FastScanSize" // scan width in metres; required (scaling), defaulted (x_range_nm)
	noteScanLines    = "ScanLines"    // slow-axis pixel count; defaulted
	noteScanPoints   = "ScanPoints"   // fast-axis pixel count; defaulted
	noteScanRate     = "ScanRate"     // lines per second; defaulted
)

// requireNoteFloat parses a hard-required note value. Absent or
// non-numeric keys abort the decode.
func requireNoteFloat(notes map[string]string, key string) (float64, error) {
	raw, ok := notes[key]
	if !ok {
		return 0, fmt.Errorf("%w: note key %q absent", ErrMissingMetadata, key)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: note key %q is not numeric (%q)", ErrMissingMetadata, key, raw)
	}
	return f, nil
}

// noteFloat parses a soft note value, degrading to zero when the key is
// absent or non-numeric.
func noteFloat(notes map[string]string, key string) float64 {
	f, err := strconv.ParseFloat(notes[key], 64)
	if err != nil {
		return 0
	}
	return f
}

// noteInt parses a soft integer note value, degrading to zero.
func noteInt(notes map[string]string, key string) int {
	n, err := strconv.Atoi(notes[key])
	if err != nil {
		return 0
	}
	return n
}

// normalize assembles the standardized metadata record from the parsed
// notes, the computed scaling, and the selected channel name.
//
// The record always describes a single frame. Rate fields are guarded:
// a zero scan rate or zero line count yields zero rather than a
// division failure.
func normalize(notes map[string]string, scaling Scaling, channel string) (Metadata, error) {
	xRangeNM := noteFloat(notes, noteFastScanSize) * 1e9
	yPixels := noteInt(notes, noteScanLines)
	xPixels := noteInt(notes, noteScanPoints)
	scanRate := noteFloat(notes, noteScanRate)

	var lineRate, fps float64
	if yPixels != 0 && scanRate != 0 {
		lineRate = 1 / scanRate
		fps = 1 / (float64(yPixels) * scanRate)
	}

	values := []interface{}{
		1, // single-frame format
		xRangeNM,
		fps,
		lineRate,
		yPixels,
		xPixels,
		scaling.Slow,
		channel,
		nil, // timestamps: none for a single frame
	}

	if len(values) != len(StandardMetadataKeys) {
		return nil, fmt.Errorf("%w: %d values for %d keys", ErrSchemaMismatch, len(values), len(StandardMetadataKeys))
	}

	md := make(Metadata, len(values))
	for i, key := range StandardMetadataKeys {
		md[key] = values[i]
	}
	return md, nil
}
