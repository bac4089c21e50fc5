package ibw

import "fmt"

// Scaling holds the pixels-per-nanometre conversion factors derived from
// the declared physical scan size and the pixel count along each array
// axis.
type Scaling struct {
	// Slow is derived from the SlowScanSize note and the first array
	// dimension. This is the value exported in the standardized record.
	Slow float64

	// Fast is derived from the FastScanSize note and the second array
	// dimension.
	Fast float64
}

// computeScaling derives both axis factors from the scan notes and the
// pre-transform array dimensions. The scan-size notes are hard
// requirements here: a missing or non-numeric key aborts the decode.
func computeScaling(notes map[string]string, dims []int) (Scaling, error) {
	slowSize, err := requireNoteFloat(notes, noteSlowScanSize)
	if err != nil {
		return Scaling{}, err
	}
	fastSize, err := requireNoteFloat(notes, noteFastScanSize)
	if err != nil {
		return Scaling{}, err
	}

	var s Scaling
	if s.Slow, err = pixelsPerNanometre(slowSize, dims[0], noteSlowScanSize); err != nil {
		return Scaling{}, err
	}
	if s.Fast, err = pixelsPerNanometre(fastSize, dims[1], noteFastScanSize); err != nil {
		return Scaling{}, err
	}
	return s, nil
}

// pixelsPerNanometre inverts the nanometres-per-pixel ratio for one axis:
// 1 / (sizeMetres / pixels * 1e9).
func pixelsPerNanometre(sizeMetres float64, pixels int, key string) (float64, error) {
	if pixels == 0 {
		return 0, fmt.Errorf("%w: %s axis has zero pixels", ErrZeroDenominator, key)
	}
	denom := sizeMetres / float64(pixels) * 1e9
	if denom == 0 {
		return 0, fmt.Errorf("%w: %s is zero", ErrZeroDenominator, key)
	}
	return 1 / denom, nil
}
