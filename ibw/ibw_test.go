package ibw

import (
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-ibw/internal/wave"
	"github.com/robert-malhotra/go-ibw/internal/wave/wavetest"
)

// scanFixture builds a 4x4 single-channel height wave. Sample i holds
// i nanometres (stored in metres, as instruments write it).
func scanFixture() wavetest.Wave5 {
	data := make([]float64, 16)
	for i := range data {
		data[i] = float64(i) * 1e-9
	}
	return wavetest.Wave5{
		Name: "scan0",
		Dims: []int{4, 4, 1},
		Data: data,
		DimLabels: [wave.MaxDims][]string{
			2: {"", "HeightTrace"},
		},
		Note: "SlowScanSize:4e-9\rFastScanSize:4e-9\rScanLines:4\rScanPoints:4\rScanRate:2\r",
	}
}

func TestDecodeEndToEnd(t *testing.T) {
	res, err := Decode(scanFixture().Encode(), "HeightTrace")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	rows, cols := res.Image.Dims()
	if rows != 4 || cols != 4 {
		t.Fatalf("image is %dx%d, expected 4x4", rows, cols)
	}

	// Viewing transform: transpose the spatial axes, then flip
	// vertically. Sample i sits at metres value i*1e-9, so the pixel
	// at (r, c) must hold c + (3-r)*4 nanometres.
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			expected := float64(c + (3-r)*4)
			if got := res.Image.At(r, c); !scalar.EqualWithinAbsOrRel(got, expected, 1e-6, 1e-6) {
				t.Errorf("image(%d,%d) = %v, expected %v", r, c, got, expected)
			}
		}
	}

	md := res.Metadata
	if md["num_frames"] != 1 {
		t.Errorf("num_frames = %v, expected 1", md["num_frames"])
	}
	if !scalar.EqualWithinAbs(md["fps"].(float64), 0.125, 1e-12) {
		t.Errorf("fps = %v, expected 0.125", md["fps"])
	}
	if !scalar.EqualWithinAbs(md["line_rate"].(float64), 0.5, 1e-12) {
		t.Errorf("line_rate = %v, expected 0.5", md["line_rate"])
	}
	if md["channel"] != "HeightTrace" {
		t.Errorf("channel = %v, expected HeightTrace", md["channel"])
	}

	// 4e-9 m over 4 pixels is 1 nm per pixel.
	if !scalar.EqualWithinAbs(res.Scaling.Slow, 1.0, 1e-12) {
		t.Errorf("slow scaling = %v, expected 1.0", res.Scaling.Slow)
	}

	if len(res.Channels) != 1 || res.Channels[0] != "HeightTrace" {
		t.Errorf("channels = %v, expected [HeightTrace]", res.Channels)
	}
	if res.Notes["ScanRate"] != "2" {
		t.Errorf("notes = %v", res.Notes)
	}
}

func TestDecodeChannelFallback(t *testing.T) {
	fixture := scanFixture()
	buf := fixture.Encode()

	requested, err := Decode(buf, "Phase")
	if err != nil {
		t.Fatalf("Decode with unknown channel failed: %v", err)
	}
	first, err := Decode(buf, "HeightTrace")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if requested.Metadata["channel"] != "HeightTrace" {
		t.Errorf("channel = %v, expected fallback to HeightTrace", requested.Metadata["channel"])
	}
	if !mat.Equal(requested.Image, first.Image) {
		t.Error("fallback image differs from channel 0 image")
	}
}

func TestDecodeSecondChannel(t *testing.T) {
	data := make([]float64, 8)
	for i := range data {
		data[i] = float64(i) * 1e-9
	}
	fixture := wavetest.Wave5{
		Name: "two",
		Dims: []int{2, 2, 2},
		Data: data,
		DimLabels: [wave.MaxDims][]string{
			2: {"", "HeightTrace", "AmplitudeTrace"},
		},
		Note: "SlowScanSize:2e-9\rFastScanSize:2e-9\r",
	}

	res, err := Decode(fixture.Encode(), "AmplitudeTrace")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if res.Metadata["channel"] != "AmplitudeTrace" {
		t.Errorf("channel = %v, expected AmplitudeTrace", res.Metadata["channel"])
	}

	// Plane 1 starts at sample 4.
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			expected := float64(4 + c + (1-r)*2)
			if got := res.Image.At(r, c); !scalar.EqualWithinAbsOrRel(got, expected, 1e-6, 1e-6) {
				t.Errorf("image(%d,%d) = %v, expected %v", r, c, got, expected)
			}
		}
	}
}

func TestDecodeIdempotent(t *testing.T) {
	buf := scanFixture().Encode()

	a, err := Decode(buf, "HeightTrace")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	b, err := Decode(buf, "HeightTrace")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !mat.Equal(a.Image, b.Image) {
		t.Error("repeated decode produced a different image")
	}
	if !reflect.DeepEqual(a.Metadata, b.Metadata) {
		t.Errorf("repeated decode produced different metadata: %v vs %v", a.Metadata, b.Metadata)
	}
	if !reflect.DeepEqual(a.Channels, b.Channels) {
		t.Errorf("repeated decode produced different channels: %v vs %v", a.Channels, b.Channels)
	}
}

func TestDecodeNoLabels(t *testing.T) {
	fixture := scanFixture()
	fixture.DimLabels = [wave.MaxDims][]string{}

	res, err := Decode(fixture.Encode(), "HeightTrace")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if res.Metadata["channel"] != "" {
		t.Errorf("channel = %v, expected empty name", res.Metadata["channel"])
	}
	if len(res.Channels) != 0 {
		t.Errorf("channels = %v, expected none", res.Channels)
	}
}

func TestDecodeTruncated(t *testing.T) {
	buf := scanFixture().Encode()
	if _, err := Decode(buf[:400], "HeightTrace"); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeMissingScalingNote(t *testing.T) {
	fixture := scanFixture()
	fixture.Note = "ScanRate:2\r"

	if _, err := Decode(fixture.Encode(), "HeightTrace"); !errors.Is(err, ErrMissingMetadata) {
		t.Errorf("expected ErrMissingMetadata, got %v", err)
	}
}

func TestDecodeOneDimensionalWave(t *testing.T) {
	fixture := wavetest.Wave2{Name: "spectrum", Data: []float64{1, 2, 3}}
	if _, err := Decode(fixture.Encode(), "HeightTrace"); !errors.Is(err, ErrInvalidWave) {
		t.Errorf("expected ErrInvalidWave, got %v", err)
	}
}

func TestDecodeLabelBeyondPlanes(t *testing.T) {
	// Labels on a spatial dimension push the channel index past the
	// actual plane count; that is a structural failure, not a fallback.
	fixture := scanFixture()
	fixture.Dims = []int{4, 4}
	fixture.DimLabels = [wave.MaxDims][]string{
		0: {"", "First", "Second"},
	}

	if _, err := Decode(fixture.Encode(), "Second"); !errors.Is(err, ErrInvalidWave) {
		t.Errorf("expected ErrInvalidWave, got %v", err)
	}
}

func TestSelectChannel(t *testing.T) {
	channels := []string{"HeightTrace", "AmplitudeTrace"}

	if i, name := selectChannel(channels, "AmplitudeTrace"); i != 1 || name != "AmplitudeTrace" {
		t.Errorf("got (%d, %q)", i, name)
	}
	if i, name := selectChannel(channels, "Phase"); i != 0 || name != "HeightTrace" {
		t.Errorf("fallback got (%d, %q)", i, name)
	}
	if i, name := selectChannel(nil, "Phase"); i != 0 || name != "" {
		t.Errorf("empty list got (%d, %q)", i, name)
	}
}
