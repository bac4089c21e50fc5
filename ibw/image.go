package ibw

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// imageForPlane applies the standard viewing transform to one channel
// plane of the raw sample array: select the plane, transpose the two
// spatial axes, flip vertically, and convert metres to nanometres. The
// order is transpose-then-flip; reversing it produces a different image.
//
// data is in storage order (dimension 0 fastest); the result has
// dims[1] rows and dims[0] columns.
func imageForPlane(data []float64, dims []int, plane int) *mat.Dense {
	n0, n1 := dims[0], dims[1]
	img := mat.NewDense(n1, n0, nil)

	base := plane * n0 * n1
	for r := 0; r < n1; r++ {
		src := base + (n1-1-r)*n0
		for c := 0; c < n0; c++ {
			img.Set(r, c, data[src+c])
		}
	}

	// Stored heights are metres.
	floats.Scale(1e9, img.RawMatrix().Data)
	return img
}
