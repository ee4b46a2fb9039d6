// Package field samples closed-form PDE solutions over coordinate grids.
//
// Every family follows the same pipeline: build a [Grid] in the family's
// natural coordinates, evaluate a special function at each point, then
// optionally normalise or mask the result:
//
//   - [Membrane]: rectangular membrane mode A sin(kx x) sin(ky y)
//   - [Legendre]: Legendre polynomial curve P_l(x) on [-1, 1]
//   - [Multipole]: polar field P_l(cos theta) / r^(l+1), masked for r < 1
//   - [Harmonic]: Re Y_l^m on the unit sphere, min-max normalised
//   - [Bessel]: Bessel curve J_n(x) on [0, 10]
//
// # Example
//
//	f, err := field.Membrane(field.DefaultMembraneParams(2, 3))
//	if err != nil {
//	    return err
//	}
//	rows, cols := f.Dims() // 500, 500
//
// Nothing here holds state between calls; each operation returns freshly
// allocated matrices.
package field
