// Package special provides the special functions sampled by pdeviz.
//
//   - [AssocLegendre]: associated Legendre functions P_l^m(x)
//   - [Legendre]: Legendre polynomials P_l(x)
//   - [SphericalHarmonic]: complex spherical harmonics Y_l^m(theta, phi)
//   - [BesselJ]: Bessel functions of the first kind J_n(x)
//
// Legendre functions carry the Condon-Shortley phase (-1)^m, so that
//
//	p, _ := special.AssocLegendre(1, 1, x) // -sqrt(1-x^2)
//
// Spherical harmonics take theta as the azimuthal angle and phi as the
// polar angle.
package special
