// Package analysis inspects sampled fields and curves.
//
// The package reports structural properties that identify a mode:
//
//   - [SignChanges] / [HalfPeriods]: nodal structure along a slice
//   - [Extrema]: range of the finite samples
//   - [PowerSpectrum] / [DominantFrequency]: spatial frequency content
//   - [Summarize] / [SummarizeCurve]: everything above in one record
//
// # Mode Check
//
// A membrane mode (n, m) shows n half-periods along x and m along y:
//
//	s := analysis.Summarize(f)
//	fmt.Println(s.HalfPeriodsU, s.HalfPeriodsV)
package analysis
