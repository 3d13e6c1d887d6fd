// Package resonance locates mean-motion resonances in the plane of
// consecutive period ratios.
//
// A point of the plane is (x, y) = (n1/n2, n2/n3) for three consecutive
// bodies with mean motions n1 > n2 > n3. A three-body resonance
// i·n1 + j·n2 + k·n3 = 0 becomes the curve
//
//	y = -k / (i·x + j)
//
// which has a vertical asymptote at x = -j/i. Two-body resonances p:q are
// straight lines x = p/q or y = p/q.
//
// Two operations are provided:
//
//   - Enumerate lists every low-order resonance crossing a rectangular
//     window of the plane.
//   - MinDistance measures how far a point lies from one three-body curve,
//     using a Halley iteration on the stationarity condition of the squared
//     distance, with a dense grid search as fallback when the iteration keeps
//     jumping across the asymptote.
//
// Every function is pure: no I/O, no shared state. Callers may run them
// concurrently.
package resonance
