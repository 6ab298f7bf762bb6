// Package diag provides lightweight run diagnostics: per-phase timing
// (adapted from the prof package) and a convergence-history chart
// rendered with go-echarts. It is deliberately not a frequency-domain
// plotting library: this package only ever plots iteration index against
// step size.
package diag
