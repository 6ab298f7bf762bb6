// Package tf implements a polynomial rational transfer function
// G(s) = num(s) / den(s), its frequency response at s = j*omega, zero/pole
// extraction, a Routh-Hurwitz stability test, and human-readable
// expression printing.
package tf
