// Package fr implements the frequency-response sample (frequency in
// hertz, gain in decibels, phase in degrees), its bidirectional complex
// conversion, and an ordered list of samples with whitespace-text file
// I/O, range filtering, and the three pointwise transforms the identifier
// composes with: cascade with an existing transfer function, and the
// open-loop/closed-loop conversions.
package fr
