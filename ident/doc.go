// Package ident implements the Sanathanan-Koerner iterative complex
// least-squares identifier: it fits a rational transfer function of
// declared numerator/denominator degree to a list of measured frequency-
// response samples, by repeatedly solving a reweighted linear least-squares
// problem until the parameter update settles within tolerance.
package ident
