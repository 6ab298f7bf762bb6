// Package poly implements real polynomials held as coefficients in
// ascending power order, with evaluation at a complex argument split by
// the parity of the exponent.
package poly
