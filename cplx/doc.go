// Package cplx implements Cartesian complex-number arithmetic on float64
// parts. It mirrors the reference C library's zComplex type while exposing
// a Go friendly value API: operations take and return Complex values
// instead of mutating through output pointers.
package cplx
