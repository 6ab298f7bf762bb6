// Package linalg implements a dense real linear system solver, Gaussian
// elimination with partial pivoting, sized for the small symmetric
// positive-semidefinite normal-equation systems the identifier builds. It
// carries no dependency on any third-party matrix library: a hand-rolled
// solver is sufficient at these problem sizes, and gonum-style excerpts
// elsewhere in the ecosystem are used here only as a documentation-style
// reference, not as a dependency.
package linalg
