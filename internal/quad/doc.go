// Package quad provides a general-purpose adaptive Gauss-Legendre
// integrator.
//
// [Adaptive] integrates a scalar function over a finite or improper
// interval to a relative tolerance, falling back to the deepest estimate
// reached if the recursion budget is exhausted before convergence. The
// package is pure and stateless: every call receives all the state it
// needs and mutates nothing.
package quad
