// Package fibonacci computes Fibonacci numbers on top of the fixed-capacity
// decimal arithmetic of package bigdecimal.
//
// The primary algorithm is Fast Doubling, which walks the binary
// representation of the index from the most significant bit down and applies
//
//	F(2m)   = F(m) * (2*F(m+1) - F(m))
//	F(2m+1) = F(m+1)² + F(m)²
//
// at every bit, followed by a single addition when the bit is set. An
// iterative calculator following the defining recurrence is kept alongside it
// as a reference implementation.
package fibonacci
