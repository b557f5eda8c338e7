// Package bigdecimal implements a fixed-capacity, base-10 representation of
// non-negative integers together with the addition, subtraction and
// multiplication needed by the Fibonacci engine.
//
// A Decimal stores Capacity decimal digits, least significant first. Every
// operation returns a new value and never mutates its operands: the digit
// array lives inside the struct, so results and inputs can never share
// storage. Results that would need more than Capacity digits are rejected with
// ErrCapacityOverflow instead of being truncated.
package bigdecimal
