// Package calc implements the calculator's pure operations: addition,
// subtraction, multiplication, true division and parity checks.
//
// Every function is stateless and safe for concurrent use. The only failure is
// division by zero, reported as domain.ErrDivideByZero.
package calc
