// Package bignum implements arbitrary-precision signed decimal and complex
// numbers on top of plain digit sequences.
//
// Addition, subtraction, and multiplication are exact. Division, square roots,
// and negative powers produce results truncated to a caller-supplied number of
// fractional digits; there is no package-level precision setting.
//
// Decimal and Complex are immutable values, and both implement Number, which
// is closed to other implementations. The package-level arithmetic functions
// operate on Numbers and promote a Decimal operand to Complex as needed.
package bignum
