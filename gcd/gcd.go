// Package gcd computes greatest common divisors with Euclid's algorithm.
package gcd

// Gcd returns the greatest common divisor of n and m. Zero has no greatest
// common divisor with anything, so a zero argument is a programming error
// and panics.
func Gcd(n uint64, m uint64) uint64 {
	if n == 0 || m == 0 {
		panic("gcd arguments must not be zero")
	}
	for m != 0 {
		if m < n {
			n, m = m, n
		}
		m = m % n
	}
	return n
}

// Fold reduces numbers to their collective greatest common divisor. At
// least one number is required.
func Fold(numbers []uint64) uint64 {
	if len(numbers) == 0 {
		panic("gcd needs at least one number")
	}
	d := numbers[0]
	for _, m := range numbers[1:] {
		d = Gcd(d, m)
	}
	return d
}
