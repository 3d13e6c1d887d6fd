package math

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCD3 returns the greatest common divisor of |a|, |b| and |c|
func GCD3(a, b, c int) int {
	return GCD(GCD(a, b), c)
}

// Abs returns the absolute value of an int
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
