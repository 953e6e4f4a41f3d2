package tetris

// BasePoints is awarded per cleared line before the multi-line multiplier.
const BasePoints = 10

// LineScore returns the points for clearing n lines at once: n*BasePoints*n,
// so 1, 2, 3 and 4 lines are worth 10, 40, 90 and 160.
func LineScore(n int) int {
	if n <= 0 {
		return 0
	}
	return n * BasePoints * n
}
