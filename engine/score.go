package engine

var lineRewards = [...]int{0, 40, 100, 300, 1200}

// LineReward returns the score awarded for clearing lines rows in one tick.
// No shape is taller than four rows, so larger counts get the four-row reward.
func LineReward(lines int) int {
	if lines <= 0 {
		return 0
	}
	if lines >= len(lineRewards) {
		return lineRewards[len(lineRewards)-1]
	}
	return lineRewards[lines]
}
