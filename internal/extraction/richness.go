package extraction

// ScoreRichness rates how much skill signal a description carries, as a
// monotonic step function of the number of unique extracted skills:
// 0 skills scores 0; 1-2 score up to 30; 3-5 up to 60; 6 or more climb to a
// cap of 100.
func ScoreRichness(description string) int {
	count := len(extractSet(description))

	switch {
	case count == 0:
		return 0
	case count <= 2:
		return count * 15 // 15, 30
	case count <= 5:
		return 30 + (count-2)*10 // 40, 50, 60
	default:
		score := 60 + (count-5)*10
		if score > 100 {
			score = 100
		}
		return score
	}
}
