package scoring

const (
	PointsExact     = 6
	PointsBigMargin = 4
	PointsSameDiff  = 3
	PointsOutcome   = 2
	PointsMiss      = 0

	bigMarginCutoff = 4
)

// Points awards points for a predicted scoreline against the official one.
// Evaluated as a single ordered decision tree so the "same difference" and
// "both draws" cases cannot stack.
func Points(predHome, predAway, actHome, actAway int) int {
	if predHome == actHome && predAway == actAway {
		return PointsExact
	}

	predDiff := predHome - predAway
	actDiff := actHome - actAway
	if !sameOutcome(predDiff, actDiff) {
		return PointsMiss
	}

	switch {
	case abs(predDiff) >= bigMarginCutoff && abs(actDiff) >= bigMarginCutoff:
		return PointsBigMargin
	case predDiff == actDiff:
		// covers both-draws as well: two draws share diff 0
		return PointsSameDiff
	default:
		return PointsOutcome
	}
}

// SameOutcome reports whether the prediction picked the right side
// (home win, away win or draw).
func SameOutcome(predHome, predAway, actHome, actAway int) bool {
	return sameOutcome(predHome-predAway, actHome-actAway)
}

func sameOutcome(predDiff, actDiff int) bool {
	return sign(predDiff) == sign(actDiff)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
