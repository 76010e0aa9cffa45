package stats

// Club-wide scoring constants. Points are fixed for every session and period;
// a draw is only canonical at 5-5.
const (
	WinPoints          = 3
	DrawPoints         = 1
	LossPoints         = 0
	CanonicalDrawScore = 5
)

// Outcome is a match result from team1's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"
	OutcomeDraw Outcome = "D"
	// OutcomeNone means the result is incomplete and carries no W/L/D weight.
	OutcomeNone Outcome = ""
)

// Classify turns a raw two-number score into an outcome. Either score missing
// yields OutcomeNone; the function is total and never panics.
func Classify(t1, t2 *int) Outcome {
	if t1 == nil || t2 == nil {
		return OutcomeNone
	}
	switch {
	case *t1 > *t2:
		return OutcomeWin
	case *t1 < *t2:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// Invert flips an outcome to the opposing team's perspective.
func (o Outcome) Invert() Outcome {
	switch o {
	case OutcomeWin:
		return OutcomeLoss
	case OutcomeLoss:
		return OutcomeWin
	default:
		return o
	}
}

// Points maps an outcome to its league points value.
func Points(o Outcome) int {
	switch o {
	case OutcomeWin:
		return WinPoints
	case OutcomeDraw:
		return DrawPoints
	case OutcomeLoss:
		return LossPoints
	default:
		return 0
	}
}
