package quiz

// Rank is the label earned from a quiz score.
type Rank string

const (
	RankLead       Rank = "Lead Engineer"
	RankSenior     Rank = "Senior Engineer"
	RankManager    Rank = "Project Manager"
	RankApprentice Rank = "Apprentice"
)

// RankFor maps a score to a rank. Thresholds are checked in descending
// order on the integer percentage: 100, 80, 60. An empty quiz ranks as
// Apprentice.
func RankFor(score, total int) Rank {
	switch {
	case total <= 0:
		return RankApprentice
	case score >= total:
		return RankLead
	case score*100 >= 80*total:
		return RankSenior
	case score*100 >= 60*total:
		return RankManager
	default:
		return RankApprentice
	}
}

// Result is the final outcome of a run.
type Result struct {
	Score      int
	Total      int
	Percentage float64
	Rank       Rank
}

// NewResult computes the percentage and rank for a score.
func NewResult(score, total int) Result {
	r := Result{Score: score, Total: total, Rank: RankFor(score, total)}
	if total > 0 {
		r.Percentage = float64(score) / float64(total) * 100
	}
	return r
}
