package assessment

// Rank is the qualitative tier derived from a total score.
type Rank string

const (
	RankDeveloping Rank = "Developing"
	RankSolid      Rank = "Solid"
	RankExcellent  Rank = "Excellent"
	RankOptimal    Rank = "Optimal"
)

// Fixed thresholds partitioning the full [50,250] total range. They are
// calibrated to the 50-question bank and are not recomputed if the bank
// changes shape.
const (
	thresholdSolid     = 130
	thresholdExcellent = 180
	thresholdOptimal   = 225
)

// AllRanks returns the tiers in ascending order.
func AllRanks() []Rank {
	return []Rank{RankDeveloping, RankSolid, RankExcellent, RankOptimal}
}

// Classify maps a total score to its rank tier. Stateless and monotonic
// non-decreasing in total.
func Classify(total int) Rank {
	switch {
	case total >= thresholdOptimal:
		return RankOptimal
	case total >= thresholdExcellent:
		return RankExcellent
	case total >= thresholdSolid:
		return RankSolid
	default:
		return RankDeveloping
	}
}
